package session

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
)

// ErrNoSession is handed to the RequireSession error handler when no user
// is signed in.
var ErrNoSession = errors.New("no active session", errors.CategoryAuth).
	WithTextCode("session_required").
	WithCode(errors.CodeUnauthorized)

// Middleware attaches the manager to each request context so handlers can
// reach the session surface through FromContext / MustFromContext.
func Middleware(m *Manager) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			c.SetContext(WithContext(c.Context(), m))
			return hf(c)
		}
	}
}

// RequireSession guards a route behind a signed-in user. While the
// provider's first notification is pending the request is rejected the
// same way as a signed-out one; callers that want to distinguish can read
// Manager.Loading themselves.
func RequireSession(m *Manager, errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(c router.Context) error {
			state := m.store.Read()
			if state.Loading || state.Session == nil {
				return errorHandler(c, ErrNoSession)
			}
			return hf(c)
		}
	}
}
