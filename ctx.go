package session

import "context"

var managerCtxKey = &contextKey{"manager"}

type contextKey struct {
	name string
}

// WithContext sets the Manager in the given context.
func WithContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, managerCtxKey, m)
}

// FromContext finds the manager in the context. It reports false when no
// manager is present or the present one is out of scope (not started, or
// already stopped).
func FromContext(ctx context.Context) (*Manager, bool) {
	m, ok := ctx.Value(managerCtxKey).(*Manager)
	if !ok || !m.Active() {
		return nil, false
	}
	return m, true
}

// MustFromContext returns the in-scope manager or panics. Using the
// session surface outside an active provider scope is a programming
// error, not a recoverable condition, so it fails immediately and loudly
// before any state is read.
func MustFromContext(ctx context.Context) *Manager {
	m, ok := FromContext(ctx)
	if !ok {
		panic("session: accessor used outside an active provider scope")
	}
	return m
}
