package session

import (
	"context"
	"fmt"
	"strings"
)

// Logger is the minimal logging surface this package needs. It is
// compatible with github.com/goliatone/go-logger/glog loggers.
type Logger interface {
	Debug(message string, args ...any)
	Info(message string, args ...any)
	Warn(message string, args ...any)
	Error(message string, args ...any)
}

// IdentityProvider is the client for the external identity system. The
// provider verifies credentials, issues sessions, and pushes session
// changes. Implementations live outside this package.
type IdentityProvider interface {
	// SignIn verifies email and password and returns the resulting session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// Register creates a new account and returns the session for the new
	// identity.
	Register(ctx context.Context, email, password string) (*Session, error)

	// UpdateDisplayName sets the display name on an existing identity. Used
	// right after Register when the caller supplied a name.
	UpdateDisplayName(ctx context.Context, userID, displayName string) error

	// FederatedSignIn runs the provider-hosted flow for the named federated
	// provider, e.g. "google".
	FederatedSignIn(ctx context.Context, provider string) (*Session, error)

	// SendPasswordReset emails a password reset link. The local session is
	// unaffected.
	SendPasswordReset(ctx context.Context, email string) error

	// SignOut terminates the provider session.
	SignOut(ctx context.Context) error

	// OnSessionChange registers fn on the provider's session-change stream.
	// fn receives the current session, or nil when signed out, and MUST be
	// invoked once with the initial state after registration. The returned
	// cancel deregisters fn and is safe to call more than once.
	OnSessionChange(fn func(*Session)) (cancel func())
}

type defLogger struct{}

func (d defLogger) Error(message string, args ...any) {
	fmt.Println(formatLogLine("[ERR] SESSION ", message, args...))
}

func (d defLogger) Warn(message string, args ...any) {
	fmt.Println(formatLogLine("[WRN] SESSION ", message, args...))
}

func (d defLogger) Info(message string, args ...any) {
	fmt.Println(formatLogLine("[INF] SESSION ", message, args...))
}

func (d defLogger) Debug(message string, args ...any) {
	fmt.Println(formatLogLine("[DBG] SESSION ", message, args...))
}

// formatLogLine renders the structured key-value args the Logger contract
// carries as " key=value" pairs after the message. A trailing odd arg is
// appended bare.
func formatLogLine(prefix, message string, args ...any) string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(message)
	for i := 0; i+1 < len(args); i += 2 {
		fmt.Fprintf(&b, " %v=%v", args[i], args[i+1])
	}
	if len(args)%2 == 1 {
		fmt.Fprintf(&b, " %v", args[len(args)-1])
	}
	return b.String()
}
