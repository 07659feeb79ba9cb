// Package session maintains a client-side view of the authenticated user.
// It bridges an identity provider's session-change stream into a single
// observable Store, and coordinates the user-initiated auth actions
// (sign-in, registration, sign-out, password reset, federated sign-in)
// against that store.
//
// State model:
//   - Store owns the only mutable record: current session, a loading flag
//     that flips false once the provider's first notification lands, and
//     the last command error. Sessions are immutable values replaced
//     wholesale on every update.
//   - Bridge subscribes to the provider stream and writes every
//     notification into the Store. The stream is the long-term source of
//     truth; command-driven writes are expected to be corroborated (or
//     overridden) by a later notification.
//   - Coordinator runs each command against the provider, applies the
//     local effect on success, and collapses failures into one fixed
//     message per action before recording and re-raising them. A command
//     failure is never swallowed.
//
// Access scoping:
//   - Manager is the capability surface handed to application code. It is
//     carried through context (WithContext / FromContext) and is only
//     valid while its provider subscription is running. MustFromContext
//     panics when used outside an active scope; that is a programming
//     error, not a recoverable condition.
//
// Notifiers:
//   - Notifier receives success and failure events for human-visible
//     feedback (toasts, status bars). Notifiers run best-effort so UI
//     plumbing can never block or fail an auth action.
package session
