package session

import "github.com/goliatone/go-errors"

// ActionKind identifies one of the user-initiated auth actions.
type ActionKind string

const (
	ActionSignIn          ActionKind = "auth.sign_in"
	ActionRegister        ActionKind = "auth.register"
	ActionSignOut         ActionKind = "auth.sign_out"
	ActionResetPassword   ActionKind = "auth.password_reset"
	ActionFederatedSignIn ActionKind = "auth.federated_sign_in"
)

const (
	TextCodeSignInFailed        = "session_sign_in_failed"
	TextCodeRegisterFailed      = "session_register_failed"
	TextCodeSignOutFailed       = "session_sign_out_failed"
	TextCodeResetPasswordFailed = "session_password_reset_failed"
	TextCodeFederatedFailed     = "session_federated_sign_in_failed"
)

// ErrorInfo is the single error shape this package records. Message is
// always one of the fixed per-action strings from Classify.
type ErrorInfo struct {
	Action  ActionKind `json:"action"`
	Message string     `json:"message"`
}

// Classify maps an action to its fixed, user-presentable failure message.
// The underlying provider error is discarded on purpose: no provider error
// code ever selects the message, only the action does. Unknown actions get
// a generic message so the function stays total.
func Classify(action ActionKind) string {
	switch action {
	case ActionSignIn:
		return "Failed to login. Please check your credentials"
	case ActionRegister:
		return "Failed to create account"
	case ActionFederatedSignIn:
		return "Failed to sign in with Google"
	case ActionResetPassword:
		return "Failed to send password reset email"
	case ActionSignOut:
		return "Failed to logout"
	default:
		return "Authentication action failed"
	}
}

// TextCode returns the machine-readable code paired with an action's
// classified failure.
func TextCode(action ActionKind) string {
	switch action {
	case ActionSignIn:
		return TextCodeSignInFailed
	case ActionRegister:
		return TextCodeRegisterFailed
	case ActionFederatedSignIn:
		return TextCodeFederatedFailed
	case ActionResetPassword:
		return TextCodeResetPasswordFailed
	case ActionSignOut:
		return TextCodeSignOutFailed
	default:
		return "session_action_failed"
	}
}

// classifiedError wraps a provider failure into the fixed per-action shape
// callers receive. The classified message is the error text; the original
// provider error stays reachable through errors.Unwrap for logging, never
// for message selection.
func classifiedError(action ActionKind, cause error) error {
	return errors.Wrap(cause, errors.CategoryAuth, Classify(action)).
		WithTextCode(TextCode(action)).
		WithCode(errors.CodeUnauthorized).
		WithMetadata(map[string]any{"action": string(action)})
}
