package session

import "context"

// Coordinator executes the user-initiated auth actions against the
// provider and reconciles the Store with each outcome. Every action
// follows the same template: call the provider, then either apply the
// local effect and report success, or record the classified failure,
// report it, and return it. Failures are never swallowed so callers can
// keep forms editable, stop spinners, and so on.
//
// A successful action does not clear a previously recorded error; only
// ClearError does.
type Coordinator struct {
	provider IdentityProvider
	store    *Store
	notifier Notifier
	logger   Logger
}

// NewCoordinator returns a coordinator writing into store.
func NewCoordinator(provider IdentityProvider, store *Store) *Coordinator {
	return &Coordinator{
		provider: provider,
		store:    store,
		notifier: noopNotifier{},
		logger:   defLogger{},
	}
}

// WithNotifier configures the Notifier receiving action outcomes.
func (c *Coordinator) WithNotifier(n Notifier) *Coordinator {
	c.notifier = normalizeNotifier(n)
	return c
}

// WithLogger sets the coordinator logger.
func (c *Coordinator) WithLogger(logger Logger) *Coordinator {
	if logger != nil {
		c.logger = logger
	}
	return c
}

// SignIn verifies email and password and commits the resulting session.
func (c *Coordinator) SignIn(ctx context.Context, email, password string) error {
	cmd := SignInCommand{Email: email, Password: password}
	if err := cmd.Validate(); err != nil {
		return c.fail(ctx, ActionSignIn, err)
	}

	sess, err := c.provider.SignIn(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return c.fail(ctx, ActionSignIn, err)
	}

	c.store.SetSession(sess)
	c.notifier.Success(ctx, ActionSignIn)
	return nil
}

// Register creates an account. When a display name was supplied the
// profile update must complete before the session is committed, so the
// committed session already carries the name. No display name means no
// profile update call at all.
func (c *Coordinator) Register(ctx context.Context, email, password, displayName string) error {
	cmd := RegisterCommand{Email: email, Password: password, DisplayName: displayName}
	if err := cmd.Validate(); err != nil {
		return c.fail(ctx, ActionRegister, err)
	}

	sess, err := c.provider.Register(ctx, cmd.Email, cmd.Password)
	if err != nil {
		return c.fail(ctx, ActionRegister, err)
	}

	if cmd.DisplayName != "" {
		if err := c.provider.UpdateDisplayName(ctx, sess.UserID, cmd.DisplayName); err != nil {
			return c.fail(ctx, ActionRegister, err)
		}
		sess = sess.WithDisplayName(cmd.DisplayName)
	}

	c.store.SetSession(sess)
	c.notifier.Success(ctx, ActionRegister)
	return nil
}

// GoogleSignIn runs the provider-hosted Google flow and commits the
// resulting session.
func (c *Coordinator) GoogleSignIn(ctx context.Context) error {
	sess, err := c.provider.FederatedSignIn(ctx, "google")
	if err != nil {
		return c.fail(ctx, ActionFederatedSignIn, err)
	}

	c.store.SetSession(sess)
	c.notifier.Success(ctx, ActionFederatedSignIn)
	return nil
}

// ResetPassword sends a reset email. The stored session is untouched in
// both outcomes.
func (c *Coordinator) ResetPassword(ctx context.Context, email string) error {
	cmd := ResetPasswordCommand{Email: email}
	if err := cmd.Validate(); err != nil {
		return c.fail(ctx, ActionResetPassword, err)
	}

	if err := c.provider.SendPasswordReset(ctx, cmd.Email); err != nil {
		return c.fail(ctx, ActionResetPassword, err)
	}

	c.notifier.Success(ctx, ActionResetPassword)
	return nil
}

// SignOut terminates the provider session and records the signed-out
// state.
func (c *Coordinator) SignOut(ctx context.Context) error {
	if err := c.provider.SignOut(ctx); err != nil {
		return c.fail(ctx, ActionSignOut, err)
	}

	c.store.SetSession(nil)
	c.notifier.Success(ctx, ActionSignOut)
	return nil
}

// ClearError unconditionally clears the recorded error. It never fails and
// has no other effect.
func (c *Coordinator) ClearError() {
	c.store.SetError(nil)
}

// fail routes every command failure through the one shared path: classify,
// record, notify, return. The stored session is never touched here.
func (c *Coordinator) fail(ctx context.Context, action ActionKind, cause error) error {
	message := Classify(action)
	c.logger.Error("action failed", "action", string(action), "error", cause)

	c.store.SetError(&ErrorInfo{Action: action, Message: message})
	c.notifier.Failure(ctx, message)

	return classifiedError(action, cause)
}
