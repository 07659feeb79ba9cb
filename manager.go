package session

import (
	"context"
	"sync"
)

// Manager is the capability surface the application consumes: read the
// current session, loading flag, and last error; run the auth actions;
// clear the error. It bundles the Store, Bridge, and Coordinator behind
// one lifecycle.
//
// A manager is in scope between Start and the returned stop. Retrieval
// through MustFromContext enforces that scope.
type Manager struct {
	provider    IdentityProvider
	store       *Store
	coordinator *Coordinator
	bridge      *Bridge
	logger      Logger

	mu     sync.Mutex
	active bool
	stop   func()
}

// New returns an unstarted manager for the given provider.
func New(provider IdentityProvider) *Manager {
	store := NewStore()
	return &Manager{
		provider:    provider,
		store:       store,
		coordinator: NewCoordinator(provider, store),
		bridge:      NewBridge(store),
		logger:      defLogger{},
	}
}

// WithNotifier configures the Notifier receiving action outcomes.
func (m *Manager) WithNotifier(n Notifier) *Manager {
	m.coordinator.WithNotifier(n)
	return m
}

// WithLogger sets the logger used across the manager's components.
func (m *Manager) WithLogger(logger Logger) *Manager {
	if logger != nil {
		m.logger = logger
		m.coordinator.WithLogger(logger)
		m.bridge.WithLogger(logger)
	}
	return m
}

// Start opens the provider subscription and brings the manager in scope.
// The returned stop closes the subscription and takes the manager out of
// scope; it is idempotent. Calling Start on an already started manager
// returns the existing stop.
func (m *Manager) Start() func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active {
		return m.stop
	}

	cancel := m.bridge.Start(m.provider)
	m.active = true

	var once sync.Once
	m.stop = func() {
		once.Do(func() {
			m.mu.Lock()
			m.active = false
			m.mu.Unlock()
			cancel()
		})
	}
	return m.stop
}

// Active reports whether the provider subscription is running.
func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// CurrentUser returns the stored session, or nil when signed out. The
// returned session is a shared immutable value; re-read after the next
// notification rather than holding it.
func (m *Manager) CurrentUser() *Session {
	return m.store.Read().Session
}

// Loading reports whether the provider's first notification is still
// pending.
func (m *Manager) Loading() bool {
	return m.store.Read().Loading
}

// ErrorMessage returns the last recorded failure message, or "" when none
// is recorded.
func (m *Manager) ErrorMessage() string {
	if info := m.store.Read().LastError; info != nil {
		return info.Message
	}
	return ""
}

// LastError returns the full recorded failure, or nil.
func (m *Manager) LastError() *ErrorInfo {
	return m.store.Read().LastError
}

// Subscribe registers fn on the underlying store. See Store.Subscribe.
func (m *Manager) Subscribe(fn func(State)) func() {
	return m.store.Subscribe(fn)
}

// Login signs in with email and password.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	return m.coordinator.SignIn(ctx, email, password)
}

// Register creates an account; displayName may be empty.
func (m *Manager) Register(ctx context.Context, email, password, displayName string) error {
	return m.coordinator.Register(ctx, email, password, displayName)
}

// Logout terminates the session.
func (m *Manager) Logout(ctx context.Context) error {
	return m.coordinator.SignOut(ctx)
}

// ResetPassword sends a password reset email.
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	return m.coordinator.ResetPassword(ctx, email)
}

// GoogleSignIn signs in through the provider's Google flow.
func (m *Manager) GoogleSignIn(ctx context.Context) error {
	return m.coordinator.GoogleSignIn(ctx)
}

// ClearError clears the recorded error.
func (m *Manager) ClearError() {
	m.coordinator.ClearError()
}
