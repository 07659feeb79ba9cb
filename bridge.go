package session

import "sync"

// Bridge relays the provider's session-change stream into the Store. Every
// notification, including the initial one that may carry no session,
// replaces the stored session and then clears the loading flag, so the
// first notification is what ends the loading phase.
//
// The bridge assumes the subscription does not fail after registration and
// makes no attempt to resubscribe; recovering a lost stream is the
// provider client's problem.
type Bridge struct {
	store  *Store
	logger Logger
}

// NewBridge returns a bridge writing into store.
func NewBridge(store *Store) *Bridge {
	return &Bridge{
		store:  store,
		logger: defLogger{},
	}
}

// WithLogger sets the bridge logger.
func (b *Bridge) WithLogger(logger Logger) *Bridge {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Start registers on the provider stream and returns a cancel that closes
// the subscription. The cancel is idempotent.
func (b *Bridge) Start(provider IdentityProvider) func() {
	cancel := provider.OnSessionChange(func(sess *Session) {
		b.logger.Debug("session change notification", "session", sess.String())
		b.store.SetSession(sess)
		b.store.SetLoading(false)
	})

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}
