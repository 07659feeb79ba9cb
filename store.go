package session

import "sync"

// State is the observer-visible snapshot held by the Store. Session and
// LastError are nil when absent. Loading starts true and flips false once
// the provider's first notification has been processed; it never reverts.
type State struct {
	Loading   bool
	Session   *Session
	LastError *ErrorInfo
}

// Store is the single mutation authority for session state. Both the
// Bridge and the Coordinator write into it; everything else reads.
// Mutations are last-write-wins with no versioning: a bridge write and a
// command write racing on the same field apply in completion order.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

// NewStore returns a store in the pre-notification state: loading, no
// session, no error.
func NewStore() *Store {
	return &Store{
		state:       State{Loading: true},
		subscribers: make(map[int]func(State)),
	}
}

// Read returns the latest committed state. Never blocks on writers beyond
// the lock hand-off.
func (s *Store) Read() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetSession replaces the session wholesale. Passing nil records a
// signed-out state.
func (s *Store) SetSession(sess *Session) {
	s.mu.Lock()
	s.state.Session = sess
	snapshot := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	publish(subs, snapshot)
}

// SetError records the last command failure. Passing nil clears it.
func (s *Store) SetError(info *ErrorInfo) {
	s.mu.Lock()
	s.state.LastError = info
	snapshot := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	publish(subs, snapshot)
}

// SetLoading sets the loading flag.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	snapshot := s.state
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	publish(subs, snapshot)
}

// Subscribe registers fn to run after every mutation with a snapshot of the
// new state. The rendering layer is one subscriber among possibly several.
// The returned cancel deregisters fn and is safe to call more than once.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
		})
	}
}

// snapshotSubscribers must be called with the lock held.
func (s *Store) snapshotSubscribers() []func(State) {
	subs := make([]func(State), 0, len(s.subscribers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subs = append(subs, fn)
		}
	}
	return subs
}

// publish runs outside the store lock so a subscriber can call back into
// the store without deadlocking.
func publish(subs []func(State), snapshot State) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
