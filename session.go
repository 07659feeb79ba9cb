package session

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is an authenticated identity as reported by the provider. Values
// are immutable once constructed; every update replaces the whole session,
// never a single field.
type Session struct {
	UserID      string         `json:"user_id,omitempty"`
	DisplayName string         `json:"display_name,omitempty"`
	Email       string         `json:"email,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// GetUserUUID parses the user id as UUID for providers that issue them.
func (s *Session) GetUserUUID() (uuid.UUID, error) {
	return uuid.Parse(s.UserID)
}

// WithDisplayName returns a copy of the session carrying the given display
// name. The receiver is left untouched.
func (s *Session) WithDisplayName(name string) *Session {
	out := *s
	out.DisplayName = name
	return &out
}

func (s *Session) String() string {
	if s == nil {
		return "Session<none>"
	}
	return fmt.Sprintf("Session<%s %q %s>", s.UserID, s.DisplayName, s.Email)
}
