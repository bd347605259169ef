package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a session id does not resolve.
var ErrNotFound = errors.New("session not found")

// Session is the durable record of one game session: the running
// transcript and the serialized game state. State is kept as a raw
// blob so a corrupt state is detected at turn time, not at load time.
type Session struct {
	ID        uuid.UUID       `json:"id"`
	UserID    int64           `json:"user_id,omitempty"`
	Username  string          `json:"username"`
	Story     string          `json:"story"`
	State     json.RawMessage `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ChoiceRecord is one row of the per-choice audit log.
type ChoiceRecord struct {
	ID         int64     `json:"id"`
	SessionID  uuid.UUID `json:"session_id"`
	UserChoice string    `json:"user_choice"`
	AIResponse string    `json:"ai_response"`
	CreatedAt  time.Time `json:"created_at"`
}

// SessionStore defines the interface for session persistence.
// Exactly one writer per processed turn; the store does not implement
// locking or versioning on the read-modify-write cycle.
type SessionStore interface {
	// Ping tests the storage connection
	Ping(ctx context.Context) error

	// Close closes the storage connection
	Close() error

	// CreateSession stores a new session record
	CreateSession(ctx context.Context, s *Session) error

	// LoadSession retrieves a session by id.
	// Returns ErrNotFound if the session doesn't exist.
	LoadSession(ctx context.Context, id uuid.UUID) (*Session, error)

	// SaveSession overwrites the stored session record
	SaveSession(ctx context.Context, s *Session) error
}

// AuditLog defines the interface for the durable side log of users
// and per-choice records. It is write-through: the turn pipeline
// appends one record per processed choice.
type AuditLog interface {
	// Close closes the underlying database
	Close() error

	// CreateUser records a user and returns its id
	CreateUser(ctx context.Context, username string) (int64, error)

	// AppendChoice records one processed choice
	AppendChoice(ctx context.Context, rec *ChoiceRecord) error

	// ListChoices returns a session's choices in insertion order
	ListChoices(ctx context.Context, sessionID uuid.UUID) ([]ChoiceRecord, error)
}
