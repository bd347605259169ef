package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockSessionStore is an in-memory SessionStore for testing.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session

	// Optional error injection
	PingError error
	LoadError error
	SaveError error
}

var _ SessionStore = (*MockSessionStore)(nil)

// NewMockSessionStore creates a new in-memory session store
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[uuid.UUID]*Session),
	}
}

func (m *MockSessionStore) Ping(ctx context.Context) error {
	return m.PingError
}

func (m *MockSessionStore) Close() error {
	return nil
}

func (m *MockSessionStore) CreateSession(ctx context.Context, s *Session) error {
	if m.SaveError != nil {
		return m.SaveError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *MockSessionStore) LoadSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MockSessionStore) SaveSession(ctx context.Context, s *Session) error {
	if m.SaveError != nil {
		return m.SaveError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s.UpdatedAt = time.Now()
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

// MockAuditLog is an in-memory AuditLog for testing.
type MockAuditLog struct {
	mu      sync.Mutex
	nextID  int64
	Users   []string
	Choices []ChoiceRecord

	AppendError error
}

var _ AuditLog = (*MockAuditLog)(nil)

// NewMockAuditLog creates a new in-memory audit log
func NewMockAuditLog() *MockAuditLog {
	return &MockAuditLog{nextID: 1}
}

func (m *MockAuditLog) Close() error {
	return nil
}

func (m *MockAuditLog) CreateUser(ctx context.Context, username string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Users = append(m.Users, username)
	return int64(len(m.Users)), nil
}

func (m *MockAuditLog) AppendChoice(ctx context.Context, rec *ChoiceRecord) error {
	if m.AppendError != nil {
		return m.AppendError
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = m.nextID
	m.nextID++
	rec.CreatedAt = time.Now()
	m.Choices = append(m.Choices, *rec)
	return nil
}

func (m *MockAuditLog) ListChoices(ctx context.Context, sessionID uuid.UUID) ([]ChoiceRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]ChoiceRecord, 0)
	for _, rec := range m.Choices {
		if rec.SessionID == sessionID {
			out = append(out, rec)
		}
	}
	return out, nil
}
