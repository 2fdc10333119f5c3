package session

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// CookieName carries the opaque session token between browser and server.
const CookieName = "photoshare_session"

// Record is the server-held identity behind a session token.
type Record struct {
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

var ErrNoSession = errors.New("no active session")

// Store maps session tokens to records. Absence of a record means the
// caller is unauthenticated.
type Store interface {
	Get(ctx context.Context, token string) (Record, error)
	Set(ctx context.Context, token string, rec Record) error
	Destroy(ctx context.Context, token string) error
}

func NewToken() string {
	return uuid.NewString()
}

// MemoryStore keeps sessions in process memory. It backs tests and
// deployments without redis; state does not survive restarts.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: map[string]Record{}}
}

func (s *MemoryStore) Get(_ context.Context, token string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[token]
	if !ok {
		return Record{}, ErrNoSession
	}
	return rec, nil
}

func (s *MemoryStore) Set(_ context.Context, token string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[token] = rec
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, token)
	return nil
}
