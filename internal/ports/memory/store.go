package memory

import (
	"context"
	"sync"

	"blackjack/internal/ports"
)

// Store is an in-process SessionStore. Records are copied on the way in and
// out so callers never share slices with the store.
type Store struct {
	mu       sync.Mutex
	sessions map[string]ports.SessionRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]ports.SessionRecord)}
}

// Load returns the stored record or ports.ErrSessionNotFound.
func (s *Store) Load(ctx context.Context, userID string) (ports.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return ports.SessionRecord{}, &ports.StoreError{Op: "load", UserID: userID, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[userID]
	if !ok {
		return ports.SessionRecord{}, ports.ErrSessionNotFound
	}
	return cloneRecord(rec), nil
}

// EnsureDefault stores initial when userID has no record.
func (s *Store) EnsureDefault(ctx context.Context, userID string, initial ports.SessionRecord) (ports.SessionRecord, error) {
	if err := ctx.Err(); err != nil {
		return ports.SessionRecord{}, &ports.StoreError{Op: "ensure", UserID: userID, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[userID]
	if !ok {
		rec = cloneRecord(initial)
		s.sessions[userID] = rec
	}
	return cloneRecord(rec), nil
}

// Save overwrites the record for userID.
func (s *Store) Save(ctx context.Context, userID string, record ports.SessionRecord) error {
	if err := ctx.Err(); err != nil {
		return &ports.StoreError{Op: "save", UserID: userID, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = cloneRecord(record)
	return nil
}

func cloneRecord(r ports.SessionRecord) ports.SessionRecord {
	r.PlayerCards = append([]string{}, r.PlayerCards...)
	r.DealerCards = append([]string{}, r.DealerCards...)
	r.Deck = append([]string{}, r.Deck...)
	return r
}

var _ ports.SessionStore = (*Store)(nil)
