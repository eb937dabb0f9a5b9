package ports

import (
	"context"
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned by SessionStore.Load for unknown participants.
var ErrSessionNotFound = errors.New("session not found")

// SessionStats is the stored win/loss tally.
type SessionStats struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// SessionRecord is the serialized form of one participant's game.
// Card lists hold card codes in order.
type SessionRecord struct {
	IsPlaying   bool         `json:"is_playing"`
	GameID      string       `json:"game_id,omitempty"`
	PlayerCards []string     `json:"player_cards"`
	DealerCards []string     `json:"dealer_cards"`
	Deck        []string     `json:"deck"`
	Stats       SessionStats `json:"stats"`
}

// SessionStore persists session records keyed by participant id.
// Implementations do not serialize concurrent commands for the same
// participant; callers must.
type SessionStore interface {
	// Load returns the stored record or ErrSessionNotFound.
	Load(ctx context.Context, userID string) (SessionRecord, error)

	// EnsureDefault stores initial if the participant has no record yet and
	// returns whatever record is stored afterwards.
	EnsureDefault(ctx context.Context, userID string, initial SessionRecord) (SessionRecord, error)

	// Save overwrites the participant's record.
	Save(ctx context.Context, userID string, record SessionRecord) error
}

// StoreError marks a failure of the storage backend itself, as opposed to
// game-logic or decoding errors.
type StoreError struct {
	Op     string
	UserID string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("session store %s for user %s: %v", e.Op, e.UserID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
