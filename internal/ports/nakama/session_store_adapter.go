package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"blackjack/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// StorageAccess is the subset of runtime.NakamaModule the session store needs.
type StorageAccess interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaSessionStore implements ports.SessionStore on Nakama's per-user
// storage. Players may read their own record; only the server writes it.
type NakamaSessionStore struct {
	nk         StorageAccess
	collection string
	key        string
}

// NewNakamaSessionStore creates a session store addressing collection/key.
func NewNakamaSessionStore(nk StorageAccess, collection, key string) *NakamaSessionStore {
	return &NakamaSessionStore{nk: nk, collection: collection, key: key}
}

// Load returns the stored record or ports.ErrSessionNotFound.
func (s *NakamaSessionStore) Load(ctx context.Context, userID string) (ports.SessionRecord, error) {
	objects, err := s.nk.StorageRead(ctx, []*runtime.StorageRead{
		{
			Collection: s.collection,
			Key:        s.key,
			UserID:     userID,
		},
	})
	if err != nil {
		return ports.SessionRecord{}, &ports.StoreError{Op: "load", UserID: userID, Err: err}
	}
	if len(objects) == 0 {
		return ports.SessionRecord{}, ports.ErrSessionNotFound
	}

	var rec ports.SessionRecord
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &rec); err != nil {
		return ports.SessionRecord{}, fmt.Errorf("failed to unmarshal session for user %s: %w", userID, err)
	}
	return rec, nil
}

// EnsureDefault writes initial only when no record exists. A concurrent
// creator wins the race and its record is returned.
func (s *NakamaSessionStore) EnsureDefault(ctx context.Context, userID string, initial ports.SessionRecord) (ports.SessionRecord, error) {
	rec, err := s.Load(ctx, userID)
	if !errors.Is(err, ports.ErrSessionNotFound) {
		return rec, err
	}

	// Version "*" only writes if the object does not exist yet.
	err = s.write(ctx, userID, initial, "*", "ensure")
	if errors.Is(err, runtime.ErrStorageRejectedVersion) {
		return s.Load(ctx, userID)
	}
	if err != nil {
		return ports.SessionRecord{}, err
	}
	return initial, nil
}

// Save overwrites the record for userID.
func (s *NakamaSessionStore) Save(ctx context.Context, userID string, record ports.SessionRecord) error {
	return s.write(ctx, userID, record, "", "save")
}

func (s *NakamaSessionStore) write(ctx context.Context, userID string, record ports.SessionRecord, version, op string) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session for user %s: %w", userID, err)
	}

	_, err = s.nk.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      s.collection,
			Key:             s.key,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_OWNER_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	if err != nil {
		return &ports.StoreError{Op: op, UserID: userID, Err: err}
	}
	return nil
}

var _ ports.SessionStore = (*NakamaSessionStore)(nil)
