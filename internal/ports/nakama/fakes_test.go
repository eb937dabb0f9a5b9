package nakama

import (
	"context"
	"errors"
	"sync"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// fakeNakama implements the storage, notification and account calls the
// table makes. Any other NakamaModule method panics on the nil embedding.
type fakeNakama struct {
	runtime.NakamaModule

	mu            sync.Mutex
	objects       map[string]*api.StorageObject
	writes        []*runtime.StorageWrite
	notifications []sentNotification
	profiles      map[string]string

	readErr   error
	writeErr  error
	notifyErr error
}

type sentNotification struct {
	userID     string
	subject    string
	content    map[string]interface{}
	code       int
	persistent bool
}

func newFakeNakama() *fakeNakama {
	return &fakeNakama{
		objects:  make(map[string]*api.StorageObject),
		profiles: make(map[string]string),
	}
}

func storageID(collection, key, userID string) string {
	return collection + "/" + key + "/" + userID
}

func (f *fakeNakama) StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return nil, f.readErr
	}
	var out []*api.StorageObject
	for _, r := range reads {
		if obj, ok := f.objects[storageID(r.Collection, r.Key, r.UserID)]; ok {
			out = append(out, obj)
		}
	}
	return out, nil
}

func (f *fakeNakama) StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return nil, f.writeErr
	}
	acks := make([]*api.StorageObjectAck, 0, len(writes))
	for _, w := range writes {
		id := storageID(w.Collection, w.Key, w.UserID)
		if _, exists := f.objects[id]; exists && w.Version == "*" {
			return nil, runtime.ErrStorageRejectedVersion
		}
		f.writes = append(f.writes, w)
		f.objects[id] = &api.StorageObject{
			Collection:      w.Collection,
			Key:             w.Key,
			UserId:          w.UserID,
			Value:           w.Value,
			PermissionRead:  int32(w.PermissionRead),
			PermissionWrite: int32(w.PermissionWrite),
		}
		acks = append(acks, &api.StorageObjectAck{Collection: w.Collection, Key: w.Key, UserId: w.UserID})
	}
	return acks, nil
}

func (f *fakeNakama) NotificationSend(ctx context.Context, userID, subject string, content map[string]interface{}, code int, sender string, persistent bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.notifyErr != nil {
		return f.notifyErr
	}
	f.notifications = append(f.notifications, sentNotification{
		userID:     userID,
		subject:    subject,
		content:    content,
		code:       code,
		persistent: persistent,
	})
	return nil
}

func (f *fakeNakama) AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[userID] = displayName
	return nil
}

func (f *fakeNakama) messages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, n := range f.notifications {
		if n.subject == notificationSubjectMessage {
			out = append(out, n.content["text"].(string))
		}
	}
	return out
}

var errBackend = errors.New("backend down")

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}
