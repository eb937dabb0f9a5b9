package nakama

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"blackjack/internal/app"
	"blackjack/internal/app/table"
	"blackjack/internal/config"
	"blackjack/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// TableBackend is the subset of runtime.NakamaModule a table needs.
type TableBackend interface {
	StorageAccess
	NotificationSender
}

// tableRuntime holds what outlives a single RPC: the turn controller, the
// configuration and the per-user command locks.
type tableRuntime struct {
	games *app.Service
	cfg   config.TableConfig
	locks userLocks
}

func newTableRuntime(games *app.Service, cfg config.TableConfig) *tableRuntime {
	return &tableRuntime{games: games, cfg: cfg}
}

func (m *tableRuntime) table(nk TableBackend, logger ports.Logger) *table.Service {
	return table.NewService(
		m.games,
		NewNakamaSessionStore(nk, m.cfg.StorageCollection, m.cfg.StorageKey),
		NewNakamaPresenter(nk, m.cfg.NotificationCode, m.cfg.PersistNotifications, m.cfg.MaxMessageLength),
		logger,
	)
}

// rpcPlay starts a new game for the caller, replacing any game in progress.
//
// Payload: ignored.
// Returns: the turn as JSON (see turnToStruct).
func (m *tableRuntime) rpcPlay(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return m.runCommand(ctx, logger, nk, "play", (*table.Service).Play)
}

// rpcHit draws a card for the caller.
func (m *tableRuntime) rpcHit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return m.runCommand(ctx, logger, nk, "hit", (*table.Service).Hit)
}

// rpcStand ends the caller's turn and plays out the dealer.
func (m *tableRuntime) rpcStand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return m.runCommand(ctx, logger, nk, "stand", (*table.Service).Stand)
}

// rpcStatus returns the caller's session and re-sends the hands of a game in
// progress.
func (m *tableRuntime) rpcStatus(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("user id not found in context", codeUnauthenticated)
	}
	log := logger.WithField("user_id", userID)

	unlock := m.locks.lock(userID)
	defer unlock()

	session, err := m.table(nk, log).Status(ctx, userID)
	if err != nil {
		return "", rpcError(log, "status", err)
	}
	out, err := sessionToStruct(session)
	if err != nil {
		return "", rpcError(log, "status", err)
	}
	return marshalResponse(log, "status", out)
}

func (m *tableRuntime) runCommand(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, command string, run func(*table.Service, context.Context, string) (*app.Turn, error)) (string, error) {
	userID, ok := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if !ok || userID == "" {
		return "", runtime.NewError("user id not found in context", codeUnauthenticated)
	}
	log := logger.WithField("user_id", userID)

	unlock := m.locks.lock(userID)
	defer unlock()

	turn, err := run(m.table(nk, log), ctx, userID)
	if err != nil {
		return "", rpcError(log, command, err)
	}
	out, err := turnToStruct(turn)
	if err != nil {
		return "", rpcError(log, command, err)
	}
	return marshalResponse(log, command, out)
}

func marshalResponse(logger runtime.Logger, command string, out *structpb.Struct) (string, error) {
	data, err := protojson.Marshal(out)
	if err != nil {
		return "", rpcError(logger, command, err)
	}
	return string(data), nil
}

// rpcError maps table errors to runtime errors clients can act on.
func rpcError(logger runtime.Logger, command string, err error) error {
	var storeErr *ports.StoreError
	switch {
	case errors.Is(err, app.ErrNoActiveGame):
		if command == "stand" {
			return runtime.NewError(app.MessageNoGameStand, codeFailedPrecondition)
		}
		return runtime.NewError(app.MessageNoGameHit, codeFailedPrecondition)
	case errors.As(err, &storeErr):
		logger.Error("%s: session storage failed: %v", command, err)
		return runtime.NewError("session storage unavailable", codeUnavailable)
	default:
		logger.Error("%s failed: %v", command, err)
		return runtime.NewError("internal error", codeInternal)
	}
}

// userLocks serializes commands per user. Nakama may run RPCs from the same
// user concurrently. An entry lives only while some command holds or waits
// for it.
type userLocks struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func (l *userLocks) lock(userID string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*userLock)
	}
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()
	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		defer l.mu.Unlock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
	}
}
