package nakama

import (
	"context"
	"database/sql"
	"math/rand"
	"sync"
	"time"

	"blackjack/internal/app"
	"blackjack/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the Blackjack RPCs and the onboarding hook into the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path := env[envConfigPath]; path != "" {
		if err := config.LoadTableConfig(path); err != nil {
			logger.Error("Failed to load table config from %s: %v", path, err)
			return err
		}
	}
	cfg := config.GetTableConfig().WithEnv(env)

	m := newTableRuntime(app.NewService(newLockedRand(cfg.RNGSeed)), cfg)
	if err := m.register(initializer); err != nil {
		return err
	}

	logger.WithFields(map[string]interface{}{
		"collection": cfg.StorageCollection,
		"key":        cfg.StorageKey,
		"seeded":     cfg.RNGSeed != 0,
	}).Info("Blackjack Go module loaded.")
	return nil
}

func (m *tableRuntime) register(initializer runtime.Initializer) error {
	rpcs := []struct {
		id string
		fn func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error)
	}{
		{RpcPlay, m.rpcPlay},
		{RpcHit, m.rpcHit},
		{RpcStand, m.rpcStand},
		{RpcStatus, m.rpcStatus},
	}
	for _, rpc := range rpcs {
		if err := initializer.RegisterRpc(rpc.id, rpc.fn); err != nil {
			return err
		}
	}
	return initializer.RegisterAfterAuthenticateDevice(m.afterAuthenticateDevice)
}

// lockedRand is a rand source safe for concurrent RPCs.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
