package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"blackjack/internal/ports"
)

// TableConfig holds the tunables of the Blackjack module.
type TableConfig struct {
	// StorageCollection and StorageKey address a participant's session record.
	StorageCollection string `json:"storage_collection"`
	StorageKey        string `json:"storage_key"`
	// MaxMessageLength caps every text message sent to a participant.
	MaxMessageLength int `json:"max_message_length"`
	// NotificationCode tags table notifications so clients can route them.
	NotificationCode int `json:"notification_code"`
	// PersistNotifications keeps notifications in the inbox for offline players.
	PersistNotifications bool `json:"persist_notifications"`
	// RNGSeed fixes the dealer's randomness when non-zero.
	RNGSeed int64 `json:"rng_seed"`
}

// Default returns the built-in configuration.
func Default() TableConfig {
	return TableConfig{
		StorageCollection: "blackjack",
		StorageKey:        "session",
		MaxMessageLength:  ports.MaxMessageLength,
		NotificationCode:  2100,
	}
}

var (
	cfg      *TableConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadTableConfig loads the table configuration from the given path once.
// Fields missing from the file keep their defaults.
func LoadTableConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadFile(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = &c
	})
	return loadErr
}

// ReadFile parses a configuration file over the defaults.
func ReadFile(path string) (TableConfig, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read table config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("failed to unmarshal table config: %w", err)
	}
	return c.normalized(), nil
}

// GetTableConfig returns the loaded configuration, or the defaults when
// nothing was loaded.
func GetTableConfig() TableConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}

// WithEnv applies overrides from a key/value environment, such as Nakama's
// runtime env or the process environment.
func (c TableConfig) WithEnv(env map[string]string) TableConfig {
	if v, ok := env["blackjack_storage_collection"]; ok && v != "" {
		c.StorageCollection = v
	}
	if v, ok := env["blackjack_rng_seed"]; ok {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.RNGSeed = seed
		}
	}
	if v, ok := env["blackjack_persist_notifications"]; ok {
		c.PersistNotifications = v == "true"
	}
	return c.normalized()
}

func (c TableConfig) normalized() TableConfig {
	d := Default()
	if c.StorageCollection == "" {
		c.StorageCollection = d.StorageCollection
	}
	if c.StorageKey == "" {
		c.StorageKey = d.StorageKey
	}
	// The messaging surface never accepts more than ports.MaxMessageLength.
	if c.MaxMessageLength <= 0 || c.MaxMessageLength > ports.MaxMessageLength {
		c.MaxMessageLength = ports.MaxMessageLength
	}
	return c
}
