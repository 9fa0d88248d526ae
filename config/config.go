package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/ratel-online/unoparty/consts"
	"github.com/ratel-online/unoparty/uno/player"
	"github.com/ratel-online/unoparty/uno/reaction"
)

const (
	ModeConsole = "console"
	ModeTCP     = "tcp"
	ModeWS      = "ws"
)

type GeminiConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
}

type Config struct {
	HumanName string `json:"human_name"`
	Seats     int    `json:"seats"`
	HandSize  int    `json:"hand_size"`
	// Seed of 0 seeds from the clock.
	Seed                  int64         `json:"seed"`
	BotDelayMillis        int           `json:"bot_delay_millis"`
	ReactionTimeoutMillis int           `json:"reaction_timeout_millis"`
	Tuning                player.Tuning `json:"tuning"`
	Mode                  string        `json:"mode"`
	TCPAddr               string        `json:"tcp_addr"`
	WSAddr                string        `json:"ws_addr"`
	Gemini                GeminiConfig  `json:"gemini"`
}

func Default() Config {
	return Config{
		HumanName:             "You",
		Seats:                 consts.DefaultPlayers,
		HandSize:              consts.HandSize,
		BotDelayMillis:        int(consts.BotDelay / time.Millisecond),
		ReactionTimeoutMillis: int(consts.ReactionTimeout / time.Millisecond),
		Tuning:                player.DefaultTuning(),
		Mode:                  ModeConsole,
		TCPAddr:               ":9999",
		WSAddr:                ":9998",
		Gemini:                GeminiConfig{Model: reaction.DefaultModel},
	}
}

func (c Config) BotDelay() time.Duration {
	return time.Duration(c.BotDelayMillis) * time.Millisecond
}

func (c Config) ReactionTimeout() time.Duration {
	return time.Duration(c.ReactionTimeoutMillis) * time.Millisecond
}

func (c Config) Validate() error {
	if c.Seats < consts.MinPlayers {
		return fmt.Errorf("seats must be at least %d, got %d", consts.MinPlayers, c.Seats)
	}
	if c.HandSize < 1 {
		return fmt.Errorf("hand_size must be positive, got %d", c.HandSize)
	}
	switch c.Mode {
	case ModeConsole, ModeTCP, ModeWS:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// Parse reads a JSON document over the defaults, then applies the
// environment overrides.
func Parse(data []byte) (Config, error) {
	c := Default()
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c); err != nil {
			return c, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}
	applyEnv(&c)
	return c, c.Validate()
}

func applyEnv(c *Config) {
	for _, key := range []string{"GEMINI_API_KEY", "API_KEY"} {
		if value := os.Getenv(key); value != "" {
			c.Gemini.APIKey = value
			return
		}
	}
}

var (
	cfg      Config
	loadOnce sync.Once
	loadErr  error
)

// Load reads the config at path once. An empty path uses the defaults.
func Load(path string) (Config, error) {
	loadOnce.Do(func() {
		var data []byte
		if path != "" {
			data, loadErr = os.ReadFile(path)
			if loadErr != nil {
				loadErr = fmt.Errorf("failed to read config: %w", loadErr)
				return
			}
		}
		cfg, loadErr = Parse(data)
	})
	return cfg, loadErr
}
