package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ratel-online/unoparty/config"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	c, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
	require.Equal(t, 4, c.Seats)
	require.Equal(t, 7, c.HandSize)
	require.Equal(t, 1500*time.Millisecond, c.BotDelay())
	require.Equal(t, 5*time.Second, c.ReactionTimeout())
	require.Equal(t, 0.25, c.Tuning.ChallengeProbability)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "from-env")

	c, err := config.Parse([]byte(`{"seats": 3, "mode": "tcp", "tuning": {"accuse_probability": 1}}`))
	require.NoError(t, err)
	require.Equal(t, 3, c.Seats)
	require.Equal(t, config.ModeTCP, c.Mode)
	require.Equal(t, 1.0, c.Tuning.AccuseProbability)
	require.Equal(t, 0.9, c.Tuning.DeclareProbability)
	require.Equal(t, "from-env", c.Gemini.APIKey)
	require.Equal(t, "You", c.HumanName)
}

func TestParseRejects(t *testing.T) {
	scenarios := []struct {
		description string
		data        string
	}{
		{description: "malformed_json", data: `{"seats":`},
		{description: "too_few_seats", data: `{"seats": 1}`},
		{description: "unknown_mode", data: `{"mode": "carrier-pigeon"}`},
		{description: "empty_hands", data: `{"hand_size": 0}`},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			_, err := config.Parse([]byte(scenario.data))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uno.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"human_name": "Ada", "seed": 9}`), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "Ada", c.HumanName)
	require.Equal(t, int64(9), c.Seed)

	again, err := config.Load("ignored.json")
	require.NoError(t, err)
	require.Equal(t, c, again)
}
