package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		require.Equal(t, 25, cfg.Duel.InitialHealth)
		require.Equal(t, 1, cfg.Duel.InitialMana)
		require.Equal(t, 1, cfg.Duel.PassiveManaGain)
		require.Equal(t, 4, cfg.Duel.ConcentrateGain)
		require.Equal(t, 1_000_000, cfg.Simulation.Trials)
		require.Positive(t, cfg.Simulation.Goroutines)
	})

	t.Run("yaml values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte(`
duel:
  initial_health: 15
  max_turns: 500
simulation:
  trials: 5000
  goroutines: 4
  seed: 99
results:
  sqlite_path: duel.db
`)
		require.NoError(t, os.WriteFile(path, data, 0644))

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, 15, cfg.Duel.InitialHealth)
		require.Equal(t, 500, cfg.Duel.MaxTurns)
		require.Equal(t, 5000, cfg.Simulation.Trials)
		require.Equal(t, 4, cfg.Simulation.Goroutines)
		require.Equal(t, uint64(99), cfg.Simulation.Seed)
		require.Equal(t, "duel.db", cfg.Results.SQLitePath)
		require.Equal(t, 1, cfg.Duel.InitialMana, "Unset fields still get defaults")
	})

	t.Run("environment variables override the file", func(t *testing.T) {
		t.Setenv("DUEL_TRIALS", "777")
		t.Setenv("DUEL_SQLITE_PATH", "/tmp/override.db")

		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		require.Equal(t, 777, cfg.Simulation.Trials)
		require.Equal(t, "/tmp/override.db", cfg.Results.SQLitePath)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("duel: ["), 0644))

		_, err := Load(path)

		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects a non-positive trial count", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		cfg.Simulation.Trials = -1

		require.Error(t, cfg.Validate())
	})

	t.Run("rejects zero health", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		cfg.Duel.InitialHealth = 0

		require.Error(t, cfg.Validate())
	})
}
