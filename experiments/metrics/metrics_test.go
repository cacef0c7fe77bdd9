package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts finished trials", func(t *testing.T) {
		c := NewCollector()
		c.Start(10, 2)

		require.Equal(t, 1, c.AddTrial())
		require.Equal(t, 2, c.AddTrial())

		metric := c.Complete()
		require.Equal(t, 2, metric.Trials)
		require.Equal(t, 2, metric.Goroutines)
		require.GreaterOrEqual(t, metric.Duration, time.Duration(0))
		require.False(t, metric.EndTime.Before(metric.StartTime))
	})

	t.Run("dummy collector collects nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(10, 2)
		c.AddTrial()

		require.Equal(t, RunMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	t.Run("trial records round trip through csv", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test_run")
		require.NoError(t, err)

		records := []TrialRecord{
			{ID: 0, Outcome: "LeftWins", Turns: 12, LeftHealth: 3},
			{ID: 50, Outcome: "BothDead", Turns: 20, RejectedTurns: 2},
		}
		require.NoError(t, w.WriteTrialRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "trial_records.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3, "Header plus one row per record")
		require.Equal(t, "LeftWins", rows[1][1])
		require.Equal(t, "20", rows[2][2])
	})

	t.Run("run config is stored as a single row", func(t *testing.T) {
		w, err := NewWriter(t.TempDir(), "test_run")
		require.NoError(t, err)

		require.NoError(t, w.WriteRunConfig(RunConfig{Trials: 1000, Goroutines: 8, Seed: 42, InitialHealth: 25}))

		f, err := os.Open(filepath.Join(w.Dir(), "run_config.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "1000", rows[1][0])
		require.Equal(t, "42", rows[1][2])
	})
}
