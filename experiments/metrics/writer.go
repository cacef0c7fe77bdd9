package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RunConfig is the configuration row stored alongside a run's records.
type RunConfig struct {
	Trials          int
	Goroutines      int
	Seed            uint64
	InitialHealth   int
	InitialMana     int
	PassiveManaGain int
	ConcentrateGain int
	MaxTurns        int
}

// TrialRecord is one sampled trial's result.
type TrialRecord struct {
	ID            int
	Outcome       string
	Turns         int
	RejectedTurns int
	LeftHealth    int
	LeftMana      int
	RightHealth   int
	RightMana     int
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped results directory under baseDir/name.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

// Dir returns the directory records are written into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunConfig(config RunConfig) error {
	path := filepath.Join(w.baseDir, "run_config.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create run config file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"trials", "goroutines", "seed", "initial_health", "initial_mana", "passive_mana_gain", "concentrate_gain", "max_turns"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write run config header: %w", err)
	}

	row := []string{
		strconv.Itoa(config.Trials),
		strconv.Itoa(config.Goroutines),
		strconv.FormatUint(config.Seed, 10),
		strconv.Itoa(config.InitialHealth),
		strconv.Itoa(config.InitialMana),
		strconv.Itoa(config.PassiveManaGain),
		strconv.Itoa(config.ConcentrateGain),
		strconv.Itoa(config.MaxTurns),
	}
	err = writer.Write(row)
	if err != nil {
		return fmt.Errorf("failed to write run config row: %w", err)
	}

	return nil
}

func (w *Writer) WriteTrialRecords(records []TrialRecord) error {
	path := filepath.Join(w.baseDir, "trial_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trial records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "outcome", "turns", "rejected_turns", "left_health", "left_mana", "right_health", "right_mana"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write trial records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Outcome,
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.RejectedTurns),
			strconv.Itoa(record.LeftHealth),
			strconv.Itoa(record.LeftMana),
			strconv.Itoa(record.RightHealth),
			strconv.Itoa(record.RightMana),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write trial record row: %w", err)
		}
	}

	return nil
}
