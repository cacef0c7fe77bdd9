package recorder

import "time"

// TrialEvent is one sampled trial kept for later analysis.
type TrialEvent struct {
	Trial         int
	Outcome       string
	Turns         int
	RejectedTurns int
	LeftHealth    int
	LeftMana      int
	RightHealth   int
	RightMana     int
}

// RunSummary records one whole Monte Carlo run.
type RunSummary struct {
	Trials     int
	Goroutines int
	Seed       uint64
	LeftWins   int
	RightWins  int
	BothDead   int
	Ties       int
	Duration   time.Duration
}

// Recorder persists duel results for analysis.
type Recorder interface {
	RecordTrial(evt *TrialEvent) error
	RecordRun(sum *RunSummary) error
	Close() error
}
