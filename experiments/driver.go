package experiments

import (
	"sync"

	"github.com/rs/zerolog/log"

	"duel/agent"
	"duel/engine"
	"duel/experiments/metrics"
	"duel/game"
)

// SelectorFactory builds a fresh pair of selectors for one trial. A trial
// owns its selectors outright, so workers never share RNG state.
type SelectorFactory func(trial int) (left, right agent.Selector)

// UniformSelectors derives a deterministic RNG seed per trial and side from
// the run seed, so a run reproduces exactly regardless of worker scheduling.
func UniformSelectors(seed uint64) SelectorFactory {
	return func(trial int) (agent.Selector, agent.Selector) {
		base := seed + uint64(trial)*2
		return agent.NewUniformRandom(base), agent.NewUniformRandom(base + 1)
	}
}

// Config drives one Monte Carlo run.
type Config struct {
	Trials     int
	Goroutines int
	Rules      game.Rules
	Selectors  SelectorFactory

	// Collector counts finished trials; nil uses a dummy.
	Collector metrics.Collector
	// Record, when set, receives every SampleEvery-th trial's record. It may
	// be called from multiple workers at once.
	Record      func(metrics.TrialRecord)
	SampleEvery int
	// LogEvery logs progress after that many finished trials; 0 disables.
	LogEvery int
}

// RunTrials executes cfg.Trials independent duels across a worker pool and
// returns the merged tally. Trials are embarrassingly parallel: each worker
// pulls trial indices off a task channel and accumulates into its own
// partial tally.
func RunTrials(cfg Config) (Tally, metrics.RunMetric) {
	if cfg.Trials <= 0 {
		panic("must specify a positive number of trials")
	}
	if cfg.Selectors == nil {
		panic("must specify a selector factory")
	}
	goroutines := cfg.Goroutines
	if goroutines <= 0 {
		goroutines = 1
	}
	collector := cfg.Collector
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	collector.Start(cfg.Trials, goroutines)

	task := make(chan int, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		task <- i
	}
	close(task)

	partials := make([]Tally, goroutines)
	var wg sync.WaitGroup
	for w := 0; w < goroutines; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			for i := range task {
				left, right := cfg.Selectors(i)
				result := engine.NewLocalEngine(left, right, cfg.Rules).Run()
				partials[w].Add(result.Outcome)

				if cfg.Record != nil && cfg.SampleEvery > 0 && i%cfg.SampleEvery == 0 {
					cfg.Record(toRecord(i, result))
				}

				finished := collector.AddTrial()
				if cfg.LogEvery > 0 && finished%cfg.LogEvery == 0 {
					log.Info().Int("finished", finished).Int("total", cfg.Trials).Msg("trials in progress")
				}
			}
		}(w)
	}
	wg.Wait()

	total := Tally{}
	for _, partial := range partials {
		total.Merge(partial)
	}
	return total, collector.Complete()
}

func toRecord(id int, result engine.Result) metrics.TrialRecord {
	return metrics.TrialRecord{
		ID:            id,
		Outcome:       result.Outcome.String(),
		Turns:         result.Turns,
		RejectedTurns: result.RejectedTurns,
		LeftHealth:    result.Final.Left.Health,
		LeftMana:      result.Final.Left.Mana,
		RightHealth:   result.Final.Right.Health,
		RightMana:     result.Final.Right.Mana,
	}
}
