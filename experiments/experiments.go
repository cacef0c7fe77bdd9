package experiments

import (
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"duel/experiments/metrics"
	"duel/recorder"
)

// RunExperiment runs the full Monte Carlo experiment and stores its records:
// sampled trial records and the run config go to the CSV writer, sampled
// trials and the run summary go to the recorder. Writer and recorder failures
// are logged, not fatal - the tally is still the experiment's result.
func RunExperiment(name string, cfg Config, writer *metrics.Writer, rec recorder.Recorder, runConfig metrics.RunConfig) (Tally, metrics.RunMetric) {
	log.Info().Msgf("starting %s experiment with %d trials on %d goroutines...", name, cfg.Trials, cfg.Goroutines)

	var mu sync.Mutex
	var records []metrics.TrialRecord
	if cfg.SampleEvery > 0 && (writer != nil || rec != nil) {
		cfg.Record = func(r metrics.TrialRecord) {
			mu.Lock()
			records = append(records, r)
			mu.Unlock()
		}
	}

	tally, runMetric := RunTrials(cfg)

	log.Info().Msgf("completed %s experiment in %s", name, runMetric.Duration)

	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })

	if writer != nil {
		err := writer.WriteRunConfig(runConfig)
		if err != nil {
			log.Error().Err(err).Msg("failed to store run config")
		}
		err = writer.WriteTrialRecords(records)
		if err != nil {
			log.Error().Err(err).Msg("failed to store trial records")
		} else {
			log.Info().Msgf("stored %d trial records in %s", len(records), writer.Dir())
		}
	}

	if rec != nil {
		for _, r := range records {
			err := rec.RecordTrial(&recorder.TrialEvent{
				Trial:         r.ID,
				Outcome:       r.Outcome,
				Turns:         r.Turns,
				RejectedTurns: r.RejectedTurns,
				LeftHealth:    r.LeftHealth,
				LeftMana:      r.LeftMana,
				RightHealth:   r.RightHealth,
				RightMana:     r.RightMana,
			})
			if err != nil {
				log.Error().Err(err).Msg("failed to record trial")
				break
			}
		}
		err := rec.RecordRun(&recorder.RunSummary{
			Trials:     tally.Trials,
			Goroutines: runMetric.Goroutines,
			Seed:       runConfig.Seed,
			LeftWins:   tally.LeftWins,
			RightWins:  tally.RightWins,
			BothDead:   tally.BothDead,
			Ties:       tally.Ties,
			Duration:   runMetric.Duration,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to record run summary")
		}
	}

	return tally, runMetric
}
