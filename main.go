package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duel/config"
	"duel/experiments"
	"duel/experiments/metrics"
	"duel/recorder"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	trials := flag.Int("trials", 0, "Number of duels to simulate (overrides config)")
	goroutines := flag.Int("goroutines", 0, "Number of worker goroutines (overrides config)")
	seed := flag.Uint64("seed", 0, "Base RNG seed (overrides config)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *trials > 0 {
		cfg.Simulation.Trials = *trials
	}
	if *goroutines > 0 {
		cfg.Simulation.Goroutines = *goroutines
	}
	if *seed > 0 {
		cfg.Simulation.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Results.SQLitePath != "" {
		rec, err = recorder.NewSQLiteRecorder(cfg.Results.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sqlite recorder")
		}
	}
	defer rec.Close()

	var writer *metrics.Writer
	if cfg.Results.Dir != "" {
		writer, err = metrics.NewWriter(cfg.Results.Dir, "wizard_duel")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create results writer")
		}
	}

	driverCfg := experiments.Config{
		Trials:      cfg.Simulation.Trials,
		Goroutines:  cfg.Simulation.Goroutines,
		Rules:       cfg.Duel,
		Selectors:   experiments.UniformSelectors(cfg.Simulation.Seed),
		Collector:   metrics.NewCollector(),
		SampleEvery: cfg.Simulation.SampleEvery,
		LogEvery:    cfg.Simulation.LogEvery,
	}
	runConfig := metrics.RunConfig{
		Trials:          cfg.Simulation.Trials,
		Goroutines:      cfg.Simulation.Goroutines,
		Seed:            cfg.Simulation.Seed,
		InitialHealth:   cfg.Duel.InitialHealth,
		InitialMana:     cfg.Duel.InitialMana,
		PassiveManaGain: cfg.Duel.PassiveManaGain,
		ConcentrateGain: cfg.Duel.ConcentrateGain,
		MaxTurns:        cfg.Duel.MaxTurns,
	}

	tally, runMetric := experiments.RunExperiment("wizard_duel", driverCfg, writer, rec, runConfig)

	log.Info().
		Int("left_wins", tally.LeftWins).
		Int("right_wins", tally.RightWins).
		Int("both_dead", tally.BothDead).
		Int("ties", tally.Ties).
		Dur("duration", runMetric.Duration).
		Msg("run complete")

	fmt.Printf("L: %d, R: %d, T: %d\n", tally.LeftWins, tally.RightWins, tally.BothDead+tally.Ties)
}
