package metrics

import (
	"sync/atomic"
	"time"
)

// RunMetric summarizes one whole Monte Carlo run.
type RunMetric struct {
	Trials     int
	Goroutines int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

// Collector counts finished trials across driver workers.
type Collector interface {
	Start(trials, goroutines int)
	// AddTrial records one finished trial and returns the running total.
	AddTrial() int
	Complete() RunMetric
}

type collector struct {
	trials     int
	goroutines int
	startTime  time.Time
	finished   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(trials, goroutines int) {
	c.startTime = time.Now()
	c.trials = trials
	c.goroutines = goroutines
}

func (c *collector) AddTrial() int {
	return int(c.finished.Add(1))
}

func (c *collector) Complete() RunMetric {
	end := time.Now()
	return RunMetric{
		Trials:     int(c.finished.Load()),
		Goroutines: c.goroutines,
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(trials, goroutines int) {}
func (m *dummyCollector) AddTrial() int                { return 0 }
func (m *dummyCollector) Complete() RunMetric          { return RunMetric{} }
