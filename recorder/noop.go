package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTrial(_ *TrialEvent) error { return nil }
func (n *NoopRecorder) RecordRun(_ *RunSummary) error   { return nil }
func (n *NoopRecorder) Close() error                    { return nil }
