package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncEntityCreated(string) {}
func (NoopRecorder) IncEntityUpdated(string) {}
func (NoopRecorder) IncEntityDeleted(string) {}
func (NoopRecorder) IncLogin(string)         {}
func (NoopRecorder) IncExport(string)        {}
