// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Entity mutation metrics, labeled by collection name.
	IncEntityCreated(entity string)
	IncEntityUpdated(entity string)
	IncEntityDeleted(entity string)

	// Authentication metrics
	IncLogin(status string) // status: "success" or "failure"

	// Export metrics
	IncExport(entity string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
