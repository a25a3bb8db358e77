package metrics

import "sync"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	EntityCreated map[string]uint64
	EntityUpdated map[string]uint64
	EntityDeleted map[string]uint64
	Logins        map[string]uint64
	Exports       map[string]uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu      sync.Mutex
	created map[string]uint64
	updated map[string]uint64
	deleted map[string]uint64
	logins  map[string]uint64
	exports map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		created: make(map[string]uint64),
		updated: make(map[string]uint64),
		deleted: make(map[string]uint64),
		logins:  make(map[string]uint64),
		exports: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		EntityCreated: copyCounts(m.created),
		EntityUpdated: copyCounts(m.updated),
		EntityDeleted: copyCounts(m.deleted),
		Logins:        copyCounts(m.logins),
		Exports:       copyCounts(m.exports),
	}
}

func (m *InMemoryRecorder) IncEntityCreated(entity string) { m.inc(m.created, entity) }
func (m *InMemoryRecorder) IncEntityUpdated(entity string) { m.inc(m.updated, entity) }
func (m *InMemoryRecorder) IncEntityDeleted(entity string) { m.inc(m.deleted, entity) }
func (m *InMemoryRecorder) IncLogin(status string)         { m.inc(m.logins, status) }
func (m *InMemoryRecorder) IncExport(entity string)        { m.inc(m.exports, entity) }

func (m *InMemoryRecorder) inc(counts map[string]uint64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts[key]++
}

func copyCounts(src map[string]uint64) map[string]uint64 {
	out := make(map[string]uint64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
