package store

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/metrics"
	"github.com/sanadhub/sanad/internal/stats"
)

// Store errors.
var (
	ErrInvalidStatus           = errors.New("invalid assistance status")
	ErrInvalidStatusTransition = errors.New("invalid assistance status transition")
	ErrNegativeAmount          = errors.New("amount must be non-negative")
	ErrInvalidPaymentMethod    = errors.New("invalid payment method")
	ErrInvalidRole             = errors.New("invalid user role")
	ErrInvalidGender           = errors.New("invalid gender")
	ErrEmptyUsername           = errors.New("username is required")
)

// Store owns the application state. All mutation goes through Dispatch under
// a single lock; after every mutating action the changed collection is
// mirrored to the storage adapter under its key.
type Store struct {
	mu      sync.RWMutex
	data    AppData
	storage kvstore.Store
	logger  *slog.Logger
	metrics metrics.Recorder

	// revision bumps on every mutation; the summary cache is keyed on it.
	revision     uint64
	summary      stats.Summary
	summaryRev   uint64
	summaryValid bool
}

// New creates a Store over the given storage adapter. Call Hydrate before
// serving requests.
func New(storage kvstore.Store, logger *slog.Logger, recorder metrics.Recorder) *Store {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &Store{
		storage: storage,
		logger:  logger.With("component", "store"),
		metrics: recorder,
	}
}

// Hydrate bulk-loads every collection from storage. Absent or unreadable
// keys fall back to empty collections.
func (s *Store) Hydrate(ctx context.Context) {
	data := AppData{
		Beneficiaries: kvstore.Get(ctx, s.storage, KeyBeneficiaries, s.data.Beneficiaries),
		Assistances:   kvstore.Get(ctx, s.storage, KeyAssistances, s.data.Assistances),
		Organizations: kvstore.Get(ctx, s.storage, KeyOrganizations, s.data.Organizations),
		Projects:      kvstore.Get(ctx, s.storage, KeyProjects, s.data.Projects),
		AidFiles:      kvstore.Get(ctx, s.storage, KeyAidFiles, s.data.AidFiles),
		Users:         kvstore.Get(ctx, s.storage, KeyUsers, s.data.Users),
		Branches:      kvstore.Get(ctx, s.storage, KeyBranches, s.data.Branches),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = apply(s.data, Action{Type: ActionSetData, Data: &data})
	s.revision++

	s.logger.Info("state hydrated",
		"beneficiaries", len(data.Beneficiaries),
		"assistances", len(data.Assistances),
		"users", len(data.Users),
		"branches", len(data.Branches),
	)
}

// dispatch applies a mutating action and mirrors the changed collection.
// Must be called with s.mu held.
func (s *Store) dispatch(ctx context.Context, a Action) {
	s.data = apply(s.data, a)
	s.revision++
	s.persist(ctx, a.Entity)

	switch a.Type {
	case ActionAdd:
		s.metrics.IncEntityCreated(string(a.Entity))
	case ActionUpdate:
		s.metrics.IncEntityUpdated(string(a.Entity))
	case ActionDelete:
		s.metrics.IncEntityDeleted(string(a.Entity))
	}
}

// persist mirrors one collection to storage. Write failures are swallowed by
// the adapter; state in memory stays authoritative.
func (s *Store) persist(ctx context.Context, entity Entity) {
	switch entity {
	case EntityBeneficiaries:
		kvstore.Put(ctx, s.storage, KeyBeneficiaries, s.data.Beneficiaries)
	case EntityAssistances:
		kvstore.Put(ctx, s.storage, KeyAssistances, s.data.Assistances)
	case EntityOrganizations:
		kvstore.Put(ctx, s.storage, KeyOrganizations, s.data.Organizations)
	case EntityProjects:
		kvstore.Put(ctx, s.storage, KeyProjects, s.data.Projects)
	case EntityAidFiles:
		kvstore.Put(ctx, s.storage, KeyAidFiles, s.data.AidFiles)
	case EntityUsers:
		kvstore.Put(ctx, s.storage, KeyUsers, s.data.Users)
	case EntityBranches:
		kvstore.Put(ctx, s.storage, KeyBranches, s.data.Branches)
	}
}

// Data returns a snapshot of the current state. Collections are never
// mutated in place, so the snapshot is safe to read concurrently.
func (s *Store) Data() AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Revision returns the current mutation counter.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Summary returns the dashboard summary, recomputing only when the state
// has changed since the last call.
func (s *Store) Summary() stats.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summaryValid && s.summaryRev == s.revision {
		return s.summary
	}

	s.summary = stats.Summarize(s.data.Beneficiaries, s.data.Assistances,
		s.data.Organizations, s.data.Projects)
	s.summaryRev = s.revision
	s.summaryValid = true
	return s.summary
}

// AssistancesByStatusBuckets returns the per-status chart breakdown.
func (s *Store) AssistancesByStatusBuckets() []stats.StatusBucket {
	return stats.ByStatus(s.Data().Assistances)
}

// AssistancesByTypeBuckets returns the per-type chart breakdown.
func (s *Store) AssistancesByTypeBuckets() []stats.TypeBucket {
	return stats.ByType(s.Data().Assistances)
}

// MonthlyTotals returns the monthly trend breakdown.
func (s *Store) MonthlyTotals() []stats.MonthBucket {
	return stats.ByMonth(s.Data().Assistances)
}
