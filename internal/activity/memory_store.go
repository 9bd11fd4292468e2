package activity

import (
	"context"
	"sort"
	"sync"

	"github.com/mstockton/activitydigest/internal/types"
)

// MemoryStore implements Store using in-memory slices.
// Intended for demos and testing — no database required.
type MemoryStore struct {
	mu      sync.RWMutex
	records []types.LogRecord
}

// NewMemoryStore creates a new empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(_ context.Context, records ...types.LogRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

func (s *MemoryStore) List(_ context.Context, opts QueryOptions) ([]types.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []types.LogRecord
	for _, r := range s.records {
		if opts.SubjectType != "" && r.SubjectType != opts.SubjectType {
			continue
		}
		if opts.SubjectID != "" && r.SubjectID != opts.SubjectID {
			continue
		}
		if opts.Event != "" && r.Event != opts.Event {
			continue
		}
		if opts.BatchID != "" && r.BatchID != opts.BatchID {
			continue
		}
		if opts.CauserType != "" && (r.Causer == nil || r.Causer.Type != opts.CauserType) {
			continue
		}
		if opts.CauserID != "" && (r.Causer == nil || r.Causer.ID != opts.CauserID) {
			continue
		}
		if opts.Since != nil && r.CreatedAt.Before(*opts.Since) {
			continue
		}
		if opts.Until != nil && r.CreatedAt.After(*opts.Until) {
			continue
		}
		matched = append(matched, r)
	}

	// Sort by created_at ASC; SliceStable keeps input order on ties so
	// the aggregator's last-writer-wins merge stays deterministic.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}

	return matched, nil
}
