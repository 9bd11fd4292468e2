// Package processor provides the memoizing base that per-domain
// activity processors build on. A processor holds one collection of
// log records, declares which event and action kinds it understands,
// and exposes the batch-summarization pipeline over that collection.
package processor

import (
	"context"

	"github.com/mstockton/activitydigest/internal/activity"
	"github.com/mstockton/activitydigest/internal/types"
)

// Config is the per-variant declaration of what a processor supports.
// Supplied at construction; processors share no static state.
type Config struct {
	SupportedEvents  []string
	SupportedActions []string
}

// ProcessFunc is the domain-specific processing strategy over the full
// record collection. Each processor variant supplies its own.
type ProcessFunc[R any] func(records []types.LogRecord) (R, error)

// result is a lazily-computed memo cell with an explicit reset.
type result[R any] struct {
	value    R
	err      error
	computed bool
}

func (r *result[R]) get(compute func() (R, error)) (R, error) {
	if !r.computed {
		r.value, r.err = compute()
		r.computed = true
	}
	return r.value, r.err
}

func (r *result[R]) reset() {
	var zero R
	r.value = zero
	r.err = nil
	r.computed = false
}

// Base is the shared core of a domain processor. Instances are
// request-scoped: the memo cell is instance-private mutable state and
// Base is not safe for concurrent use across goroutines.
type Base[R any] struct {
	cfg        Config
	records    []types.LogRecord
	summarizer *activity.Summarizer
	process    ProcessFunc[R]

	memo          result[R]
	lastBatchID   string
	lastProcessed *types.BatchSummary
}

// New creates a processor Base over an already-materialized record
// collection.
func New[R any](cfg Config, records []types.LogRecord, summarizer *activity.Summarizer, process ProcessFunc[R]) *Base[R] {
	return &Base[R]{
		cfg:        cfg,
		records:    records,
		summarizer: summarizer,
		process:    process,
	}
}

// NewFromStore creates a processor Base by listing records from the
// log-entry store collaborator.
func NewFromStore[R any](ctx context.Context, cfg Config, store activity.Store, opts activity.QueryOptions, summarizer *activity.Summarizer, process ProcessFunc[R]) (*Base[R], error) {
	records, err := store.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return New(cfg, records, summarizer, process), nil
}

// SupportedEvents returns the event kinds this processor handles.
func (b *Base[R]) SupportedEvents() []string { return b.cfg.SupportedEvents }

// SupportsEvent reports whether kind is a supported event.
func (b *Base[R]) SupportsEvent(kind string) bool {
	return contains(b.cfg.SupportedEvents, kind)
}

// SupportedActions returns the action kinds this processor handles.
func (b *Base[R]) SupportedActions() []string { return b.cfg.SupportedActions }

// SupportsAction reports whether kind is a supported action.
func (b *Base[R]) SupportsAction(kind string) bool {
	return contains(b.cfg.SupportedActions, kind)
}

// Records returns the processor's held record collection.
func (b *Base[R]) Records() []types.LogRecord { return b.records }

// Process runs the domain processing strategy over the full record
// collection, computing at most once per instance until ClearCache.
func (b *Base[R]) Process() (R, error) {
	return b.memo.get(func() (R, error) {
		return b.process(b.records)
	})
}

// ProcessBatch summarizes one batch of the held collection, or the
// whole collection when batchID is empty. The most recent summary is
// kept so repeated calls for the same batch reuse it.
func (b *Base[R]) ProcessBatch(batchID string) (*types.BatchSummary, error) {
	if b.lastProcessed != nil && b.lastBatchID == batchID {
		return b.lastProcessed, nil
	}
	summary, err := b.summarizer.Summarize(b.records, batchID)
	if err != nil {
		return nil, err
	}
	b.lastBatchID = batchID
	b.lastProcessed = summary
	return summary, nil
}

// ClearCache invalidates the memoized result and the last-processed
// batch marker. Idempotent.
func (b *Base[R]) ClearCache() {
	b.memo.reset()
	b.lastBatchID = ""
	b.lastProcessed = nil
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
