package activity

import (
	"strconv"

	"github.com/mstockton/activitydigest/internal/actions"
	"github.com/mstockton/activitydigest/internal/translate"
	"github.com/mstockton/activitydigest/internal/types"
)

// CauserResolver resolves an opaque causer reference to a display
// name. Returning false means the causer could not be named and the
// system-default label applies.
type CauserResolver interface {
	ResolveName(ref *types.CauserRef) (string, bool)
}

// CauserResolverFunc adapts a function to the CauserResolver interface.
type CauserResolverFunc func(ref *types.CauserRef) (string, bool)

func (f CauserResolverFunc) ResolveName(ref *types.CauserRef) (string, bool) {
	return f(ref)
}

// ChangeAggregator groups a batch's records into per-entity change
// sets. Satisfied by *Aggregator.
type ChangeAggregator interface {
	Aggregate(records []types.LogRecord) []types.EntityChangeSet
}

// Summarizer turns a raw batch of log records into a BatchSummary:
// common action, common causer, per-entity change summaries, and a
// generated human-readable message.
type Summarizer struct {
	aggregator ChangeAggregator
	labels     *translate.Labels
	namer      *actions.Namer
	catalog    translate.Catalog
	causers    CauserResolver
}

// NewSummarizer wires a Summarizer. causers may be nil, in which case
// every record reads as system-initiated.
func NewSummarizer(aggregator ChangeAggregator, labels *translate.Labels, namer *actions.Namer, catalog translate.Catalog, causers CauserResolver) *Summarizer {
	return &Summarizer{
		aggregator: aggregator,
		labels:     labels,
		namer:      namer,
		catalog:    catalog,
		causers:    causers,
	}
}

// Summarize digests records into a BatchSummary. A non-empty batchID
// first filters records to that batch. Failures come back as
// *types.BatchError values, never panics: an empty filtered set yields
// NoActivitiesFound, an empty aggregation yields NoEntitiesExtracted.
func (s *Summarizer) Summarize(records []types.LogRecord, batchID string) (*types.BatchSummary, error) {
	if batchID != "" {
		filtered := records[:0:0]
		for _, r := range records {
			if r.BatchID == batchID {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	if len(records) == 0 {
		return nil, &types.BatchError{Code: types.NoActivitiesFound, BatchID: batchID}
	}

	action := commonAction(records)

	entities := s.aggregator.Aggregate(records)
	if len(entities) == 0 {
		return nil, &types.BatchError{
			Code:    types.NoEntitiesExtracted,
			BatchID: batchID,
			Sample:  types.SampleOf(records[0]),
		}
	}

	first := records[0]
	causerName, causerType, causerID := s.resolveCauser(first.Causer)
	actionName := s.namer.DisplayName(action)

	summaries := make([]types.EntitySummary, 0, len(entities))
	for _, entity := range entities {
		summaries = append(summaries, types.EntitySummary{
			Type:    s.labels.ModelLabel(entity.Type),
			ID:      entity.ID,
			Event:   entity.Event,
			Changes: simplify(entity.Changes),
		})
	}

	return &types.BatchSummary{
		BatchID:    batchID,
		Message:    s.message(causerName, actionName, len(summaries)),
		Causer:     causerName,
		CauserType: causerType,
		CauserID:   causerID,
		Action:     action,
		Entities:   summaries,
		CreatedAt:  first.CreatedAt,
	}, nil
}

// commonAction returns the shared event kind of the records, or the
// "modified" sentinel when the batch mixes event kinds.
func commonAction(records []types.LogRecord) string {
	action := records[0].Event
	for _, r := range records[1:] {
		if r.Event != action {
			return string(actions.Modified)
		}
	}
	return action
}

func (s *Summarizer) resolveCauser(ref *types.CauserRef) (name, causerType, causerID string) {
	if ref != nil {
		causerType = ref.Type
		causerID = ref.ID
		if s.causers != nil {
			if resolved, ok := s.causers.ResolveName(ref); ok {
				return resolved, causerType, causerID
			}
		}
	}
	return s.systemLabel(), causerType, causerID
}

func (s *Summarizer) systemLabel() string {
	if s.catalog != nil && s.catalog.Has("activities.system") {
		return s.catalog.Get("activities.system", nil)
	}
	return "System"
}

func (s *Summarizer) message(causer, action string, entityCount int) string {
	params := map[string]string{
		"causer": causer,
		"action": action,
		"count":  strconv.Itoa(entityCount),
	}
	if s.catalog != nil && s.catalog.Has("activities.batch_message") {
		return s.catalog.Get("activities.batch_message", params)
	}
	return translate.Expand(translate.DefaultBatchMessage, params)
}

// simplify reduces attribute changes to their presentation shape,
// discarding raw values.
func simplify(changes []types.AttributeChange) []types.SimplifiedChange {
	out := make([]types.SimplifiedChange, 0, len(changes))
	for _, c := range changes {
		out = append(out, types.SimplifiedChange{
			Attribute: c.Label,
			Old:       c.Old,
			New:       c.New,
		})
	}
	return out
}
