package activity

import (
	"github.com/mstockton/activitydigest/internal/types"
)

// Aggregator groups the records of a batch by logical entity and
// merges their attribute changes into one change set per entity.
type Aggregator struct {
	extractor *Extractor
}

// NewAggregator creates an Aggregator over the given extractor.
func NewAggregator(extractor *Extractor) *Aggregator {
	return &Aggregator{extractor: extractor}
}

type entityGroup struct {
	representative types.LogRecord
	changes        []types.AttributeChange
	changeIdx      map[string]int // attribute key → index into changes
}

// Aggregate partitions records by (subject type, subject id, event)
// and merges changes within each group. Groups come back in first-seen
// order. The representative record per group is the one with the
// greatest CreatedAt; on equal timestamps the later record in input
// order wins. Merging overwrites per attribute key in input order, so
// a repeated key keeps only the most recently seen record's change;
// the merged set may show an intermediate-to-final transition rather
// than a recomputed first-to-final diff. Every group yields exactly
// one EntityChangeSet, empty or not.
func (a *Aggregator) Aggregate(records []types.LogRecord) []types.EntityChangeSet {
	groups := make(map[string]*entityGroup)
	var order []string

	for _, r := range records {
		key := r.SubjectType + "|" + r.SubjectID + "|" + r.Event
		g, ok := groups[key]
		if !ok {
			g = &entityGroup{
				representative: r,
				changeIdx:      make(map[string]int),
			}
			groups[key] = g
			order = append(order, key)
		} else if !r.CreatedAt.Before(g.representative.CreatedAt) {
			// Last writer wins, including on timestamp ties.
			g.representative = r
		}

		for _, change := range a.extractor.Extract(r.SubjectType, r.AttributesNew, r.AttributesOld) {
			if idx, seen := g.changeIdx[change.Key]; seen {
				g.changes[idx] = change
				continue
			}
			g.changeIdx[change.Key] = len(g.changes)
			g.changes = append(g.changes, change)
		}
	}

	sets := make([]types.EntityChangeSet, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sets = append(sets, types.EntityChangeSet{
			Type:    g.representative.SubjectType,
			ID:      g.representative.SubjectID,
			Event:   g.representative.Event,
			Changes: g.changes,
		})
	}
	return sets
}
