package activity

import (
	"reflect"
	"sort"

	"github.com/mstockton/activitydigest/internal/format"
	"github.com/mstockton/activitydigest/internal/translate"
	"github.com/mstockton/activitydigest/internal/types"
)

// Extractor compares a record's new and old attribute maps and emits
// the attribute-level changes that actually differ.
type Extractor struct {
	labels    *translate.Labels
	formatter format.AttributeFormatter // optional domain override
}

// NewExtractor creates an Extractor. formatter may be nil, in which
// case the default formatting rules apply to every value.
func NewExtractor(labels *translate.Labels, formatter format.AttributeFormatter) *Extractor {
	return &Extractor{labels: labels, formatter: formatter}
}

// Extract emits one AttributeChange per key that is present in BOTH
// maps with differing raw values. Difference is checked on raw values,
// before formatting; formatted representations may still coincide.
// Keys present only in attrOld (removed attributes) are not emitted.
// Output is ordered by key for determinism.
func (e *Extractor) Extract(modelType string, attrNew, attrOld map[string]any) []types.AttributeChange {
	keys := make([]string, 0, len(attrNew))
	for key := range attrNew {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var changes []types.AttributeChange
	for _, key := range keys {
		oldVal, ok := attrOld[key]
		if !ok {
			continue
		}
		newVal := attrNew[key]
		if reflect.DeepEqual(oldVal, newVal) {
			continue
		}
		changes = append(changes, types.AttributeChange{
			Key:    key,
			Label:  e.labels.LabelFor(key, modelType),
			Old:    format.Attribute(e.formatter, modelType, key, oldVal),
			New:    format.Attribute(e.formatter, modelType, key, newVal),
			RawOld: oldVal,
			RawNew: newVal,
		})
	}
	return changes
}
