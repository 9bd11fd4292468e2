package activity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstockton/activitydigest/internal/actions"
	"github.com/mstockton/activitydigest/internal/translate"
	"github.com/mstockton/activitydigest/internal/types"
)

func testSummarizer(causers CauserResolver) *Summarizer {
	catalog := translate.Default()
	catalog.SetAll(map[string]string{
		"activities.models.user":  "Account",
		"activities.models.order": "Purchase order",
	})
	labels := translate.NewLabels(catalog)
	namer := actions.NewNamer(nil, catalog)
	aggregator := NewAggregator(NewExtractor(labels, nil))
	return NewSummarizer(aggregator, labels, namer, catalog, causers)
}

func namedCauser(name string) CauserResolver {
	return CauserResolverFunc(func(ref *types.CauserRef) (string, bool) {
		return name, true
	})
}

func TestSummarizer_EmptyBatchIsNoActivitiesFound(t *testing.T) {
	s := testSummarizer(nil)

	_, err := s.Summarize(nil, "x")

	var batchErr *types.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, types.NoActivitiesFound, batchErr.Code)
	assert.Equal(t, "x", batchErr.BatchID)
}

func TestSummarizer_FiltersToRequestedBatch(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "updated", "b1", 0, map[string]any{"name": "A"}, map[string]any{"name": "Z"}),
		testRecord("Order", "o1", "updated", "b2", 1, map[string]any{"status": "paid"}, map[string]any{"status": "draft"}),
	}

	summary, err := s.Summarize(records, "b2")
	require.NoError(t, err)

	assert.Equal(t, "b2", summary.BatchID)
	require.Len(t, summary.Entities, 1)
	assert.Equal(t, "Purchase order", summary.Entities[0].Type)
}

func TestSummarizer_UnknownBatchIsNoActivitiesFound(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "updated", "b1", 0, nil, nil),
	}

	_, err := s.Summarize(records, "missing")

	var batchErr *types.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, types.NoActivitiesFound, batchErr.Code)
	assert.Equal(t, "missing", batchErr.BatchID)
}

func TestSummarizer_CommonActionWhenUniform(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "updated", "b1", 0, nil, nil),
		testRecord("User", "u2", "updated", "b1", 1, nil, nil),
		testRecord("Order", "o1", "updated", "b1", 2, nil, nil),
	}

	summary, err := s.Summarize(records, "b1")
	require.NoError(t, err)
	assert.Equal(t, "updated", summary.Action)
}

func TestSummarizer_MixedEventsFallBackToModified(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "updated", "b1", 0, nil, nil),
		testRecord("User", "u2", "deleted", "b1", 1, nil, nil),
	}

	summary, err := s.Summarize(records, "b1")
	require.NoError(t, err)
	assert.Equal(t, "modified", summary.Action)
}

func TestSummarizer_CauserResolvedFromFirstRecord(t *testing.T) {
	s := testSummarizer(namedCauser("Dana Whitfield"))

	rec := testRecord("User", "u1", "updated", "b1", 0, nil, nil)
	rec.Causer = &types.CauserRef{Type: "User", ID: "admin-1"}

	summary, err := s.Summarize([]types.LogRecord{rec}, "b1")
	require.NoError(t, err)

	assert.Equal(t, "Dana Whitfield", summary.Causer)
	assert.Equal(t, "User", summary.CauserType)
	assert.Equal(t, "admin-1", summary.CauserID)
}

func TestSummarizer_AbsentCauserDefaultsToSystem(t *testing.T) {
	s := testSummarizer(namedCauser("never used"))

	rec := testRecord("User", "u1", "updated", "b1", 0, nil, nil)

	summary, err := s.Summarize([]types.LogRecord{rec}, "b1")
	require.NoError(t, err)

	assert.Equal(t, "System", summary.Causer)
	assert.Empty(t, summary.CauserType)
	assert.Empty(t, summary.CauserID)
}

func TestSummarizer_UnresolvableCauserDefaultsToSystem(t *testing.T) {
	s := testSummarizer(CauserResolverFunc(func(ref *types.CauserRef) (string, bool) {
		return "", false
	}))

	rec := testRecord("User", "u1", "updated", "b1", 0, nil, nil)
	rec.Causer = &types.CauserRef{Type: "User", ID: "ghost"}

	summary, err := s.Summarize([]types.LogRecord{rec}, "b1")
	require.NoError(t, err)

	assert.Equal(t, "System", summary.Causer)
	assert.Equal(t, "ghost", summary.CauserID, "reference fields survive failed name resolution")
}

// emptyAggregator simulates a domain aggregation that extracts no
// entities, which the concrete Aggregator never does for non-empty
// input.
type emptyAggregator struct{}

func (emptyAggregator) Aggregate([]types.LogRecord) []types.EntityChangeSet { return nil }

func TestSummarizer_EmptyAggregationIsNoEntitiesExtracted(t *testing.T) {
	catalog := translate.Default()
	labels := translate.NewLabels(catalog)
	s := NewSummarizer(emptyAggregator{}, labels, actions.NewNamer(nil, catalog), catalog, nil)

	rec := testRecord("User", "u1", "updated", "b1", 0,
		map[string]any{"name": "Dana W"}, map[string]any{"name": "Dana"})

	_, err := s.Summarize([]types.LogRecord{rec}, "b1")

	var batchErr *types.BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, types.NoEntitiesExtracted, batchErr.Code)
	assert.Equal(t, "b1", batchErr.BatchID)
	require.NotNil(t, batchErr.Sample)
	assert.Equal(t, "User", batchErr.Sample.SubjectType)
	assert.Equal(t, "u1", batchErr.Sample.SubjectID)
	assert.Equal(t, "updated", batchErr.Sample.Event)
}

func TestSummarizer_MessageFallbackWithoutCatalog(t *testing.T) {
	labels := translate.NewLabels(translate.NewMemoryCatalog())
	aggregator := NewAggregator(NewExtractor(labels, nil))
	s := NewSummarizer(aggregator, labels, actions.NewNamer(nil, nil), nil, nil)

	rec := testRecord("User", "u1", "updated", "b1", 0, nil, nil)

	summary, err := s.Summarize([]types.LogRecord{rec}, "b1")
	require.NoError(t, err)

	// No catalog anywhere: the shared built-in template still renders.
	assert.Equal(t, "System updated 1 record(s)", summary.Message)
}

func TestSummarizer_MessageFromTemplate(t *testing.T) {
	s := testSummarizer(namedCauser("Dana"))

	rec := testRecord("User", "u1", "updated", "b1", 0, nil, nil)
	rec.Causer = &types.CauserRef{Type: "User", ID: "admin-1"}
	other := testRecord("Order", "o1", "updated", "b1", 1, nil, nil)

	summary, err := s.Summarize([]types.LogRecord{rec, other}, "b1")
	require.NoError(t, err)

	assert.Equal(t, "Dana updated 2 record(s)", summary.Message)
}

func TestSummarizer_EntitiesReducedToSimplifiedChanges(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "updated", "b1", 0,
			map[string]any{"name": "Dana W", "active": true},
			map[string]any{"name": "Dana", "active": false}),
	}

	summary, err := s.Summarize(records, "b1")
	require.NoError(t, err)

	require.Len(t, summary.Entities, 1)
	entity := summary.Entities[0]
	assert.Equal(t, "Account", entity.Type, "model label translated")
	assert.Equal(t, "u1", entity.ID)
	require.Len(t, entity.Changes, 2)
	assert.Equal(t, "Active", entity.Changes[0].Attribute)
	assert.Equal(t, "false", entity.Changes[0].Old)
	assert.Equal(t, "true", entity.Changes[0].New)
	assert.Equal(t, "Name", entity.Changes[1].Attribute)
}

func TestSummarizer_EmptyBatchIDSummarizesWholeCollection(t *testing.T) {
	s := testSummarizer(nil)

	records := []types.LogRecord{
		testRecord("User", "u1", "created", "b1", 0, map[string]any{"name": "A"}, nil),
		testRecord("Order", "o1", "created", "b2", 1, map[string]any{"status": "draft"}, nil),
	}

	summary, err := s.Summarize(records, "")
	require.NoError(t, err)

	assert.Empty(t, summary.BatchID)
	assert.Len(t, summary.Entities, 2)
	assert.Equal(t, "created", summary.Action)
}

func TestSummarizer_BatchErrorIsPlainErrorToo(t *testing.T) {
	s := testSummarizer(nil)

	_, err := s.Summarize(nil, "x")
	require.Error(t, err)
	assert.Equal(t, "batch x: no_activities_found", err.Error())
}

func TestSummarizer_SeededBatchRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, SeedDemoData(ctx, store))

	records, err := store.List(ctx, QueryOptions{SubjectType: "Order", Event: "updated"})
	require.NoError(t, err)
	require.NotEmpty(t, records)
	batchID := records[0].BatchID
	require.NotEmpty(t, batchID)

	all, err := store.List(ctx, QueryOptions{})
	require.NoError(t, err)

	summary, err := testSummarizer(namedCauser("Fulfillment")).Summarize(all, batchID)
	require.NoError(t, err)

	assert.Equal(t, "updated", summary.Action)
	require.Len(t, summary.Entities, 1)
	require.Len(t, summary.Entities[0].Changes, 1)
	// Three status transitions merge to the final one only.
	assert.Equal(t, "packed", summary.Entities[0].Changes[0].Old)
	assert.Equal(t, "shipped", summary.Entities[0].Changes[0].New)
}
