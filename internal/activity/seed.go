// Seed populates a log-record store with demo data for digest demos.
package activity

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mstockton/activitydigest/internal/types"
)

// SeedDemoData populates the store with a realistic audit trail: a
// user onboarding batch, an order fulfillment batch, and a handful of
// unbatched records.
func SeedDemoData(ctx context.Context, store Store) error {
	var records []types.LogRecord

	admin := &types.CauserRef{Type: "User", ID: "admin-1"}
	fulfillment := &types.CauserRef{Type: "User", ID: "clerk-7"}

	// ─── User onboarding: create then two quick corrections ───
	onboarding := uuid.New().String()
	userID := uuid.New().String()

	records = append(records, makeRecord(
		"User", userID, "created", onboarding, admin,
		mustTime("2026-02-03T09:00:00Z"),
		map[string]any{"name": "Dana Whitfield", "email": "dana@example.com", "active": true},
		nil,
	))
	records = append(records, makeRecord(
		"User", userID, "updated", onboarding, admin,
		mustTime("2026-02-03T09:02:00Z"),
		map[string]any{"email": "dana.whitfield@example.com"},
		map[string]any{"email": "dana@example.com"},
	))
	records = append(records, makeRecord(
		"User", userID, "updated", onboarding, admin,
		mustTime("2026-02-03T09:05:00Z"),
		map[string]any{"role": "manager"},
		map[string]any{"role": "member"},
	))

	// ─── Order fulfillment: status walks draft → shipped ───
	shipping := uuid.New().String()
	orderID := uuid.New().String()

	statusWalk := []struct {
		at       string
		from, to string
	}{
		{"2026-02-04T10:00:00Z", "draft", "pending"},
		{"2026-02-04T13:30:00Z", "pending", "packed"},
		{"2026-02-05T08:15:00Z", "packed", "shipped"},
	}
	for _, step := range statusWalk {
		records = append(records, makeRecord(
			"Order", orderID, "updated", shipping, fulfillment,
			mustTime(step.at),
			map[string]any{"status": step.to},
			map[string]any{"status": step.from},
		))
	}

	// Unbatched background churn.
	records = append(records, makeRecord(
		"Order", uuid.New().String(), "deleted", "", nil,
		mustTime("2026-02-05T23:00:00Z"),
		nil,
		map[string]any{"status": "cancelled"},
	))

	if err := store.Append(ctx, records...); err != nil {
		return fmt.Errorf("seeding record store: %w", err)
	}
	log.Printf("seeded %d log records across 2 demo batches", len(records))
	return nil
}

func makeRecord(
	subjectType, subjectID, event, batchID string,
	causer *types.CauserRef,
	createdAt time.Time,
	attrNew, attrOld map[string]any,
) types.LogRecord {
	return types.LogRecord{
		ID:            uuid.New().String(),
		SubjectType:   subjectType,
		SubjectID:     subjectID,
		Event:         event,
		AttributesNew: attrNew,
		AttributesOld: attrOld,
		BatchID:       batchID,
		Causer:        causer,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		log.Fatalf("invalid time literal %q: %v", s, err)
	}
	return t
}
