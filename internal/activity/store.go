// Package activity provides the batch-reconciliation and
// change-formatting engine over audit-log records: change extraction,
// per-entity aggregation, and batch summarization.
package activity

import (
	"context"
	"time"

	"github.com/mstockton/activitydigest/internal/types"
)

// Store is the log-entry store collaborator. Records come back in a
// stable order (CreatedAt ascending, input order on ties) because the
// aggregation pipeline's merge semantics depend on a total order.
type Store interface {
	// Append adds records to the store.
	Append(ctx context.Context, records ...types.LogRecord) error

	// List returns the records matching opts.
	List(ctx context.Context, opts QueryOptions) ([]types.LogRecord, error)
}

// QueryOptions filters a store listing. Zero values mean "no filter".
type QueryOptions struct {
	SubjectType string
	SubjectID   string
	Event       string
	BatchID     string
	CauserType  string
	CauserID    string
	Since       *time.Time
	Until       *time.Time
	Limit       int // max results (default: no limit)
}
