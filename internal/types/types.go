// Package types provides the shared structs for the activity digest
// pipeline. These are the stable shapes exchanged between the log-entry
// store, the change-formatting engine, and presentation callers.
package types

import (
	"fmt"
	"time"
)

// CauserRef is an opaque reference to whoever caused a logged change.
// Resolution to a display name happens through a CauserResolver
// collaborator; a nil ref means the change was system-initiated.
type CauserRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// LogRecord is one immutable audit-log entry describing a single
// create/update/delete event on a domain model. Records are supplied by
// an external store; the digest engine never mutates them.
type LogRecord struct {
	ID            string         `json:"id"`
	SubjectType   string         `json:"subject_type"`
	SubjectID     string         `json:"subject_id"`
	Event         string         `json:"event"` // "created", "updated", "deleted", ...
	AttributesNew map[string]any `json:"attributes_new"`
	AttributesOld map[string]any `json:"attributes_old"`
	BatchID       string         `json:"batch_id,omitempty"`
	Causer        *CauserRef     `json:"causer,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// AttributeChange is one attribute-level difference extracted from a
// record's new/old attribute maps. Old and New hold display-formatted
// values; RawOld and RawNew keep the unformatted originals for
// consumers that need them.
type AttributeChange struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Old    any    `json:"old"`
	New    any    `json:"new"`
	RawOld any    `json:"raw_old"`
	RawNew any    `json:"raw_new"`
}

// EntityChangeSet groups every change for one (subject type, subject
// id, event) triple within a batch. Changes are ordered; when the same
// attribute key repeats across records in the group, the later record's
// change replaces the earlier one in place.
type EntityChangeSet struct {
	Type    string            `json:"type"`
	ID      string            `json:"id"`
	Event   string            `json:"event"`
	Changes []AttributeChange `json:"changes"`
}

// SimplifiedChange is the presentation reduction of an AttributeChange:
// translated label plus formatted values, raw fields discarded.
type SimplifiedChange struct {
	Attribute string `json:"attribute"`
	Old       any    `json:"old"`
	New       any    `json:"new"`
}

// EntitySummary is one entity's entry in a BatchSummary. Type carries
// the translated model label, not the raw subject type.
type EntitySummary struct {
	Type    string             `json:"type"`
	ID      string             `json:"id"`
	Event   string             `json:"event"`
	Changes []SimplifiedChange `json:"changes"`
}

// BatchSummary is the digest of one logical unit of work: a generated
// message, the common action and causer, and per-entity change lists.
// Computed on demand, never persisted.
type BatchSummary struct {
	BatchID    string          `json:"batch_id"`
	Message    string          `json:"message"`
	Causer     string          `json:"causer"`
	CauserType string          `json:"causer_type,omitempty"`
	CauserID   string          `json:"causer_id,omitempty"`
	Action     string          `json:"action"`
	Entities   []EntitySummary `json:"entities"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ErrorCode classifies BatchError values.
type ErrorCode string

const (
	// NoActivitiesFound means filtering by batch ID matched no records.
	NoActivitiesFound ErrorCode = "no_activities_found"
	// NoEntitiesExtracted means aggregation produced zero entities from
	// a non-empty record set. Defensive: aggregation normally emits one
	// set per group.
	NoEntitiesExtracted ErrorCode = "no_entities_extracted"
)

// RecordSample holds the essential fields of a record, kept on a
// BatchError for diagnostics.
type RecordSample struct {
	ID          string `json:"id"`
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
	Event       string `json:"event"`
	BatchID     string `json:"batch_id,omitempty"`
}

// BatchError is the typed failure result of batch summarization.
// It is data, not a control-flow exception: callers branch on Code.
type BatchError struct {
	Code    ErrorCode     `json:"code"`
	BatchID string        `json:"batch_id,omitempty"`
	Sample  *RecordSample `json:"sample,omitempty"`
}

func (e *BatchError) Error() string {
	if e.BatchID != "" {
		return fmt.Sprintf("batch %s: %s", e.BatchID, e.Code)
	}
	return string(e.Code)
}

// SampleOf extracts the diagnostic essentials of a record.
func SampleOf(r LogRecord) *RecordSample {
	return &RecordSample{
		ID:          r.ID,
		SubjectType: r.SubjectType,
		SubjectID:   r.SubjectID,
		Event:       r.Event,
		BatchID:     r.BatchID,
	}
}
