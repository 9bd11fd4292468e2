// Package actions classifies raw event strings into display actions.
// The action set is pluggable so deployments can extend the default
// created/updated/deleted enumeration with domain events.
package actions

import (
	"unicode"

	"github.com/mstockton/activitydigest/internal/translate"
)

// Action is a classified event kind.
type Action string

const (
	Created  Action = "created"
	Updated  Action = "updated"
	Deleted  Action = "deleted"
	// Modified is the sentinel used when a batch mixes event kinds.
	Modified Action = "modified"
)

// Set looks an event string up in an action enumeration. Absence is
// reported through the bool, never through an error: a miss simply
// moves resolution to the next fallback.
type Set interface {
	Lookup(event string) (Action, bool)
}

// DefaultSet is the built-in enumeration.
type DefaultSet struct{}

func (DefaultSet) Lookup(event string) (Action, bool) {
	switch event {
	case "created":
		return Created, true
	case "updated":
		return Updated, true
	case "deleted":
		return Deleted, true
	case "modified":
		return Modified, true
	}
	return "", false
}

// MapSet is a Set backed by an explicit event → action map, for
// deployments that configure custom action vocabularies.
type MapSet map[string]Action

func (m MapSet) Lookup(event string) (Action, bool) {
	a, ok := m[event]
	return a, ok
}

// Namer resolves event strings to display names. Resolution order:
// the configured Set, the activities.actions catalog namespace, then
// the capitalized raw string. Never fails.
type Namer struct {
	set     Set
	catalog translate.Catalog
}

// NewNamer creates a Namer. A nil set falls back to DefaultSet.
func NewNamer(set Set, catalog translate.Catalog) *Namer {
	if set == nil {
		set = DefaultSet{}
	}
	return &Namer{set: set, catalog: catalog}
}

// DisplayName returns the display string for an event kind.
func (n *Namer) DisplayName(event string) string {
	if action, ok := n.set.Lookup(event); ok {
		key := "activities.actions." + string(action)
		if n.catalog != nil && n.catalog.Has(key) {
			return n.catalog.Get(key, nil)
		}
		return string(action)
	}
	key := "activities.actions." + event
	if n.catalog != nil && n.catalog.Has(key) {
		return n.catalog.Get(key, nil)
	}
	return capitalize(event)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
