// Package translate provides the translation catalog and the attribute
// label resolver used when rendering activity digests. Catalog keys use
// dotted namespaces: activities.models.<key>, activities.actions.<key>,
// activities.attributes.<model>.<attr>, activities.batch_message,
// validation.attributes.<attr>.
package translate

import (
	"sort"
	"strings"
	"sync"
)

// Catalog is the translation lookup collaborator. How a catalog gets
// populated (files, embedded data, a service) is outside this package;
// resolution is always by full dotted key.
type Catalog interface {
	// Has reports whether a mapping exists for key.
	Has(key string) bool

	// Get returns the string for key with :name placeholders replaced
	// from params. Missing keys return "".
	Get(key string, params map[string]string) string
}

// MemoryCatalog implements Catalog over an in-memory map.
// Intended for tests, demos, and embedded default strings.
type MemoryCatalog struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryCatalog creates an empty MemoryCatalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{entries: make(map[string]string)}
}

// Set adds or replaces a single mapping.
func (c *MemoryCatalog) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// SetAll adds or replaces every mapping in m.
func (c *MemoryCatalog) SetAll(m map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range m {
		c.entries[k] = v
	}
}

func (c *MemoryCatalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

func (c *MemoryCatalog) Get(key string, params map[string]string) string {
	c.mu.RLock()
	line, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return ""
	}
	return Expand(line, params)
}

// Expand replaces :name placeholders in line with values from params.
// Longer names are replaced first so :causer_id never collides with
// :causer.
func Expand(line string, params map[string]string) string {
	if len(params) == 0 {
		return line
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	// Longest first, then lexicographic, so iteration order over the
	// params map never changes the result.
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		line = strings.ReplaceAll(line, ":"+name, params[name])
	}
	return line
}

// DefaultBatchMessage is the built-in batch summary template. It is
// both the activities.batch_message entry of the Default catalog and
// the fallback used when no catalog carries that key.
const DefaultBatchMessage = ":causer :action :count record(s)"

// Default returns a MemoryCatalog seeded with the built-in English
// strings for the default action set and the batch message template.
func Default() *MemoryCatalog {
	c := NewMemoryCatalog()
	c.SetAll(map[string]string{
		"activities.batch_message":    DefaultBatchMessage,
		"activities.system":           "System",
		"activities.actions.created":  "created",
		"activities.actions.updated":  "updated",
		"activities.actions.deleted":  "deleted",
		"activities.actions.modified": "modified",
	})
	return c
}
