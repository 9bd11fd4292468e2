package translate

import (
	"strings"
	"unicode"
)

// Labels resolves raw attribute keys and model types to display
// strings. Resolution always succeeds: unmapped keys degrade to a
// humanized form of the key itself.
type Labels struct {
	catalog Catalog
}

// NewLabels creates a Labels resolver backed by catalog.
func NewLabels(catalog Catalog) *Labels {
	return &Labels{catalog: catalog}
}

// LabelFor resolves an attribute key to its display label. Lookup
// order: the per-model namespace (when modelType is non-empty), the
// global validation-attributes namespace, then a humanized fallback.
func (l *Labels) LabelFor(key, modelType string) string {
	if modelType != "" {
		modelKey := "activities.attributes." + ModelKey(modelType) + "." + key
		if l.catalog.Has(modelKey) {
			return l.catalog.Get(modelKey, nil)
		}
	}
	validationKey := "validation.attributes." + key
	if l.catalog.Has(validationKey) {
		return l.catalog.Get(validationKey, nil)
	}
	return Humanize(key)
}

// ModelLabel resolves a model type to its translated display name,
// falling back to the unqualified type name when no mapping exists.
func (l *Labels) ModelLabel(modelType string) string {
	name := Unqualified(modelType)
	key := "activities.models." + ModelKey(modelType)
	if l.catalog.Has(key) {
		return l.catalog.Get(key, nil)
	}
	return name
}

// Unqualified strips any package or namespace qualifier from a model
// type, keeping the final path segment.
func Unqualified(modelType string) string {
	idx := strings.LastIndexAny(modelType, "./\\")
	if idx < 0 {
		return modelType
	}
	return modelType[idx+1:]
}

// ModelKey derives the catalog key segment for a model type: the
// unqualified name converted to snake case.
func ModelKey(modelType string) string {
	return SnakeCase(Unqualified(modelType))
}

// SnakeCase converts CamelCase or mixedCase to snake_case. Runs of
// upper-case letters stay together ("HTTPServer" → "http_server").
func SnakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (!unicode.IsUpper(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Humanize turns an attribute key into a readable label: underscores
// become spaces and the first character is upper-cased.
func Humanize(key string) string {
	label := strings.ReplaceAll(key, "_", " ")
	if label == "" {
		return label
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
