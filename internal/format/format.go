// Package format normalizes raw attribute values into display-safe
// representations for activity digests.
package format

import (
	"encoding/json"
	"reflect"
	"time"
)

// TimeLayout is the display layout for date-like values.
const TimeLayout = "2006-01-02 15:04:05"

// Formatter converts a raw value to its display representation.
type Formatter interface {
	Format(v any) any
}

// AttributeFormatter is the optional domain-supplied override. A
// domain model that needs custom rendering for specific attributes
// (money, enums, localized dates) implements this; returning false
// falls back to the default rules.
type AttributeFormatter interface {
	FormatAttribute(modelType, key string, v any) (any, bool)
}

// Default is the built-in formatter. It is a pure function over its
// input: structured values serialize to canonical JSON, times render
// as "YYYY-MM-DD HH:MM:SS", booleans as "true"/"false", and all other
// scalars pass through unchanged.
type Default struct{}

func (Default) Format(v any) any { return Value(v) }

// Value applies the default formatting rules.
func Value(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case time.Time:
		return t.Format(TimeLayout)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(TimeLayout)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		b, err := json.Marshal(v)
		if err != nil {
			// Unencodable structures degrade to pass-through rather
			// than failing the digest.
			return v
		}
		return string(b)
	default:
		return v
	}
}

// Attribute formats one attribute value, preferring the supplied
// AttributeFormatter when present.
func Attribute(f AttributeFormatter, modelType, key string, v any) any {
	if f != nil {
		if out, ok := f.FormatAttribute(modelType, key, v); ok {
			return out
		}
	}
	return Value(v)
}
