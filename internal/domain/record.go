package domain

import (
	"github.com/shopspring/decimal"

	"graphar/internal/value"
)

// CategoryField is the record field whose string value selects shape and
// color through a theme.
const CategoryField = "category"

// DefaultCategory is the literal category a point degrades to when no
// category field was selected.
const DefaultCategory = "default"

// Record is a single row of a dataset: field name → scalar value.
// Records are immutable once loaded.
type Record map[string]value.Value

// Numeric looks up a field and coerces it to a decimal.
// A missing key reports false, same as a non-coercible value.
func (r Record) Numeric(key string) (decimal.Decimal, bool) {
	v, ok := r[key]
	if !ok {
		return decimal.Decimal{}, false
	}
	return value.Coerce(v)
}

// Str looks up a field as a string.
func (r Record) Str(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	return v.Str()
}

// Category resolves the category value for the given key, degrading to
// DefaultCategory when the key is empty or the field is not a string.
func (r Record) Category(key string) string {
	if key == "" {
		return DefaultCategory
	}
	s, ok := r.Str(key)
	if !ok || s == "" {
		return DefaultCategory
	}
	return s
}

// NumericKeys returns the fields of r whose values are numeric-coercible,
// excluding the category field.
func (r Record) NumericKeys() []string {
	var keys []string
	for k, v := range r {
		if k == CategoryField {
			continue
		}
		if _, ok := value.Coerce(v); ok {
			keys = append(keys, k)
		}
	}
	return keys
}
