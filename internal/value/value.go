package value

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ── Value ──────────────────────────────────────────────────
// Tagged scalar for dynamically typed JSON fields.
// Built at the parsing boundary (always decode with json.Number so the
// original digit text survives) and consumed through Coerce below.

// Kind tags the scalar variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInteger
	KindFloat
	KindDecimal
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindBool:
		return "bool"
	default:
		return "null"
	}
}

// Value is a single dynamically typed scalar field of a record.
type Value struct {
	kind Kind
	str  string          // KindString
	num  string          // KindInteger / KindFloat: original digit text
	dec  decimal.Decimal // KindDecimal
	b    bool            // KindBool
}

// Null returns the unsupported/absent scalar.
func Null() Value { return Value{kind: KindNull} }

// String wraps a string field value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool wraps a boolean field value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Decimal wraps an exact decimal field value.
func Decimal(d decimal.Decimal) Value { return Value{kind: KindDecimal, dec: d} }

// Integer wraps an integral json.Number, keeping its digit text.
func Integer(text json.Number) Value { return Value{kind: KindInteger, num: text.String()} }

// Float wraps a fractional json.Number, keeping its digit text.
func Float(text json.Number) Value { return Value{kind: KindFloat, num: text.String()} }

// FromJSON converts a decoded JSON value (from a decoder with UseNumber set)
// into a Value. Arrays, objects and nulls all collapse to KindNull: they are
// never coercible and never count as string fields during schema matching.
func FromJSON(v any) Value {
	switch t := v.(type) {
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			return Float(t)
		}
		return Integer(t)
	case float64:
		// Decoders without UseNumber hand us binary floats; go through the
		// shortest decimal text rather than the bit pattern.
		n, _ := json.Marshal(t)
		return Float(json.Number(n))
	default:
		return Null()
	}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload and whether the value is a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == KindString
}

// Display renders the value for record summaries.
func (v Value) Display() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInteger, KindFloat:
		return v.num
	case KindDecimal:
		return v.dec.String()
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// MarshalJSON writes the value back out as the JSON scalar it came from.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindInteger, KindFloat:
		return []byte(v.num), nil
	case KindDecimal:
		return []byte(v.dec.String()), nil
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// ── Coercion ───────────────────────────────────────────────

// Coerce converts a value into an exact decimal number.
// Decimals pass through untouched; integers and floats convert through
// their decimal digit text, never through a binary float; strings are
// accepted when they parse as decimals. Everything else reports false.
func Coerce(v Value) (decimal.Decimal, bool) {
	switch v.kind {
	case KindDecimal:
		return v.dec, true
	case KindInteger, KindFloat:
		d, err := decimal.NewFromString(v.num)
		return d, err == nil
	case KindString:
		s := strings.TrimSpace(v.str)
		if s == "" {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(s)
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

// ── Normalization ──────────────────────────────────────────

// Normalize projects v into the unit interval spanned by [min, max].
// A flat axis (min == max) maps every value to 0.5 rather than failing.
// All arithmetic stays in decimal; the float conversion happens exactly
// once, at the end, so rounding never compounds across points.
func Normalize(v, min, max decimal.Decimal) float32 {
	if min.Equal(max) {
		return 0.5
	}
	f, _ := v.Sub(min).Div(max.Sub(min)).Float64()
	return float32(f)
}
