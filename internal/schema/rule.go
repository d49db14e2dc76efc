package schema

import (
	"github.com/shopspring/decimal"

	"graphar/internal/domain"
	"graphar/internal/value"
)

// ── Schema rules ───────────────────────────────────────────
// Each rule recognizes one accepted record shape:
// category + N numeric fields, optionally + 1 extra string field.
// New shapes are added as new rules; existing rules never change.

// Shape names the record shape a rule accepts.
type Shape string

const (
	ShapeCat2Num     Shape = "cat+2num"
	ShapeCat3Num     Shape = "cat+3num"
	ShapeCat4Num     Shape = "cat+4num"
	ShapeCat4Num1Str Shape = "cat+4num+1str"
)

// ParsedRecord is one record materialized under a matched rule.
// Source keeps the original record so rendered nodes can map back to it.
type ParsedRecord struct {
	Source   domain.Record
	Category string
	Numbers  map[string]decimal.Decimal
	Label    string // extra string field, ShapeCat4Num1Str only
}

// ValidatedDataset is the typed result of a successful validation.
type ValidatedDataset struct {
	Shape       Shape
	Name        string
	Description string
	Records     []ParsedRecord

	// Dropped counts records that matched the rule's dataset-wide
	// predicate but failed its per-record parse.
	Dropped int
}

// Rule is one accepted record shape. Matches is a predicate over all
// records simultaneously; Parse re-walks them, materializing each record
// and silently dropping the ones that individually fail. The asymmetry
// is deliberate: once a shape is chosen, parsing is best-effort.
type Rule interface {
	Shape() Shape
	Matches(records []domain.Record) bool
	Parse(records []domain.Record) ([]ParsedRecord, int)
}

// Rules is the fixed rule list, checked in order. First full match wins.
func Rules() []Rule {
	return []Rule{
		&shapeRule{shape: ShapeCat2Num, numeric: 2},
		&shapeRule{shape: ShapeCat3Num, numeric: 3},
		&shapeRule{shape: ShapeCat4Num, numeric: 4},
		&shapeRule{shape: ShapeCat4Num1Str, numeric: 4, extraString: true},
	}
}

type shapeRule struct {
	shape       Shape
	numeric     int
	extraString bool
}

func (r *shapeRule) Shape() Shape { return r.shape }

func (r *shapeRule) totalKeys() int {
	n := r.numeric + 1 // numeric fields + category
	if r.extraString {
		n++
	}
	return n
}

func (r *shapeRule) Matches(records []domain.Record) bool {
	for _, rec := range records {
		if !r.matchesRecord(rec) {
			return false
		}
	}
	return true
}

func (r *shapeRule) matchesRecord(rec domain.Record) bool {
	if len(rec) != r.totalKeys() {
		return false
	}
	cat, ok := rec.Str(domain.CategoryField)
	if !ok || cat == "" {
		return false
	}
	numeric, strs := countFields(rec)
	if numeric != r.numeric {
		return false
	}
	if r.extraString && strs != 1 {
		return false
	}
	return true
}

func (r *shapeRule) Parse(records []domain.Record) ([]ParsedRecord, int) {
	parsed := make([]ParsedRecord, 0, len(records))
	dropped := 0
	for _, rec := range records {
		p, ok := r.parseRecord(rec)
		if !ok {
			dropped++
			continue
		}
		parsed = append(parsed, p)
	}
	return parsed, dropped
}

func (r *shapeRule) parseRecord(rec domain.Record) (ParsedRecord, bool) {
	p := ParsedRecord{
		Source:  rec,
		Numbers: make(map[string]decimal.Decimal, r.numeric),
	}

	cat, ok := rec.Str(domain.CategoryField)
	if !ok || cat == "" {
		return ParsedRecord{}, false
	}
	p.Category = cat

	for k, v := range rec {
		if k == domain.CategoryField {
			continue
		}
		if d, ok := value.Coerce(v); ok {
			p.Numbers[k] = d
			continue
		}
		if s, ok := v.Str(); ok && r.extraString && p.Label == "" {
			p.Label = s
			continue
		}
		return ParsedRecord{}, false
	}

	if len(p.Numbers) != r.numeric {
		return ParsedRecord{}, false
	}
	if r.extraString && p.Label == "" {
		return ParsedRecord{}, false
	}
	return p, true
}

// countFields tallies the non-category fields of a record:
// numeric-coercible ones, and string fields that do not coerce.
func countFields(rec domain.Record) (numeric, strs int) {
	for k, v := range rec {
		if k == domain.CategoryField {
			continue
		}
		if _, ok := value.Coerce(v); ok {
			numeric++
			continue
		}
		if _, ok := v.Str(); ok {
			strs++
		}
	}
	return numeric, strs
}
