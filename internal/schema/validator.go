package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"graphar/internal/domain"
	"graphar/internal/value"
)

// ── Validator ──────────────────────────────────────────────
// Gate between arbitrary JSON and the rendering pipeline: proves that a
// document fits one of the fixed record shapes so downstream code can
// assume axis keys are uniformly numeric.

// Document is the raw decoded form of a dataset file.
type Document struct {
	Name        string
	Description string
	Records     []domain.Record
	FieldNames  []string
}

// Validate classifies raw JSON against the fixed rule list and parses it
// into a typed dataset. The whole dataset must match a single rule;
// rules are tried in declaration order and the first full match wins.
func Validate(raw []byte) (*ValidatedDataset, error) {
	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	for _, rule := range Rules() {
		if !rule.Matches(doc.Records) {
			continue
		}
		parsed, dropped := rule.Parse(doc.Records)
		return &ValidatedDataset{
			Shape:       rule.Shape(),
			Name:        doc.Name,
			Description: doc.Description,
			Records:     parsed,
			Dropped:     dropped,
		}, nil
	}
	return nil, ErrNoMatchingRule
}

// Decode parses and structurally checks a dataset document: top-level
// name, description and data, object-only data elements, and a non-empty
// category string on every record. It does not apply shape rules.
func Decode(raw []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var top map[string]any
	if err := dec.Decode(&top); err != nil {
		return nil, &InvalidStructureError{Index: -1, Reason: fmt.Sprintf("malformed json: %v", err)}
	}

	name, ok := top["name"].(string)
	if !ok {
		return nil, &InvalidStructureError{Index: -1, Reason: `missing or non-string "name"`}
	}
	desc, ok := top["description"].(string)
	if !ok {
		return nil, &InvalidStructureError{Index: -1, Reason: `missing or non-string "description"`}
	}
	data, ok := top["data"].([]any)
	if !ok {
		return nil, &InvalidStructureError{Index: -1, Reason: `missing or non-array "data"`}
	}

	records := make([]domain.Record, 0, len(data))
	for i, el := range data {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, structErr(i, "data element is not an object")
		}
		rec := make(domain.Record, len(obj))
		for k, v := range obj {
			rec[k] = value.FromJSON(v)
		}
		cat, ok := rec.Str(domain.CategoryField)
		if !ok || cat == "" {
			return nil, structErr(i, "missing or empty category")
		}
		records = append(records, rec)
	}

	return &Document{
		Name:        name,
		Description: desc,
		Records:     records,
		FieldNames:  fieldNames(records),
	}, nil
}

// fieldNames derives a stable field order from the first record:
// category first, remaining fields sorted.
func fieldNames(records []domain.Record) []string {
	if len(records) == 0 {
		return nil
	}
	var rest []string
	for k := range records[0] {
		if k != domain.CategoryField {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append([]string{domain.CategoryField}, rest...)
}
