package domain

import "time"

// Dataset is a named collection of records backed by a flat JSON file.
// Catalog scans load headers only (Records nil); the full record set is
// loaded on demand when a graph is built.
type Dataset struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SourceLocation string    `json:"sourceLocation,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`

	// FieldNames lists the record fields in a stable order: category
	// first, then the remaining fields of the first record sorted.
	FieldNames []string `json:"fieldNames,omitempty"`

	Records []Record `json:"-"`
}

// Loaded reports whether the full record set has been read from disk.
func (d *Dataset) Loaded() bool { return d.Records != nil }
