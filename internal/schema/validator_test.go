package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"graphar/internal/domain"
	"graphar/internal/schema"
	"graphar/internal/value"
)

func TestValidate_Cat2Num(t *testing.T) {
	raw := []byte(`{"name":"A","description":"d","data":[
		{"category":"x","v1":1,"v2":2},
		{"category":"y","v1":3,"v2":4}]}`)

	vd, err := schema.Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if vd.Shape != schema.ShapeCat2Num {
		t.Fatalf("shape = %s, want %s", vd.Shape, schema.ShapeCat2Num)
	}
	if len(vd.Records) != 2 {
		t.Fatalf("records = %d, want 2", len(vd.Records))
	}
	if vd.Records[0].Category != "x" || vd.Records[1].Category != "y" {
		t.Fatalf("categories = %q, %q", vd.Records[0].Category, vd.Records[1].Category)
	}
	for _, rec := range vd.Records {
		if len(rec.Numbers) != 2 {
			t.Fatalf("numeric fields = %d, want 2", len(rec.Numbers))
		}
	}
}

func TestValidate_ShapeSelection(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		shape schema.Shape
	}{
		{"three numeric", `{"category":"a","x":1,"y":2,"z":3}`, schema.ShapeCat3Num},
		{"four numeric", `{"category":"a","w":0,"x":1,"y":2,"z":3}`, schema.ShapeCat4Num},
		{"four numeric one string", `{"category":"a","w":0,"x":1,"y":2,"z":3,"label":"gene"}`, schema.ShapeCat4Num1Str},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := []byte(`{"name":"n","description":"d","data":[` + tt.data + `]}`)
			vd, err := schema.Validate(raw)
			if err != nil {
				t.Fatalf("Validate: %v", err)
			}
			if vd.Shape != tt.shape {
				t.Fatalf("shape = %s, want %s", vd.Shape, tt.shape)
			}
		})
	}
}

func TestValidate_ExtraStringLabel(t *testing.T) {
	raw := []byte(`{"name":"n","description":"d","data":[
		{"category":"a","w":0,"x":1,"y":2,"z":3,"label":"BRCA1"}]}`)
	vd, err := schema.Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if vd.Records[0].Label != "BRCA1" {
		t.Fatalf("label = %q, want BRCA1", vd.Records[0].Label)
	}
}

func TestValidate_TopLevelStructure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{`},
		{"missing name", `{"description":"d","data":[]}`},
		{"non-string name", `{"name":1,"description":"d","data":[]}`},
		{"missing description", `{"name":"n","data":[]}`},
		{"non-array data", `{"name":"n","description":"d","data":{}}`},
		{"non-object element", `{"name":"n","description":"d","data":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := schema.Validate([]byte(tt.raw))
			var se *schema.InvalidStructureError
			if !errors.As(err, &se) {
				t.Fatalf("error = %v, want InvalidStructureError", err)
			}
		})
	}
}

func TestValidate_MissingCategoryNamesIndex(t *testing.T) {
	raw := []byte(`{"name":"n","description":"d","data":[
		{"category":"a","v1":1,"v2":2},
		{"v1":3,"v2":4}]}`)

	_, err := schema.Validate(raw)
	var se *schema.InvalidStructureError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want InvalidStructureError", err)
	}
	if se.Index != 1 {
		t.Fatalf("index = %d, want 1", se.Index)
	}
}

func TestValidate_NoMatchingRule(t *testing.T) {
	// One numeric field matches no rule.
	raw := []byte(`{"name":"n","description":"d","data":[{"category":"a","v1":1}]}`)
	if _, err := schema.Validate(raw); !errors.Is(err, schema.ErrNoMatchingRule) {
		t.Fatalf("error = %v, want ErrNoMatchingRule", err)
	}

	// Mixed shapes across records: no rule matches the whole dataset.
	raw = []byte(`{"name":"n","description":"d","data":[
		{"category":"a","v1":1,"v2":2},
		{"category":"b","v1":1,"v2":2,"v3":3}]}`)
	if _, err := schema.Validate(raw); !errors.Is(err, schema.ErrNoMatchingRule) {
		t.Fatalf("error = %v, want ErrNoMatchingRule", err)
	}
}

func TestRule_ParseDropsBadRecords(t *testing.T) {
	// Matches is dataset-wide, but Parse drops individually bad records
	// rather than failing the dataset.
	num := func(s string) value.Value { return value.Integer(json.Number(s)) }
	good := domain.Record{"category": value.String("a"), "v1": num("1"), "v2": num("2")}
	bad := domain.Record{"category": value.String("b"), "v1": num("1"), "v2": value.Bool(true)}

	rule := schema.Rules()[0] // cat+2num
	parsed, dropped := rule.Parse([]domain.Record{good, bad, good})
	if len(parsed) != 2 {
		t.Fatalf("parsed = %d, want 2", len(parsed))
	}
	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
}

func TestValidate_NumericStringsCount(t *testing.T) {
	// Strings that parse as decimals count as numeric fields.
	raw := []byte(`{"name":"n","description":"d","data":[{"category":"a","v1":"1.5","v2":2}]}`)
	vd, err := schema.Validate(raw)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if vd.Shape != schema.ShapeCat2Num {
		t.Fatalf("shape = %s, want %s", vd.Shape, schema.ShapeCat2Num)
	}
}

func TestDecode_FieldNames(t *testing.T) {
	raw := []byte(`{"name":"n","description":"d","data":[{"category":"a","zeta":1,"alpha":2}]}`)
	doc, err := schema.Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []string{"category", "alpha", "zeta"}
	if len(doc.FieldNames) != len(want) {
		t.Fatalf("fieldNames = %v, want %v", doc.FieldNames, want)
	}
	for i := range want {
		if doc.FieldNames[i] != want[i] {
			t.Fatalf("fieldNames = %v, want %v", doc.FieldNames, want)
		}
	}
}
