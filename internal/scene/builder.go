package scene

import (
	"github.com/shopspring/decimal"

	"graphar/internal/domain"
	"graphar/internal/value"
)

// ── Scatter-plot builder ────────────────────────────────────
// Projects the chosen numeric fields of every record into the unit
// cube and emits one shaped, colored node per record, each registered
// in the node map. Placement geometry always lives in [0,1]; axis
// decoration reads the original ranges from the returned projections.

// AxisProjection is the original (pre-normalization) value range of one
// axis key, computed once over all records.
type AxisProjection struct {
	Key string
	Min decimal.Decimal
	Max decimal.Decimal
}

// BuildInput is everything a builder variant needs.
type BuildInput struct {
	Records     []domain.Record
	AxisKeys    []string // 2–3 numeric feature keys, selection order kept
	CategoryKey string   // empty means the "default" category
	Theme       Theme

	// WholeDatasetSniffing opts into checking every record when
	// deciding axis-key eligibility instead of only the first one.
	WholeDatasetSniffing bool
}

// BuildScatter builds the scatter point cloud. Rendering preconditions
// that fail (fewer than two usable axis keys, an axis with no coercible
// values) yield an empty root and empty map, never an error: the caller
// surfaces a warning and leaves the scene unplaced.
func BuildScatter(in BuildInput) (*Node, NodeMap, []AxisProjection) {
	root := NewGroup()
	nodes := NodeMap{}

	axes := UsableAxisKeys(in.Records, in.AxisKeys, in.WholeDatasetSniffing)
	if len(axes) < 2 {
		return root, nodes, nil
	}

	var projections []AxisProjection
	for _, key := range axes {
		p, ok := Project(in.Records, key)
		if !ok {
			return root, nodes, nil
		}
		projections = append(projections, p)
	}
	px, py := projections[0], projections[1]
	hasZ := len(projections) == 3

	for _, rec := range in.Records {
		x, ok := rec.Numeric(px.Key)
		if !ok {
			continue
		}
		y, ok := rec.Numeric(py.Key)
		if !ok {
			continue
		}

		pos := Vector3{
			X: value.Normalize(x, px.Min, px.Max),
			Y: value.Normalize(y, py.Min, py.Max),
		}
		if hasZ {
			pz := projections[2]
			if z, ok := rec.Numeric(pz.Key); ok {
				pos.Z = value.Normalize(z, pz.Min, pz.Max)
			}
			// A record without z stays on the z=0 plane.
		}

		category := rec.Category(in.CategoryKey)
		point := newShape(in.Theme.ShapeFor(category), pos, in.Theme.ColorFor(category))
		root.Add(point)
		nodes[point.Handle] = rec
	}

	return root, nodes, projections
}

// UsableAxisKeys intersects the selected features with the fields that
// are numeric-coercible in the first record. A field that is numeric
// only in later records is excluded; WholeDatasetSniffing widens the
// check to every record.
func UsableAxisKeys(records []domain.Record, selected []string, wholeDataset bool) []string {
	if len(records) == 0 {
		return nil
	}
	var usable []string
	for _, key := range selected {
		if wholeDataset {
			if anyNumeric(records, key) {
				usable = append(usable, key)
			}
			continue
		}
		if _, ok := records[0].Numeric(key); ok {
			usable = append(usable, key)
		}
	}
	return usable
}

func anyNumeric(records []domain.Record, key string) bool {
	for _, rec := range records {
		if _, ok := rec.Numeric(key); ok {
			return true
		}
	}
	return false
}

// Project computes the min/max of an axis key over every record,
// skipping values that do not coerce. False means no coercible values.
func Project(records []domain.Record, key string) (AxisProjection, bool) {
	p := AxisProjection{Key: key}
	found := false
	for _, rec := range records {
		d, ok := rec.Numeric(key)
		if !ok {
			continue
		}
		if !found {
			p.Min, p.Max = d, d
			found = true
			continue
		}
		if d.LessThan(p.Min) {
			p.Min = d
		}
		if d.GreaterThan(p.Max) {
			p.Max = d
		}
	}
	return p, found
}
