package scene

import "github.com/shopspring/decimal"

// ── Axis decoration ────────────────────────────────────────
// Axes are drawn against the fixed unit cube; only the tick labels know
// the original value ranges, read back from the projections.

// TickCount is the number of tick labels per axis, endpoints included.
const TickCount = 11

// Fixed per-axis color convention.
var axisColors = []Color{ColorRed, ColorGreen, ColorBlue}

// Unit direction of each axis inside the cube.
var axisDirections = []Vector3{{X: 1}, {Y: 1}, {Z: 1}}

// AddAxes decorates root with one unit axis line per projection, an
// end-of-axis label carrying the field name, and TickCount tick labels
// interpolated over the original range, formatted to one decimal. With
// two projections the z axis is omitted entirely.
func AddAxes(root *Node, projections []AxisProjection) {
	for i, p := range projections {
		if i >= len(axisDirections) {
			break
		}
		dir := axisDirections[i]
		color := axisColors[i]

		root.Add(newLine(Vector3{}, dir, color))
		root.Add(newText(p.Key, scale(dir, 1.05), color))

		span := p.Max.Sub(p.Min)
		for tick := 0; tick < TickCount; tick++ {
			frac := decimal.NewFromInt(int64(tick)).Div(decimal.NewFromInt(TickCount - 1))
			label := p.Min.Add(span.Mul(frac)).StringFixed(1)
			pos := scale(dir, float32(tick)/float32(TickCount-1))
			root.Add(newText(label, pos, color))
		}
	}
}

func scale(v Vector3, f float32) Vector3 {
	return Vector3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}
