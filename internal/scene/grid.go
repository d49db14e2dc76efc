package scene

// ── Grid planes ────────────────────────────────────────────
// Wireframe decoration on the bounding planes of the unit cube.

// Plane identifies one bounding plane of the unit cube.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

// GridSpacing is the default distance between grid lines.
const GridSpacing float32 = 0.1

// AddGridPlanes emits a wireframe of line segments at the given spacing
// covering the unit extent of each requested plane.
func AddGridPlanes(root *Node, spacing float32, color Color, planes ...Plane) {
	if spacing <= 0 {
		spacing = GridSpacing
	}
	for _, plane := range planes {
		addPlane(root, plane, spacing, color)
	}
}

func addPlane(root *Node, plane Plane, spacing float32, color Color) {
	// Each plane spans two of the cube's axes; lines run parallel to
	// both, stepped along the other.
	var along, across Vector3
	switch plane {
	case PlaneXY:
		along, across = Vector3{X: 1}, Vector3{Y: 1}
	case PlaneYZ:
		along, across = Vector3{Y: 1}, Vector3{Z: 1}
	case PlaneXZ:
		along, across = Vector3{X: 1}, Vector3{Z: 1}
	default:
		return
	}

	for step := float32(0); step <= 1.0001; step += spacing {
		// Line parallel to `along`, offset along `across`.
		offset := scale(across, step)
		root.Add(newLine(offset, add(offset, along), color))
		// Line parallel to `across`, offset along `along`.
		offset = scale(along, step)
		root.Add(newLine(offset, add(offset, across), color))
	}
}

func add(a, b Vector3) Vector3 {
	return Vector3{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}
