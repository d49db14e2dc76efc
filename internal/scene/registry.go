package scene

import (
	"sync"

	"graphar/internal/domain"
)

// ── Renderer registry ───────────────────────────────────────
// Maps a graph type to the builder variant implementing it. Adding a
// graph type means registering one builder function; callers and
// existing builders stay untouched. Unregistered types resolve to no
// renderer, which callers treat as a non-fatal nothing-to-render.

// BuildFunc builds the complete decorated scene for one configuration.
type BuildFunc func(in BuildInput) (*Node, NodeMap)

var (
	renderersMu sync.RWMutex
	renderers   = map[domain.GraphType]BuildFunc{}
)

// RegisterRenderer binds a graph type to its builder.
func RegisterRenderer(t domain.GraphType, build BuildFunc) {
	renderersMu.Lock()
	defer renderersMu.Unlock()
	renderers[t] = build
}

// RendererFor resolves a graph type. The second result is false for
// unsupported or future types (surface, histogram, cluster).
func RendererFor(t domain.GraphType) (BuildFunc, bool) {
	renderersMu.RLock()
	defer renderersMu.RUnlock()
	b, ok := renderers[t]
	return b, ok
}

func init() {
	RegisterRenderer(domain.GraphScatter3D, buildScatter3D)
	RegisterRenderer(domain.GraphScatter3DNoGrid, buildScatter3DNoGrid)
	RegisterRenderer(domain.GraphScatter2D, buildScatter2D)
}

// Full 3D variant: points, axes, wireframes on all three bounding planes.
func buildScatter3D(in BuildInput) (*Node, NodeMap) {
	root, nodes, projections := BuildScatter(in)
	if len(nodes) == 0 {
		return root, nodes
	}
	AddAxes(root, projections)
	AddGridPlanes(root, GridSpacing, ColorGray, PlaneXY, PlaneYZ, PlaneXZ)
	return root, nodes
}

func buildScatter3DNoGrid(in BuildInput) (*Node, NodeMap) {
	root, nodes, projections := BuildScatter(in)
	if len(nodes) == 0 {
		return root, nodes
	}
	AddAxes(root, projections)
	return root, nodes
}

// 2D variant: only the first two axis keys are used, every point sits
// on the z=0 plane, and only the xy plane gets a grid.
func buildScatter2D(in BuildInput) (*Node, NodeMap) {
	flat := in
	if len(flat.AxisKeys) > 2 {
		flat.AxisKeys = flat.AxisKeys[:2]
	}
	root, nodes, projections := BuildScatter(flat)
	if len(nodes) == 0 {
		return root, nodes
	}
	AddAxes(root, projections)
	AddGridPlanes(root, GridSpacing, ColorGray, PlaneXY)
	return root, nodes
}
