package domain

// GraphType identifies a graph variant handled by the renderer registry.
type GraphType string

const (
	GraphScatter3D       GraphType = "scatter_3d"
	GraphScatter3DNoGrid GraphType = "scatter_3d_nogrid"
	GraphScatter2D       GraphType = "scatter_2d"

	// Declared but unimplemented: these resolve to no renderer.
	GraphSurface   GraphType = "surface"
	GraphHistogram GraphType = "histogram"
	GraphCluster   GraphType = "cluster"
)

// GraphingConfiguration captures one user choice of how to render a
// dataset: which fields drive the axes, which field is the category, the
// graph variant and the theme. Immutable once handed to rendering;
// identity is by ID.
type GraphingConfiguration struct {
	ID          string    `json:"id"`
	Dataset     *Dataset  `json:"-"`
	GraphType   GraphType `json:"graphType"`
	Features    []string  `json:"features"` // 2–3 numeric axis keys
	CategoryKey string    `json:"categoryKey,omitempty"`
	ThemeID     string    `json:"themeId"`
}
