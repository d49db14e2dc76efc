package scene

import "hash/fnv"

// ── Themes ──────────────────────────────────────────────────
// A theme is a pure mapping from category string to (shape, color).
// Themes form a small closed table looked up by id; the mapping is
// deterministic so the same category always renders the same way, the
// "default" fallback included.

// Theme styles categories. ColorFor and ShapeFor are total functions.
type Theme struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	palette []Color `json:"-"`
	shapes  []Shape `json:"-"`
}

// ColorFor returns the deterministic color for a category.
func (t Theme) ColorFor(category string) Color {
	return t.palette[categoryIndex(category, len(t.palette))]
}

// ShapeFor returns the deterministic shape for a category.
func (t Theme) ShapeFor(category string) Shape {
	return t.shapes[categoryIndex(category, len(t.shapes))]
}

func categoryIndex(category string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(category))
	return int(h.Sum32() % uint32(n))
}

// DefaultThemeID is used when a configuration names no theme.
const DefaultThemeID = "classic"

var themes = []Theme{
	{
		ID:   "classic",
		Name: "Classic",
		palette: []Color{
			{0.91, 0.30, 0.24, 1}, // red
			{0.18, 0.55, 0.82, 1}, // blue
			{0.20, 0.72, 0.37, 1}, // green
			{0.95, 0.68, 0.09, 1}, // amber
			{0.56, 0.31, 0.73, 1}, // purple
			{0.10, 0.67, 0.66, 1}, // teal
			{0.90, 0.45, 0.72, 1}, // pink
		},
		shapes: []Shape{ShapeSphere, ShapeCube, ShapeCone, ShapePyramid, ShapeTorus, ShapeCylinder, ShapeCapsule},
	},
	{
		ID:   "contrast",
		Name: "High Contrast",
		palette: []Color{
			{1, 1, 1, 1},
			{1, 0.85, 0, 1},
			{0, 0.9, 1, 1},
			{1, 0.4, 0, 1},
			{0.55, 1, 0.25, 1},
		},
		shapes: []Shape{ShapeCube, ShapeSphere, ShapePyramid},
	},
}

// ThemeByID looks a theme up in the closed table.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Themes returns the full theme table.
func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}
