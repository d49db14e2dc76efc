package scene

import (
	"github.com/google/uuid"

	"graphar/internal/domain"
)

// ── Visual nodes ────────────────────────────────────────────
// Abstract renderable primitives. The platform host decides how a
// sphere, line or text mesh is actually drawn; this package only
// decides what shape, color, position and label to request.

// Shape is the primitive kind a node asks the host to draw.
type Shape string

const (
	ShapeSphere   Shape = "sphere"
	ShapeCube     Shape = "cube"
	ShapeCone     Shape = "cone"
	ShapeCylinder Shape = "cylinder"
	ShapePyramid  Shape = "pyramid"
	ShapeTorus    Shape = "torus"
	ShapeCapsule  Shape = "capsule"
	ShapeLine     Shape = "line"
	ShapeText     Shape = "text"
	ShapeGroup    Shape = "group"
)

// Color is an RGBA color in [0,1] channels.
type Color struct {
	R, G, B, A float32
}

var (
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
	ColorBlue  = Color{0, 0, 1, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorGray  = Color{0.6, 0.6, 0.6, 1}
)

// Vector3 is a position inside (or on the edge of) the unit cube.
type Vector3 struct {
	X, Y, Z float32
}

// Node is one renderable primitive. Line nodes span Position→End; text
// nodes carry Text; group nodes only hold children. Handle is a fresh
// identity per node, never content-addressed.
type Node struct {
	Handle   string  `json:"handle"`
	Shape    Shape   `json:"shape"`
	Position Vector3 `json:"position"`
	End      Vector3 `json:"end,omitempty"`
	Color    Color   `json:"color"`
	Text     string  `json:"text,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// NewGroup returns an empty container node.
func NewGroup() *Node {
	return &Node{Handle: uuid.New().String(), Shape: ShapeGroup}
}

// Add appends child nodes.
func (n *Node) Add(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// Count returns the number of nodes in the subtree, excluding n itself.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Children {
		total += 1 + c.Count()
	}
	return total
}

// CountShape returns how many nodes of the given shape the subtree holds.
func (n *Node) CountShape(s Shape) int {
	total := 0
	for _, c := range n.Children {
		if c.Shape == s {
			total++
		}
		total += c.CountShape(s)
	}
	return total
}

func newShape(s Shape, pos Vector3, c Color) *Node {
	return &Node{Handle: uuid.New().String(), Shape: s, Position: pos, Color: c}
}

func newLine(from, to Vector3, c Color) *Node {
	return &Node{Handle: uuid.New().String(), Shape: ShapeLine, Position: from, End: to, Color: c}
}

func newText(text string, pos Vector3, c Color) *Node {
	return &Node{Handle: uuid.New().String(), Shape: ShapeText, Position: pos, Color: c, Text: text}
}

// ── Node map ────────────────────────────────────────────────

// NodeMap associates rendered data nodes back to their source records,
// keyed by node handle. It is what makes tap-to-inspect possible and
// must never alias two nodes to the wrong record.
type NodeMap map[string]domain.Record

// Merge folds src into m with first-write-wins on handle collision.
// Collisions should not occur: handles are fresh identities.
func (m NodeMap) Merge(src NodeMap) {
	for h, rec := range src {
		if _, exists := m[h]; exists {
			continue
		}
		m[h] = rec
	}
}
