package scene_test

import (
	"testing"

	"graphar/internal/scene"
)

func TestNodeMap_MergeFirstWriteWins(t *testing.T) {
	a := scene.NodeMap{"h1": rec("a", nil)}
	b := scene.NodeMap{
		"h1": rec("b", nil),
		"h2": rec("c", nil),
	}
	a.Merge(b)

	if len(a) != 2 {
		t.Fatalf("merged size = %d, want 2", len(a))
	}
	if got, _ := a["h1"].Str("category"); got != "a" {
		t.Fatalf("h1 overwritten: category = %q, want a", got)
	}
	if got, _ := a["h2"].Str("category"); got != "c" {
		t.Fatalf("h2 category = %q, want c", got)
	}
}

func TestNode_Count(t *testing.T) {
	root := scene.NewGroup()
	inner := scene.NewGroup()
	inner.Add(&scene.Node{Shape: scene.ShapeSphere}, &scene.Node{Shape: scene.ShapeCube})
	root.Add(inner, &scene.Node{Shape: scene.ShapeText})

	if got := root.Count(); got != 4 {
		t.Fatalf("count = %d, want 4", got)
	}
	if got := root.CountShape(scene.ShapeSphere); got != 1 {
		t.Fatalf("spheres = %d, want 1", got)
	}
}
