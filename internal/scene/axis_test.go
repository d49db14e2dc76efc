package scene_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"graphar/internal/scene"
)

func proj(key, min, max string) scene.AxisProjection {
	return scene.AxisProjection{
		Key: key,
		Min: decimal.RequireFromString(min),
		Max: decimal.RequireFromString(max),
	}
}

// textLabels collects direct text children in insertion order.
func textLabels(root *scene.Node) []string {
	var labels []string
	for _, c := range root.Children {
		if c.Shape == scene.ShapeText {
			labels = append(labels, c.Text)
		}
	}
	return labels
}

func TestAddAxes_TickEndpointsMatchRange(t *testing.T) {
	root := scene.NewGroup()
	scene.AddAxes(root, []scene.AxisProjection{proj("-log10P", "0.25", "7.75")})

	labels := textLabels(root)
	// Axis name label, then TickCount tick labels.
	if len(labels) != 1+scene.TickCount {
		t.Fatalf("labels = %d, want %d", len(labels), 1+scene.TickCount)
	}
	if labels[0] != "-log10P" {
		t.Fatalf("axis name label = %q", labels[0])
	}
	ticks := labels[1:]
	if ticks[0] != "0.3" {
		t.Fatalf("first tick = %q, want 0.3 (min to one decimal)", ticks[0])
	}
	if ticks[len(ticks)-1] != "7.8" {
		t.Fatalf("last tick = %q, want 7.8 (max to one decimal)", ticks[len(ticks)-1])
	}
	// Midpoint tick interpolates over the original range.
	if ticks[5] != "4.0" {
		t.Fatalf("middle tick = %q, want 4.0", ticks[5])
	}
}

func TestAddAxes_TwoProjectionsOmitZ(t *testing.T) {
	root := scene.NewGroup()
	scene.AddAxes(root, []scene.AxisProjection{
		proj("v1", "0", "1"),
		proj("v2", "0", "1"),
	})

	if lines := root.CountShape(scene.ShapeLine); lines != 2 {
		t.Fatalf("axis lines = %d, want 2 (no z axis)", lines)
	}
	for _, label := range textLabels(root) {
		if label == "v3" {
			t.Fatal("unexpected z axis label")
		}
	}
}

func TestAddAxes_ColorConvention(t *testing.T) {
	root := scene.NewGroup()
	scene.AddAxes(root, []scene.AxisProjection{
		proj("v1", "0", "1"),
		proj("v2", "0", "1"),
		proj("v3", "0", "1"),
	})

	want := []scene.Color{scene.ColorRed, scene.ColorGreen, scene.ColorBlue}
	var lines []*scene.Node
	for _, c := range root.Children {
		if c.Shape == scene.ShapeLine {
			lines = append(lines, c)
		}
	}
	if len(lines) != 3 {
		t.Fatalf("axis lines = %d, want 3", len(lines))
	}
	for i, line := range lines {
		if line.Color != want[i] {
			t.Fatalf("axis %d color = %+v, want %+v", i, line.Color, want[i])
		}
	}
}

func TestAddGridPlanes_LineCounts(t *testing.T) {
	root := scene.NewGroup()
	scene.AddGridPlanes(root, scene.GridSpacing, scene.ColorGray, scene.PlaneXY)

	// 11 steps per direction at 0.1 spacing, two directions per plane.
	if lines := root.CountShape(scene.ShapeLine); lines != 22 {
		t.Fatalf("grid lines = %d, want 22", lines)
	}
}

func TestAddGridPlanes_ZeroSpacingFallsBack(t *testing.T) {
	root := scene.NewGroup()
	scene.AddGridPlanes(root, 0, scene.ColorGray, scene.PlaneXZ)
	if lines := root.CountShape(scene.ShapeLine); lines != 22 {
		t.Fatalf("grid lines = %d, want 22 with default spacing", lines)
	}
}
