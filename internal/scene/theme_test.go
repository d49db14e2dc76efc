package scene_test

import (
	"testing"

	"graphar/internal/scene"
)

func TestThemeByID(t *testing.T) {
	if _, ok := scene.ThemeByID("classic"); !ok {
		t.Fatal("classic theme missing")
	}
	if _, ok := scene.ThemeByID("contrast"); !ok {
		t.Fatal("contrast theme missing")
	}
	if _, ok := scene.ThemeByID("neon"); ok {
		t.Fatal("unknown theme resolved")
	}
}

func TestTheme_DeterministicStyling(t *testing.T) {
	for _, th := range scene.Themes() {
		for _, category := range []string{"control", "severe", "default", ""} {
			c1, c2 := th.ColorFor(category), th.ColorFor(category)
			if c1 != c2 {
				t.Fatalf("%s: color for %q not stable", th.ID, category)
			}
			s1, s2 := th.ShapeFor(category), th.ShapeFor(category)
			if s1 != s2 {
				t.Fatalf("%s: shape for %q not stable", th.ID, category)
			}
		}
	}
}
