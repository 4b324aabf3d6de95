// Package ttesting contains small assertion helpers shared by tests.
package ttesting

import (
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualPoint(t *testing.T, name string, got, want image.Point) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

func AssertEqualRect(t *testing.T, name string, got, want image.Rectangle) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertColorNear checks that each 8-bit channel of got is within tolerance
// of want. Resampling filters rarely reproduce a color exactly.
func AssertColorNear(t *testing.T, name string, got, want color.Color, tolerance uint8) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		g := color.NRGBAModel.Convert(got).(color.NRGBA)
		w := color.NRGBAModel.Convert(want).(color.NRGBA)
		if !near(g.R, w.R, tolerance) || !near(g.G, w.G, tolerance) || !near(g.B, w.B, tolerance) || !near(g.A, w.A, tolerance) {
			t.Errorf("got %v; want %v (±%d)", g, w, tolerance)
		}
	})
}

func near(a, b, tolerance uint8) bool {
	if a > b {
		return a-b <= tolerance
	}
	return b-a <= tolerance
}
