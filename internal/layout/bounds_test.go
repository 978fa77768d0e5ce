package layout

import (
	"math"
	"testing"
)

func TestResolveBounds(t *testing.T) {
	container := Size{Width: 400, Height: 300}

	tests := []struct {
		name     string
		bounds   *ShapeBounds
		expected Rect
	}{
		{
			name:     "nil means full container",
			bounds:   nil,
			expected: Rect{X: 0, Y: 0, W: 400, H: 300},
		},
		{
			name:     "full bleed",
			bounds:   &ShapeBounds{XPercent: 0, YPercent: 0, WPercent: 100, HPercent: 100},
			expected: Rect{X: 0, Y: 0, W: 400, H: 300},
		},
		{
			// 10% of 400 = 40, 20% of 300 = 60, 50% of 400 = 200, 60% of 300 = 180
			name:     "percentages resolve against each axis",
			bounds:   &ShapeBounds{XPercent: 10, YPercent: 20, WPercent: 50, HPercent: 60},
			expected: Rect{X: 40, Y: 60, W: 200, H: 180},
		},
		{
			// The diagonal-cut right slot: starts at 42% = 168.
			name:     "offset slot",
			bounds:   &ShapeBounds{XPercent: 42, YPercent: 0, WPercent: 58, HPercent: 100},
			expected: Rect{X: 168, Y: 0, W: 232, H: 300},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBounds(container, tt.bounds)
			if math.Abs(got.X-tt.expected.X) > 0.01 || math.Abs(got.Y-tt.expected.Y) > 0.01 ||
				math.Abs(got.W-tt.expected.W) > 0.01 || math.Abs(got.H-tt.expected.H) > 0.01 {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestResolveBounds_ZeroContainer(t *testing.T) {
	got := ResolveBounds(Size{}, &ShapeBounds{XPercent: 10, YPercent: 10, WPercent: 50, HPercent: 50})
	if got.W != 0 || got.H != 0 {
		t.Errorf("expected zero-size rect for zero container, got %+v", got)
	}
}
