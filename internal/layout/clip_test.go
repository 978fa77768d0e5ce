package layout

import (
	"math"
	"testing"
)

func TestParseClipStyle_Polygon(t *testing.T) {
	style := "position: absolute; inset: 0; clip-path: polygon(0% 0%, 58% 0%, 42% 100%, 0% 100%)"
	shape, err := ParseClipStyle(style)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shape == nil {
		t.Fatal("expected a shape, got nil")
	}
	if shape.Kind != ClipPolygon {
		t.Fatalf("expected polygon, got kind %d", shape.Kind)
	}
	if len(shape.Points) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(shape.Points))
	}

	// min x 0, max x 58, min y 0, max y 100
	bb := shape.BoundsPercent()
	if !boundsClose(bb, ShapeBounds{XPercent: 0, YPercent: 0, WPercent: 58, HPercent: 100}) {
		t.Errorf("expected bounds {0 0 58 100}, got %+v", bb)
	}
}

func TestParseClipStyle_PolygonUnitlessZero(t *testing.T) {
	shape, err := ParseClipStyle("clip-path: polygon(0 0, 100% 0, 50% 100%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bb := shape.BoundsPercent()
	if !boundsClose(bb, ShapeBounds{XPercent: 0, YPercent: 0, WPercent: 100, HPercent: 100}) {
		t.Errorf("expected bounds {0 0 100 100}, got %+v", bb)
	}
}

func TestParseClipStyle_Circle(t *testing.T) {
	shape, err := ParseClipStyle("clip-path: circle(48% at 50% 50%)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shape.Kind != ClipCircle {
		t.Fatalf("expected circle, got kind %d", shape.Kind)
	}
	if shape.CX != 50 || shape.CY != 50 || shape.R != 48 {
		t.Errorf("expected center (50, 50) radius 48, got (%.0f, %.0f) radius %.0f", shape.CX, shape.CY, shape.R)
	}

	// 50 - 48 = 2, diameter 96
	bb := shape.BoundsPercent()
	if !boundsClose(bb, ShapeBounds{XPercent: 2, YPercent: 2, WPercent: 96, HPercent: 96}) {
		t.Errorf("expected bounds {2 2 96 96}, got %+v", bb)
	}
}

func TestParseClipStyle_CircleDefaults(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"radius only", "clip-path: circle(50%)"},
		{"bare", "clip-path: circle()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := ParseClipStyle(tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if shape.CX != 50 || shape.CY != 50 || shape.R != 50 {
				t.Errorf("expected centered half-size circle, got %+v", shape)
			}
		})
	}
}

func TestParseClipStyle_Inset(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected ShapeBounds
	}{
		{
			// top 10, right 20, bottom 30, left 40: x = 40, w = 100-40-20 = 40
			name:     "four values",
			style:    "clip-path: inset(10% 20% 30% 40%)",
			expected: ShapeBounds{XPercent: 40, YPercent: 10, WPercent: 40, HPercent: 60},
		},
		{
			name:     "one value",
			style:    "clip-path: inset(10%)",
			expected: ShapeBounds{XPercent: 10, YPercent: 10, WPercent: 80, HPercent: 80},
		},
		{
			name:     "two values",
			style:    "clip-path: inset(10% 20%)",
			expected: ShapeBounds{XPercent: 20, YPercent: 10, WPercent: 60, HPercent: 80},
		},
		{
			name:     "three values",
			style:    "clip-path: inset(5% 10% 15%)",
			expected: ShapeBounds{XPercent: 10, YPercent: 5, WPercent: 80, HPercent: 80},
		},
		{
			// The rounding radius cannot grow the region, only the edges count.
			name:     "round suffix ignored",
			style:    "clip-path: inset(10% round 12px)",
			expected: ShapeBounds{XPercent: 10, YPercent: 10, WPercent: 80, HPercent: 80},
		},
		{
			// Over-inset collapses to an empty region, not a negative one.
			name:     "over-inset clamps to zero",
			style:    "clip-path: inset(60% 60%)",
			expected: ShapeBounds{XPercent: 60, YPercent: 60, WPercent: 0, HPercent: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := ParseClipStyle(tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if shape.Kind != ClipInset {
				t.Fatalf("expected inset, got kind %d", shape.Kind)
			}
			if bb := shape.BoundsPercent(); !boundsClose(bb, tt.expected) {
				t.Errorf("expected bounds %+v, got %+v", tt.expected, bb)
			}
		})
	}
}

func TestParseClipStyle_NoClip(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"empty style", ""},
		{"no clip-path declaration", "position: absolute; inset: 0; border-radius: 8px"},
		{"explicit none", "clip-path: none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, err := ParseClipStyle(tt.style)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if shape != nil {
				t.Errorf("expected no shape, got %+v", shape)
			}
		})
	}
}

func TestParseClipStyle_Errors(t *testing.T) {
	tests := []struct {
		name  string
		style string
	}{
		{"polygon with two vertices", "clip-path: polygon(0% 0%, 100% 0%)"},
		{"polygon with odd coordinate", "clip-path: polygon(0% 0% 50%, 100% 0%, 50% 100%)"},
		{"polygon with pixel unit", "clip-path: polygon(10px 0%, 100% 0%, 50% 100%)"},
		{"circle with one position value", "clip-path: circle(40% at 50%)"},
		{"unsupported function", "clip-path: path('M 0 0 H 10')"},
		{"unsupported keyword", "clip-path: border-box"},
		{"too many inset values", "clip-path: inset(1% 2% 3% 4% 5%)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseClipStyle(tt.style); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func boundsClose(a, b ShapeBounds) bool {
	return math.Abs(a.XPercent-b.XPercent) <= 0.01 &&
		math.Abs(a.YPercent-b.YPercent) <= 0.01 &&
		math.Abs(a.WPercent-b.WPercent) <= 0.01 &&
		math.Abs(a.HPercent-b.HPercent) <= 0.01
}
