// Package layout holds the geometry core of the album editor: the pan/zoom
// clamp engine, the shape-bounds resolver, and the page template catalog.
// Everything in here is pure computation over measured pixel sizes and
// template data; nothing fails, degenerate inputs fall back to identity or
// centered values by policy.
package layout

// Zoom factor limits. Scale 1 is minimum cover: the image exactly fills its
// slot with no pan freedom on the bound axis. Zooming below 1 would leave
// gaps, so it is never allowed.
const (
	MinScale = 1.0
	MaxScale = 5.0
)

// Size is a measured or natural pixel size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an absolute pixel rectangle in container space, origin top-left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Transform is a photo's pan/zoom state inside its slot. X and Y are pixel
// offsets from the centered position in the container's pixel space; Scale
// is the zoom factor in [MinScale, MaxScale].
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// Identity returns the centered, minimum-cover transform.
func Identity() Transform {
	return Transform{X: 0, Y: 0, Scale: 1}
}

// ClampScale clamps a zoom factor to [MinScale, MaxScale]. Callers clamp
// scale before running the clamp engine; the engine itself never adjusts it.
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
