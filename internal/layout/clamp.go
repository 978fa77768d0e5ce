package layout

// CoverSize returns the base render size of an image scaled, preserving
// aspect ratio, so that it fully covers the container ("cover" fit). If the
// image is wider than the container the height binds and the overflow is
// trimmed left/right; otherwise the width binds.
func CoverSize(image, container Size) Size {
	imgAspect := image.Width / image.Height
	contAspect := container.Width / container.Height

	if imgAspect > contAspect {
		return Size{Width: container.Height * imgAspect, Height: container.Height}
	}
	return Size{Width: container.Width, Height: container.Width / imgAspect}
}

// ClampTransform corrects a candidate pan offset to the nearest one that
// keeps the image fully covering the target box at the candidate zoom. The
// box comes from ResolveBounds: the full container for rectangular slots, a
// sub-rectangle for clipped shapes. Scale passes through untouched.
//
// Unmeasured geometry (zero-size container, unloaded image) short-circuits
// and returns the candidate unchanged; the next measurement update corrects
// the result. This never fails.
func ClampTransform(image, container Size, box Rect, t Transform) Transform {
	if container.Width <= 0 || container.Height <= 0 {
		return t
	}
	if image.Width <= 0 || image.Height <= 0 {
		return t
	}

	base := CoverSize(image, container)
	visualW := base.Width * t.Scale
	visualH := base.Height * t.Scale

	t.X = clampAxis(t.X, visualW, container.Width, box.X, box.W)
	t.Y = clampAxis(t.Y, visualH, container.Height, box.Y, box.H)
	return t
}

// ClampTransformRect clamps against the full container rectangle. At offset
// zero the image is centered, so the valid range is symmetric:
// x in [-maxX, maxX] with maxX = max(0, visualW/2 - containerW/2).
func ClampTransformRect(image, container Size, t Transform) Transform {
	return ClampTransform(image, container, Rect{W: container.Width, H: container.Height}, t)
}

// clampAxis clamps one axis offset so the image's visual span keeps
// [boxPos, boxPos+boxDim] covered. The image is centered in the container at
// offset 0, so at offset v its span is
// [contDim/2 + v - visual/2, contDim/2 + v + visual/2].
func clampAxis(v, visual, contDim, boxPos, boxDim float64) float64 {
	if visual < boxDim {
		// The image cannot cover the box on this axis no matter the offset.
		// Pin it centered over the box to minimize the gap.
		return boxPos + boxDim/2 - contDim/2
	}

	lo := boxPos + boxDim - contDim/2 - visual/2
	hi := boxPos + visual/2 - contDim/2
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
