package layout

// ShapeBounds declares, in percent of the slot container, the bounding box a
// clipped (non-rectangular) slot shape occupies. The clamp engine constrains
// panning against this box rather than the clip path itself. Immutable
// template data; values are trusted once the catalog has validated them.
type ShapeBounds struct {
	XPercent float64 `json:"xPercent" yaml:"xPercent"`
	YPercent float64 `json:"yPercent" yaml:"yPercent"`
	WPercent float64 `json:"wPercent" yaml:"wPercent"`
	HPercent float64 `json:"hPercent" yaml:"hPercent"`
}

// ResolveBounds converts percentage bounds into absolute pixels for a
// measured container. A nil bounds means the slot is a plain rectangle and
// the box is the full container.
func ResolveBounds(container Size, sb *ShapeBounds) Rect {
	if sb == nil {
		return Rect{X: 0, Y: 0, W: container.Width, H: container.Height}
	}
	return Rect{
		X: sb.XPercent / 100 * container.Width,
		Y: sb.YPercent / 100 * container.Height,
		W: sb.WPercent / 100 * container.Width,
		H: sb.HPercent / 100 * container.Height,
	}
}
