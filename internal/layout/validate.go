package layout

import (
	"fmt"
	"math"
)

// ValidationWarning describes a template-catalog consistency issue.
type ValidationWarning struct {
	Template string
	Slot     int // -1 when not slot specific
	Message  string
	Severity string // "error" or "warning"
}

func (w ValidationWarning) String() string {
	if w.Slot < 0 {
		return fmt.Sprintf("template %s: %s", w.Template, w.Message)
	}
	return fmt.Sprintf("template %s slot %d: %s", w.Template, w.Slot, w.Message)
}

// ValidateCatalog checks every curated template for internal consistency.
// The catalog panics on error-severity findings at load; the layouts
// validate command and tests surface the full list.
func ValidateCatalog() []ValidationWarning {
	var warnings []ValidationWarning
	for _, count := range CuratedCounts() {
		for _, g := range curatedForCount(count) {
			warnings = append(warnings, ValidateTemplate(count, g)...)
		}
	}
	return warnings
}

// ValidateTemplate checks a single template against the data invariants:
// parseable rectangular grid areas, slot indices forming a contiguous
// 0..count-1 union across areas, wrapper styles and shape bounds, sane
// bounds percentages, and every clip-path's bounding box enclosed by the
// slot's declared shapeBounds. The clamp engine trusts shapeBounds, not the
// clip itself, so an unenclosed clip would silently allow panning gaps.
func ValidateTemplate(count int, g GridStyle) []ValidationWarning {
	var warnings []ValidationWarning
	const eps = 0.01

	fail := func(slot int, format string, args ...any) {
		warnings = append(warnings, ValidationWarning{
			Template: g.Name,
			Slot:     slot,
			Message:  fmt.Sprintf(format, args...),
			Severity: "error",
		})
	}
	warn := func(slot int, format string, args ...any) {
		warnings = append(warnings, ValidationWarning{
			Template: g.Name,
			Slot:     slot,
			Message:  fmt.Sprintf(format, args...),
			Severity: "warning",
		})
	}

	if g.Name == "" {
		fail(-1, "template has no name")
		return warnings
	}
	if count < 1 {
		fail(-1, "photo count %d is below 1", count)
		return warnings
	}

	referenced := make(map[int]bool)

	rows, err := parseAreaRows(g.Areas)
	if err != nil {
		fail(-1, "invalid grid areas: %v", err)
	} else {
		warnings = append(warnings, validateAreaRegions(g.Name, rows, count, referenced)...)
	}

	for slot := range g.WrapperStyles {
		if slot < 0 || slot >= count {
			fail(slot, "wrapper style index outside 0..%d", count-1)
			continue
		}
		referenced[slot] = true
	}
	for slot, sb := range g.ShapeBounds {
		if slot < 0 || slot >= count {
			fail(slot, "shape bounds index outside 0..%d", count-1)
			continue
		}
		referenced[slot] = true
		warnings = append(warnings, validateBoundsValues(g.Name, slot, sb)...)
	}

	// The union of references must cover every slot or a photo would have
	// nowhere to land.
	for slot := 0; slot < count; slot++ {
		if !referenced[slot] {
			fail(slot, "slot is not referenced by areas, wrapper styles or shape bounds")
		}
	}

	// Clip geometry versus declared cover bounds.
	for slot, style := range g.WrapperStyles {
		if slot < 0 || slot >= count {
			continue
		}
		shape, err := ParseClipStyle(style)
		if err != nil {
			fail(slot, "invalid clip-path: %v", err)
			continue
		}
		if shape == nil {
			// Plain rectangular wrapper, nothing to cross-check.
			continue
		}

		sb, ok := g.ShapeBounds[slot]
		if !ok {
			if !g.UnsafePan {
				fail(slot, "clipped slot has no shapeBounds to clamp against")
			}
			continue
		}

		bb := shape.BoundsPercent()
		if sb.XPercent > bb.XPercent+eps ||
			sb.YPercent > bb.YPercent+eps ||
			sb.XPercent+sb.WPercent < bb.XPercent+bb.WPercent-eps ||
			sb.YPercent+sb.HPercent < bb.YPercent+bb.HPercent-eps {
			fail(slot, "shapeBounds {%.2f %.2f %.2f %.2f} does not enclose clip bounding box {%.2f %.2f %.2f %.2f}",
				sb.XPercent, sb.YPercent, sb.WPercent, sb.HPercent,
				bb.XPercent, bb.YPercent, bb.WPercent, bb.HPercent)
		}
	}

	for slot := range g.ShapeBounds {
		if slot < 0 || slot >= count {
			continue
		}
		if shape, err := ParseClipStyle(g.WrapperStyles[slot]); err == nil && shape == nil {
			warn(slot, "shapeBounds declared for a slot without a clip-path")
		}
	}

	return warnings
}

// validateAreaRegions checks area names and that every area's cells form a
// rectangle, as CSS grid requires.
func validateAreaRegions(template string, rows [][]string, count int, referenced map[int]bool) []ValidationWarning {
	var warnings []ValidationWarning

	type region struct {
		minR, maxR, minC, maxC, cells int
	}
	regions := make(map[int]*region)

	for r, row := range rows {
		for c, name := range row {
			slot, ok := slotIndexFromArea(name)
			if !ok {
				warnings = append(warnings, ValidationWarning{
					Template: template, Slot: -1,
					Message:  fmt.Sprintf("area name %q is not of the form imgN", name),
					Severity: "error",
				})
				continue
			}
			if slot >= count {
				warnings = append(warnings, ValidationWarning{
					Template: template, Slot: slot,
					Message:  fmt.Sprintf("area name %q exceeds photo count %d", name, count),
					Severity: "error",
				})
				continue
			}
			referenced[slot] = true

			reg, ok := regions[slot]
			if !ok {
				regions[slot] = &region{minR: r, maxR: r, minC: c, maxC: c, cells: 1}
				continue
			}
			if r < reg.minR {
				reg.minR = r
			}
			if r > reg.maxR {
				reg.maxR = r
			}
			if c < reg.minC {
				reg.minC = c
			}
			if c > reg.maxC {
				reg.maxC = c
			}
			reg.cells++
		}
	}

	for slot, reg := range regions {
		span := (reg.maxR - reg.minR + 1) * (reg.maxC - reg.minC + 1)
		if span != reg.cells {
			warnings = append(warnings, ValidationWarning{
				Template: template, Slot: slot,
				Message:  fmt.Sprintf("area %s occupies %d cells but spans a %d-cell rectangle", AreaName(slot), reg.cells, span),
				Severity: "error",
			})
		}
	}
	return warnings
}

// validateBoundsValues checks a declared shapeBounds for sane numbers.
// Bounds extending outside the container are allowed at runtime (the engine
// pins centered when it cannot cover), but in curated data they are almost
// certainly a typo, so they surface as warnings.
func validateBoundsValues(template string, slot int, sb ShapeBounds) []ValidationWarning {
	var warnings []ValidationWarning

	bad := func(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
	if bad(sb.XPercent) || bad(sb.YPercent) || bad(sb.WPercent) || bad(sb.HPercent) {
		warnings = append(warnings, ValidationWarning{
			Template: template, Slot: slot,
			Message:  "shapeBounds contains a non-finite value",
			Severity: "error",
		})
		return warnings
	}
	if sb.WPercent <= 0 || sb.HPercent <= 0 {
		warnings = append(warnings, ValidationWarning{
			Template: template, Slot: slot,
			Message:  fmt.Sprintf("shapeBounds has non-positive size %.2f x %.2f", sb.WPercent, sb.HPercent),
			Severity: "error",
		})
		return warnings
	}
	if sb.XPercent < 0 || sb.YPercent < 0 || sb.XPercent+sb.WPercent > 100 || sb.YPercent+sb.HPercent > 100 {
		warnings = append(warnings, ValidationWarning{
			Template: template, Slot: slot,
			Message: fmt.Sprintf("shapeBounds {%.2f %.2f %.2f %.2f} extends outside its container",
				sb.XPercent, sb.YPercent, sb.WPercent, sb.HPercent),
			Severity: "warning",
		})
	}
	return warnings
}
