package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// GridStyle describes one page layout template: CSS-grid geometry plus
// optional per-slot-index wrapper styling (absolute positioning, clip-path)
// and cover bounds for clipped slots. It is a plain data record consumable
// by any templated layout engine.
//
// Slot indices referenced across Areas ("imgN" names), WrapperStyles and
// ShapeBounds must form a contiguous 0..N-1 range matching the template's
// photo count; the catalog validates this at load time.
type GridStyle struct {
	Name          string              `json:"name" yaml:"name"`
	Columns       string              `json:"gridTemplateColumns" yaml:"columns"`
	Rows          string              `json:"gridTemplateRows" yaml:"rows"`
	Areas         string              `json:"gridTemplateAreas" yaml:"areas"`
	WrapperStyles map[int]string      `json:"wrapperStyles,omitempty" yaml:"wrapperStyles,omitempty"`
	ShapeBounds   map[int]ShapeBounds `json:"shapeBounds,omitempty" yaml:"shapeBounds,omitempty"`

	// UnsafePan opts the whole template out of position clamping, for
	// decorative geometry where the cover guarantee is intentionally waived.
	UnsafePan bool `json:"unsafePan,omitempty" yaml:"unsafePan,omitempty"`
}

// Signature identifies a template's grid-area arrangement. The distributor
// uses it for the no-immediate-repeat rule: two templates with identical
// area strings look the same on the page and count as a repeat.
func (g GridStyle) Signature() string {
	return g.Areas
}

// SlotBounds returns the declared cover bounds for a slot, or nil when the
// slot is a plain rectangle.
func (g GridStyle) SlotBounds(slot int) *ShapeBounds {
	if sb, ok := g.ShapeBounds[slot]; ok {
		return &sb
	}
	return nil
}

// WrapperStyle returns the custom wrapper CSS for a slot, if any.
func (g GridStyle) WrapperStyle(slot int) string {
	return g.WrapperStyles[slot]
}

// AreaName returns the grid-area name for a slot index.
func AreaName(slot int) string {
	return "img" + strconv.Itoa(slot)
}

// slotIndexFromArea parses an "imgN" area name into its slot index.
func slotIndexFromArea(name string) (int, bool) {
	digits, found := strings.CutPrefix(name, "img")
	if !found || digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// parseAreaRows splits a gridTemplateAreas string of the form
// `"img0 img1" "img2 img3"` into its rows of cell names. All rows must have
// the same number of cells.
func parseAreaRows(areas string) ([][]string, error) {
	var rows [][]string
	rest := areas
	for {
		start := strings.IndexByte(rest, '"')
		if start == -1 {
			break
		}
		end := strings.IndexByte(rest[start+1:], '"')
		if end == -1 {
			return nil, fmt.Errorf("unterminated quote in grid areas %q", areas)
		}
		row := strings.Fields(rest[start+1 : start+1+end])
		if len(row) == 0 {
			return nil, fmt.Errorf("empty row in grid areas %q", areas)
		}
		rows = append(rows, row)
		rest = rest[start+end+2:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in grid areas %q", areas)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", i, len(row), width)
		}
	}
	return rows, nil
}
