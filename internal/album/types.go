// Package album holds the page domain model and the distributor that
// partitions an album's photos into laid-out pages.
package album

import (
	"fmt"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

// PagePhoto is one filled slot: the photo it shows and its pan/zoom state.
type PagePhoto struct {
	PhotoUID  string           `json:"photoUid"`
	Transform layout.Transform `json:"transform"`
}

// Page is one album page: an ordered list of photos and the layout template
// they are arranged by. The template is stored by name and resolved through
// the catalog, so generated fallback grids persist the same way curated
// ones do.
type Page struct {
	ID         string      `json:"id"`
	Layout     string      `json:"layout"`
	Background string      `json:"background,omitempty"`
	Photos     []PagePhoto `json:"photos"`
}

// PhotoCount returns the number of filled slots.
func (p Page) PhotoCount() int {
	return len(p.Photos)
}

// GridStyle resolves the page's template through the catalog. The second
// return is false when the stored name no longer matches any template for
// the page's photo count.
func (p Page) GridStyle() (layout.GridStyle, bool) {
	return layout.LayoutByName(p.Layout, len(p.Photos))
}

// ReassignLayout switches the page to the named template and resets every
// slot transform to identity. Prior pan/zoom offsets were computed against
// slot geometry that no longer exists.
func (p *Page) ReassignLayout(name string) {
	p.Layout = name
	for i := range p.Photos {
		p.Photos[i].Transform = layout.Identity()
	}
}

// SwapSlots exchanges the photos in slots a and b and resets both
// transforms, since each photo now sits in a differently shaped slot.
func (p *Page) SwapSlots(a, b int) error {
	if a < 0 || a >= len(p.Photos) {
		return fmt.Errorf("slot index %d out of range", a)
	}
	if b < 0 || b >= len(p.Photos) {
		return fmt.Errorf("slot index %d out of range", b)
	}
	p.Photos[a], p.Photos[b] = p.Photos[b], p.Photos[a]
	p.Photos[a].Transform = layout.Identity()
	p.Photos[b].Transform = layout.Identity()
	return nil
}
