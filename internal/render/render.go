// Package render produces standalone HTML previews of album pages.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

//go:embed templates/page.html
var templateFS embed.FS

// Slot is one photo cell of a rendered page.
type Slot struct {
	Area     string // grid-area name
	PhotoURL string // empty renders a placeholder cell
	Style    string // extra wrapper CSS from the layout template
	OffsetX  float64
	OffsetY  float64
	Scale    float64
}

// Transform returns the CSS transform for the slot's pan and zoom.
func (s Slot) Transform() template.CSS {
	return template.CSS(fmt.Sprintf("translate(%gpx, %gpx) scale(%g)", s.OffsetX, s.OffsetY, s.Scale))
}

// Page is the root data passed to the page template.
type Page struct {
	Title      string
	Background string
	Width      int
	Height     int
	Columns    string
	Rows       string
	Areas      string
	Slots      []Slot
}

// BuildPage assembles template data from a stored page and its layout.
// photoURL maps a photo UID to an image source; it may return "" for
// photos that cannot be served.
func BuildPage(page *database.AlbumPage, style layout.GridStyle, title string, width, height int, photoURL func(uid string) string) Page {
	p := Page{
		Title:      title,
		Background: page.Background,
		Width:      width,
		Height:     height,
		Columns:    style.Columns,
		Rows:       style.Rows,
		Areas:      style.Areas,
	}
	if p.Background == "" {
		p.Background = "#ffffff"
	}
	for _, s := range page.Slots {
		slot := Slot{
			Area:    layout.AreaName(s.SlotIndex),
			Style:   style.WrapperStyle(s.SlotIndex),
			OffsetX: s.OffsetX,
			OffsetY: s.OffsetY,
			Scale:   s.Scale,
		}
		if s.PhotoUID != "" {
			slot.PhotoURL = photoURL(s.PhotoUID)
		}
		p.Slots = append(p.Slots, slot)
	}
	return p
}

// RenderPage renders a page preview to a self-contained HTML document.
func RenderPage(p Page) ([]byte, error) {
	funcMap := template.FuncMap{
		// Grid geometry and wrapper styles come from the embedded
		// catalog, never from request input.
		"css": func(s string) template.CSS { return template.CSS(s) },
	}
	tmpl, err := template.New("page.html").Funcs(funcMap).ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}
