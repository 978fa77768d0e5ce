package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/render"
)

// PagesHandler handles album page endpoints
type PagesHandler struct {
	config *config.Config
}

// NewPagesHandler creates a new pages handler
func NewPagesHandler(cfg *config.Config) *PagesHandler {
	return &PagesHandler{config: cfg}
}

// --- Page responses ---

type slotResponse struct {
	SlotIndex int     `json:"slotIndex"`
	PhotoUID  string  `json:"photoUid"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
}

type pageResponse struct {
	ID         string         `json:"id"`
	AlbumID    string         `json:"albumId"`
	Layout     string         `json:"layout"`
	Background string         `json:"background"`
	SortOrder  int            `json:"sortOrder"`
	Slots      []slotResponse `json:"slots"`
}

func toPageResponse(p database.AlbumPage) pageResponse {
	slots := make([]slotResponse, len(p.Slots))
	for i, s := range p.Slots {
		slots[i] = slotResponse{
			SlotIndex: s.SlotIndex,
			PhotoUID:  s.PhotoUID,
			X:         s.OffsetX,
			Y:         s.OffsetY,
			Scale:     s.Scale,
		}
	}
	return pageResponse{
		ID:         p.ID,
		AlbumID:    p.AlbumID,
		Layout:     p.Layout,
		Background: p.Background,
		SortOrder:  p.SortOrder,
		Slots:      slots,
	}
}

func toPageResponses(pages []database.AlbumPage) []pageResponse {
	result := make([]pageResponse, len(pages))
	for i, p := range pages {
		result[i] = toPageResponse(p)
	}
	return result
}

// --- Pages ---

func (h *PagesHandler) Get(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	page, err := writer.GetPage(r.Context(), id)
	if err != nil || page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}
	respondJSON(w, http.StatusOK, toPageResponse(*page))
}

// UpdateLayout switches the page to another template. Every slot transform
// goes back to identity: pan offsets computed for the old slot geometry
// mean nothing in the new one.
func (h *PagesHandler) UpdateLayout(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	page, err := writer.GetPage(r.Context(), id)
	if err != nil || page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}
	if _, ok := layout.LayoutByName(req.Name, len(page.Slots)); !ok {
		respondError(w, http.StatusBadRequest, "unknown layout name for this photo count")
		return
	}

	if err := writer.UpdatePageLayout(r.Context(), id, req.Name); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update page layout")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

func (h *PagesHandler) UpdateBackground(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		Background string `json:"background"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	if err := writer.UpdatePageBackground(r.Context(), id, req.Background); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update page background")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Preview renders the page as a standalone HTML document.
func (h *PagesHandler) Preview(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	page, err := writer.GetPage(r.Context(), id)
	if err != nil || page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	style, ok := layout.LayoutByName(page.Layout, len(page.Slots))
	if !ok {
		respondError(w, http.StatusInternalServerError, "page layout not in catalog")
		return
	}

	title := "Page preview"
	if a, err := writer.GetAlbum(r.Context(), page.AlbumID); err == nil && a != nil {
		title = a.Title
	}

	thumbSize := h.config.Editor.PreviewWidth
	data := render.BuildPage(page, style, title,
		h.config.Editor.PreviewWidth, h.config.Editor.PreviewHeight,
		func(uid string) string {
			return fmt.Sprintf("/api/v1/photos/%s/thumb/%d", uid, thumbSize)
		})

	html, err := render.RenderPage(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to render preview")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(html)
}

// --- Slots ---

// UpdateSlotTransform persists a slot's pan/zoom. When the request carries
// the measured container size the server re-clamps the position against the
// photo's natural size and the template's slot bounds; without a
// measurement the client-side clamp is trusted as-is.
func (h *PagesHandler) UpdateSlotTransform(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	pageID := chi.URLParam(r, "id")
	slotIndex, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid slot index")
		return
	}
	var req struct {
		X         float64      `json:"x"`
		Y         float64      `json:"y"`
		Scale     float64      `json:"scale"`
		Container *layout.Size `json:"container,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	t := layout.Transform{X: req.X, Y: req.Y, Scale: layout.ClampScale(req.Scale)}

	if req.Container != nil && req.Container.Width > 0 && req.Container.Height > 0 {
		clamped, ok := h.reclamp(r, w, pageID, slotIndex, *req.Container, t)
		if !ok {
			return
		}
		t = clamped
	}

	if err := writer.UpdateSlotTransform(r.Context(), pageID, slotIndex, t.X, t.Y, t.Scale); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update slot transform")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// reclamp corrects the candidate against stored geometry. Missing photo
// dimensions or an unavailable photo store short-circuit and return the
// candidate unchanged. A false return means the response has been written.
func (h *PagesHandler) reclamp(r *http.Request, w http.ResponseWriter, pageID string, slotIndex int, container layout.Size, t layout.Transform) (layout.Transform, bool) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return t, false
	}
	page, err := writer.GetPage(r.Context(), pageID)
	if err != nil || page == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return t, false
	}

	var slot *database.PageSlot
	for i := range page.Slots {
		if page.Slots[i].SlotIndex == slotIndex {
			slot = &page.Slots[i]
			break
		}
	}
	if slot == nil {
		respondError(w, http.StatusNotFound, "slot not found")
		return t, false
	}

	style, ok := layout.LayoutByName(page.Layout, len(page.Slots))
	if !ok || style.UnsafePan {
		return t, true
	}

	reader, err := database.GetPhotoReader(r.Context())
	if err != nil {
		return t, true
	}
	photo, err := reader.GetPhoto(r.Context(), slot.PhotoUID)
	if err != nil || photo == nil || photo.Width <= 0 || photo.Height <= 0 {
		return t, true
	}

	img := layout.Size{Width: float64(photo.Width), Height: float64(photo.Height)}
	box := layout.ResolveBounds(container, style.SlotBounds(slotIndex))
	return layout.ClampTransform(img, container, box, t), true
}

// SwapSlots exchanges the photos in two slots of a page. Both transforms
// reset to identity because each photo moves to a differently shaped slot.
func (h *PagesHandler) SwapSlots(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	pageID := chi.URLParam(r, "id")
	var req struct {
		A int `json:"a"`
		B int `json:"b"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.A == req.B {
		respondError(w, http.StatusBadRequest, "slots must be different")
		return
	}
	if req.A < 0 || req.B < 0 {
		respondError(w, http.StatusBadRequest, "invalid slot index")
		return
	}

	if err := writer.SwapSlots(r.Context(), pageID, req.A, req.B); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to swap slots")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"swapped": true})
}
