package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/album"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
)

// AlbumsHandler handles album endpoints
type AlbumsHandler struct {
	config *config.Config
}

// NewAlbumsHandler creates a new albums handler
func NewAlbumsHandler(cfg *config.Config) *AlbumsHandler {
	return &AlbumsHandler{config: cfg}
}

func getAlbumWriter(r *http.Request, w http.ResponseWriter) database.AlbumWriter {
	writer, err := database.GetAlbumWriter(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "album storage not available")
		return nil
	}
	return writer
}

// --- Album responses ---

type albumResponse struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Slug             string `json:"slug"`
	MaxPhotosPerPage int    `json:"maxPhotosPerPage"`
	PhotoCount       int    `json:"photoCount"`
	PageCount        int    `json:"pageCount"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type albumDetailResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	MaxPhotosPerPage int            `json:"maxPhotosPerPage"`
	Pages            []pageResponse `json:"pages"`
	CreatedAt        string         `json:"createdAt"`
	UpdatedAt        string         `json:"updatedAt"`
}

type albumPhotoResponse struct {
	PhotoUID  string `json:"photoUid"`
	SortOrder int    `json:"sortOrder"`
	AddedAt   string `json:"addedAt"`
}

// normalizeMaxPerPage substitutes the configured default for absent or
// nonsensical page capacities.
func (h *AlbumsHandler) normalizeMaxPerPage(max int) int {
	if max < 1 {
		return h.config.Editor.MaxPhotosPerPage
	}
	return max
}

// redistribute rebuilds the album's page set from its current photo list
// and replaces the stored pages atomically.
func redistribute(ctx context.Context, writer database.AlbumWriter, a *database.Album) ([]database.AlbumPage, error) {
	photos, err := writer.GetAlbumPhotos(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	uids := make([]string, len(photos))
	for i, p := range photos {
		uids[i] = p.PhotoUID
	}

	pages := album.Distribute(uids, a.MaxPhotosPerPage, nil)
	stored := make([]database.AlbumPage, len(pages))
	for i, p := range pages {
		slots := make([]database.PageSlot, len(p.Photos))
		for j, ph := range p.Photos {
			slots[j] = database.PageSlot{
				SlotIndex: j,
				PhotoUID:  ph.PhotoUID,
				OffsetX:   ph.Transform.X,
				OffsetY:   ph.Transform.Y,
				Scale:     ph.Transform.Scale,
			}
		}
		stored[i] = database.AlbumPage{
			Layout:     p.Layout,
			Background: p.Background,
			Slots:      slots,
		}
	}

	if err := writer.ReplacePages(ctx, a.ID, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

// --- Albums CRUD ---

func (h *AlbumsHandler) List(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	albums, err := writer.ListAlbums(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list albums")
		return
	}

	result := make([]albumResponse, len(albums))
	for i, a := range albums {
		result[i] = albumResponse{
			ID:               a.ID,
			Title:            a.Title,
			Slug:             a.Slug,
			MaxPhotosPerPage: a.MaxPhotosPerPage,
			PhotoCount:       a.PhotoCount,
			PageCount:        a.PageCount,
			CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05Z"),
			UpdatedAt:        a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *AlbumsHandler) Create(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	var req struct {
		Title            string `json:"title"`
		MaxPhotosPerPage int    `json:"maxPhotosPerPage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	a := &database.Album{
		Title:            req.Title,
		Slug:             album.Slugify(req.Title),
		MaxPhotosPerPage: h.normalizeMaxPerPage(req.MaxPhotosPerPage),
	}
	if err := writer.CreateAlbum(r.Context(), a); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create album")
		return
	}
	respondJSON(w, http.StatusCreated, albumResponse{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		MaxPhotosPerPage: a.MaxPhotosPerPage,
		CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *AlbumsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	a, err := writer.GetAlbum(r.Context(), id)
	if err != nil || a == nil {
		respondError(w, http.StatusNotFound, "album not found")
		return
	}

	pages, err := writer.GetPages(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get pages")
		return
	}

	respondJSON(w, http.StatusOK, albumDetailResponse{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		MaxPhotosPerPage: a.MaxPhotosPerPage,
		Pages:            toPageResponses(pages),
		CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *AlbumsHandler) Update(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		Title            *string `json:"title"`
		MaxPhotosPerPage *int    `json:"maxPhotosPerPage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	a, err := writer.GetAlbum(r.Context(), id)
	if err != nil || a == nil {
		respondError(w, http.StatusNotFound, "album not found")
		return
	}

	if req.Title != nil {
		if *req.Title == "" {
			respondError(w, http.StatusBadRequest, "title is required")
			return
		}
		a.Title = *req.Title
		a.Slug = album.Slugify(*req.Title)
	}
	maxChanged := false
	if req.MaxPhotosPerPage != nil {
		max := h.normalizeMaxPerPage(*req.MaxPhotosPerPage)
		maxChanged = max != a.MaxPhotosPerPage
		a.MaxPhotosPerPage = max
	}

	if err := writer.UpdateAlbum(r.Context(), a); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update album")
		return
	}

	// A new page capacity invalidates the current pagination.
	if maxChanged {
		if _, err := redistribute(r.Context(), writer, a); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to redistribute pages")
			return
		}
	}

	respondJSON(w, http.StatusOK, albumResponse{
		ID:               a.ID,
		Title:            a.Title,
		Slug:             a.Slug,
		MaxPhotosPerPage: a.MaxPhotosPerPage,
		CreatedAt:        a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:        a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	})
}

func (h *AlbumsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	if err := writer.DeleteAlbum(r.Context(), id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete album")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// --- Album photos ---

func (h *AlbumsHandler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	photos, err := writer.GetAlbumPhotos(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get album photos")
		return
	}

	result := make([]albumPhotoResponse, len(photos))
	for i, p := range photos {
		result[i] = albumPhotoResponse{
			PhotoUID:  p.PhotoUID,
			SortOrder: p.SortOrder,
			AddedAt:   p.AddedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *AlbumsHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		PhotoUIDs []string `json:"photoUids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if len(req.PhotoUIDs) == 0 {
		respondError(w, http.StatusBadRequest, "photoUids is required")
		return
	}

	a, err := writer.GetAlbum(r.Context(), id)
	if err != nil || a == nil {
		respondError(w, http.StatusNotFound, "album not found")
		return
	}

	if err := writer.AddAlbumPhotos(r.Context(), id, req.PhotoUIDs); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to add photos")
		return
	}

	// First population of an empty album lays out its pages. Later
	// additions leave existing pages alone.
	pages, err := writer.GetPages(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get pages")
		return
	}
	distributed := false
	if len(pages) == 0 {
		if _, err := redistribute(r.Context(), writer, a); err != nil {
			respondError(w, http.StatusInternalServerError, "failed to distribute pages")
			return
		}
		distributed = true
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"added":       len(req.PhotoUIDs),
		"distributed": distributed,
	})
}

// --- Distribution ---

// Distribute lays out the album's photos into pages. The operation is
// idempotent: an album that already has pages keeps them untouched unless
// the request changes the page capacity.
func (h *AlbumsHandler) Distribute(w http.ResponseWriter, r *http.Request) {
	writer := getAlbumWriter(r, w)
	if writer == nil {
		return
	}
	id := chi.URLParam(r, "id")
	var req struct {
		MaxPhotosPerPage *int `json:"maxPhotosPerPage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	a, err := writer.GetAlbum(r.Context(), id)
	if err != nil || a == nil {
		respondError(w, http.StatusNotFound, "album not found")
		return
	}

	maxChanged := false
	if req.MaxPhotosPerPage != nil {
		max := h.normalizeMaxPerPage(*req.MaxPhotosPerPage)
		if max != a.MaxPhotosPerPage {
			a.MaxPhotosPerPage = max
			if err := writer.UpdateAlbum(r.Context(), a); err != nil {
				respondError(w, http.StatusInternalServerError, "failed to update album")
				return
			}
			maxChanged = true
		}
	}

	pages, err := writer.GetPages(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get pages")
		return
	}

	if !maxChanged && len(pages) > 0 {
		respondJSON(w, http.StatusOK, map[string]any{
			"distributed": false,
			"pages":       toPageResponses(pages),
		})
		return
	}

	newPages, err := redistribute(r.Context(), writer, a)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to distribute pages")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"distributed": true,
		"pages":       toPageResponses(newPages),
	})
}
