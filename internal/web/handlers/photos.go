package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/photos"
)

// Thumbnail size limits. Anything outside is a client mistake.
const (
	minThumbSize = 16
	maxThumbSize = 2048
)

// PhotosHandler handles photo endpoints
type PhotosHandler struct {
	config *config.Config
}

// NewPhotosHandler creates a new photos handler
func NewPhotosHandler(cfg *config.Config) *PhotosHandler {
	return &PhotosHandler{config: cfg}
}

func getPhotoReader(r *http.Request, w http.ResponseWriter) database.PhotoReader {
	reader, err := database.GetPhotoReader(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "photo storage not available")
		return nil
	}
	return reader
}

func getPhotoWriter(r *http.Request, w http.ResponseWriter) database.PhotoWriter {
	writer, err := database.GetPhotoWriter(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "photo storage not available")
		return nil
	}
	return writer
}

type photoResponse struct {
	UID        string `json:"uid"`
	SourcePath string `json:"sourcePath,omitempty"`
	FileName   string `json:"fileName"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	CreatedAt  string `json:"createdAt"`
}

func toPhotoResponse(p database.Photo) photoResponse {
	return photoResponse{
		UID:        p.UID,
		SourcePath: p.SourcePath,
		FileName:   p.FileName,
		Width:      p.Width,
		Height:     p.Height,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// Register stores photo metadata. Re-registering an existing UID updates
// its path and dimensions.
func (h *PhotosHandler) Register(w http.ResponseWriter, r *http.Request) {
	writer := getPhotoWriter(r, w)
	if writer == nil {
		return
	}
	var req struct {
		UID        string `json:"uid"`
		SourcePath string `json:"sourcePath"`
		FileName   string `json:"fileName"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}
	if req.UID == "" {
		respondError(w, http.StatusBadRequest, "uid is required")
		return
	}
	if req.Width < 0 || req.Height < 0 {
		respondError(w, http.StatusBadRequest, "width and height must not be negative")
		return
	}

	p := &database.Photo{
		UID:        req.UID,
		SourcePath: req.SourcePath,
		FileName:   req.FileName,
		Width:      req.Width,
		Height:     req.Height,
	}
	if err := writer.SavePhoto(r.Context(), p); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save photo")
		return
	}
	respondJSON(w, http.StatusCreated, toPhotoResponse(*p))
}

func (h *PhotosHandler) List(w http.ResponseWriter, r *http.Request) {
	reader := getPhotoReader(r, w)
	if reader == nil {
		return
	}
	list, err := reader.ListPhotos(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list photos")
		return
	}

	result := make([]photoResponse, len(list))
	for i, p := range list {
		result[i] = toPhotoResponse(p)
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *PhotosHandler) Get(w http.ResponseWriter, r *http.Request) {
	reader := getPhotoReader(r, w)
	if reader == nil {
		return
	}
	uid := chi.URLParam(r, "uid")
	p, err := reader.GetPhoto(r.Context(), uid)
	if err != nil || p == nil {
		respondError(w, http.StatusNotFound, "photo not found")
		return
	}
	respondJSON(w, http.StatusOK, toPhotoResponse(*p))
}

// Thumbnail serves a scaled JPEG of the photo's source file.
func (h *PhotosHandler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	reader := getPhotoReader(r, w)
	if reader == nil {
		return
	}
	uid := chi.URLParam(r, "uid")
	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid size")
		return
	}
	if size < minThumbSize || size > maxThumbSize {
		respondError(w, http.StatusBadRequest, "size out of range")
		return
	}

	p, err := reader.GetPhoto(r.Context(), uid)
	if err != nil || p == nil {
		respondError(w, http.StatusNotFound, "photo not found")
		return
	}
	if p.SourcePath == "" {
		// Gallery-imported photos carry no local file.
		respondError(w, http.StatusNotFound, "photo has no local file")
		return
	}

	img, err := photos.Open(p.SourcePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			respondError(w, http.StatusNotFound, "photo file not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to read photo")
		return
	}

	data, err := photos.Thumbnail(img, size)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate thumbnail")
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
