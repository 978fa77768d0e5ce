package handlers

import (
	"net/http"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/database"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

// ConfigHandler handles configuration endpoints
type ConfigHandler struct {
	config *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{
		config: cfg,
	}
}

// ConfigResponse represents the configuration response
type ConfigResponse struct {
	MaxPhotosPerPage int     `json:"maxPhotosPerPage"`
	PreviewWidth     int     `json:"previewWidth"`
	PreviewHeight    int     `json:"previewHeight"`
	MinScale         float64 `json:"minScale"`
	MaxScale         float64 `json:"maxScale"`
	CuratedCounts    []int   `json:"curatedCounts"`
	StorageWritable  bool    `json:"storageWritable"`
}

// Get returns the editor defaults the frontend needs to bootstrap
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	response := ConfigResponse{
		MaxPhotosPerPage: h.config.Editor.MaxPhotosPerPage,
		PreviewWidth:     h.config.Editor.PreviewWidth,
		PreviewHeight:    h.config.Editor.PreviewHeight,
		MinScale:         layout.MinScale,
		MaxScale:         layout.MaxScale,
		CuratedCounts:    layout.CuratedCounts(),
		StorageWritable:  database.IsInitialized(),
	}

	respondJSON(w, http.StatusOK, response)
}
