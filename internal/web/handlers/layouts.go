package handlers

import (
	"net/http"
	"strconv"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

// LayoutsHandler serves the page layout template catalog
type LayoutsHandler struct {
	config *config.Config
}

// NewLayoutsHandler creates a new layouts handler
func NewLayoutsHandler(cfg *config.Config) *LayoutsHandler {
	return &LayoutsHandler{config: cfg}
}

// countParam parses the required count query parameter.
func countParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil || count < 1 {
		respondError(w, http.StatusBadRequest, "count must be a positive integer")
		return 0, false
	}
	return count, true
}

// List returns every template usable for the given photo count, curated
// templates first, the generated fallback grid last.
func (h *LayoutsHandler) List(w http.ResponseWriter, r *http.Request) {
	count, ok := countParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, layout.LayoutsForCount(count))
}

// Fallback returns only the generated fallback grid for the given count.
func (h *LayoutsHandler) Fallback(w http.ResponseWriter, r *http.Request) {
	count, ok := countParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, layout.FallbackLayout(count))
}
