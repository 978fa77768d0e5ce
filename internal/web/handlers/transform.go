package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/config"
	"github.com/eitanbaron2006/smartalbum-ai-3/internal/layout"
)

// TransformHandler clamps pan/zoom candidates for editor clients
type TransformHandler struct {
	config *config.Config
}

// NewTransformHandler creates a new transform handler
func NewTransformHandler(cfg *config.Config) *TransformHandler {
	return &TransformHandler{config: cfg}
}

type clampRequest struct {
	Image     layout.Size         `json:"image"`
	Container layout.Size         `json:"container"`
	Bounds    *layout.ShapeBounds `json:"bounds,omitempty"`
	UnsafePan bool                `json:"unsafePan,omitempty"`
	Transform layout.Transform    `json:"transform"`
}

// Clamp corrects a candidate transform so the photo keeps covering its
// slot. Scale is clamped to the zoom limits first, then the position is
// corrected against the slot box (or the declared shape bounds).
func (h *TransformHandler) Clamp(w http.ResponseWriter, r *http.Request) {
	var req clampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	t := req.Transform
	t.Scale = layout.ClampScale(t.Scale)

	if !req.UnsafePan {
		box := layout.ResolveBounds(req.Container, req.Bounds)
		t = layout.ClampTransform(req.Image, req.Container, box, t)
	}

	respondJSON(w, http.StatusOK, t)
}
