package handlers

import (
	"net/http"

	"server/internal/blob"
	"server/internal/design"
	"server/internal/providers/genai"
)

type furnishRequest struct {
	ImageURL string `json:"imageUrl"`
	Style    string `json:"style"`
}

// FurnishPlan draws furniture onto an empty floor plan.
func (a *App) FurnishPlan(w http.ResponseWriter, r *http.Request) {
	var req furnishRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "No image URL provided")
		return
	}

	refs := []blob.Ref{{Value: req.ImageURL}}
	a.generate(w, r, refs, design.FurnishPrompt(req.Style), genai.ConfigDrawing, nil)
}
