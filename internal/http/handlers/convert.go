package handlers

import (
	"net/http"

	"server/internal/blob"
	"server/internal/design"
	"server/internal/providers/genai"
)

type convertRequest struct {
	ImageURL string `json:"imageUrl"`
}

// ConvertTo3D turns a 2D floor plan image into an isometric 3D rendering.
func (a *App) ConvertTo3D(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "No imageUrl provided")
		return
	}

	refs := []blob.Ref{{Value: req.ImageURL}}
	a.generate(w, r, refs, design.ConvertTo3DPrompt(), genai.ConfigDrawing, nil)
}
