package handlers

import (
	"net/http"

	"server/internal/blob"
	"server/internal/design"
	"server/internal/providers/genai"
)

type restyleRequest struct {
	ImageURL string `json:"imageUrl"`
	Style    string `json:"style"`
	RoomType string `json:"roomType"`
}

// RestyleRoom redesigns a room photo in a chosen style while keeping the
// room's structure unchanged.
func (a *App) RestyleRoom(w http.ResponseWriter, r *http.Request) {
	var req restyleRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "No image URL provided")
		return
	}

	refs := []blob.Ref{{Value: req.ImageURL}}
	prompt := design.RestylePrompt(req.Style, req.RoomType)
	a.generate(w, r, refs, prompt, genai.ConfigRestyle, nil)
}
