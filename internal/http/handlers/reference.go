package handlers

import (
	"net/http"

	"server/internal/blob"
	"server/internal/design"
	"server/internal/providers/genai"
)

type referenceRequest struct {
	RoomImageURL      string `json:"roomImageUrl"`
	ReferenceImageURL string `json:"referenceImageUrl"`
}

// DesignFromReference restyles a room photo to match a reference photo. The
// room image must come first in the request parts: the prompt addresses the
// images by position.
func (a *App) DesignFromReference(w http.ResponseWriter, r *http.Request) {
	var req referenceRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.RoomImageURL == "" {
		a.error(w, http.StatusBadRequest, "No room image URL provided")
		return
	}
	if req.ReferenceImageURL == "" {
		a.error(w, http.StatusBadRequest, "No reference image URL provided")
		return
	}

	refs := []blob.Ref{
		{Label: "room", Value: req.RoomImageURL},
		{Label: "reference", Value: req.ReferenceImageURL},
	}
	a.generate(w, r, refs, design.ReferenceTransferPrompt(), genai.ConfigDrawing, nil)
}
