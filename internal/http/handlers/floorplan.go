package handlers

import (
	"net/http"

	"server/internal/design"
	"server/internal/providers/genai"
)

type floorPlanRequest struct {
	RoomType        string  `json:"roomType"`
	RoomName        string  `json:"roomName"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	Doors           int     `json:"doors"`
	Windows         int     `json:"windows"`
	Style           string  `json:"style"`
	AdditionalNotes string  `json:"additionalNotes"`
}

// CreateFloorPlan generates a 2D floor plan from scratch. This is the only
// image tool with no input image: the whole room is described in text.
func (a *App) CreateFloorPlan(w http.ResponseWriter, r *http.Request) {
	var req floorPlanRequest
	if !a.decode(w, r, &req) {
		return
	}
	if req.RoomType == "" {
		a.error(w, http.StatusBadRequest, "Room type is required")
		return
	}
	if req.Width <= 0 || req.Height <= 0 {
		a.error(w, http.StatusBadRequest, "Valid dimensions are required")
		return
	}
	if req.Doors <= 0 {
		req.Doors = 1
	}
	if req.Windows <= 0 {
		req.Windows = 1
	}
	if req.Style == "" {
		req.Style = "modern"
	}
	if req.RoomName == "" {
		req.RoomName = req.RoomType
	}

	prompt := design.FloorPlanPrompt(design.FloorPlanParams{
		RoomType:        req.RoomType,
		RoomName:        req.RoomName,
		Width:           req.Width,
		Height:          req.Height,
		Doors:           req.Doors,
		Windows:         req.Windows,
		Style:           req.Style,
		AdditionalNotes: req.AdditionalNotes,
	})
	a.generate(w, r, nil, prompt, genai.ConfigDrawing, nil)
}
