package handlers

import (
	"net/http"
	"strings"

	"server/internal/design"
	"server/internal/providers/genai"
)

type conceptRequest struct {
	Prompt string `json:"prompt"`
}

// CreateConcept asks the text model for a structured design concept. The
// model's JSON is parsed leniently: a reply that fails to parse still yields
// a usable concept built from the raw text.
func (a *App) CreateConcept(w http.ResponseWriter, r *http.Request) {
	var req conceptRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	raw, err := a.Texts.GenerateText(r.Context(), genai.TextRequest{
		Prompt: design.ConceptPrompt(req.Prompt),
		Config: genai.ConfigConcept,
	})
	if err != nil {
		a.respondGenerateError(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"concept": design.ParseConcept(raw, req.Prompt),
	})
}
