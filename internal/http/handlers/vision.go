package handlers

import (
	"net/http"
	"strings"

	"server/internal/blob"
	"server/internal/design"
	"server/internal/providers/genai"
)

type visionRequest struct {
	Prompt         string `json:"prompt"`
	ReferenceImage string `json:"referenceImage"`
	DesignType     string `json:"designType"`
}

// CreateImage renders a free-form design described by the user, optionally
// anchored on an inline reference image. A reference that fails to decode is
// dropped rather than failing the request.
func (a *App) CreateImage(w http.ResponseWriter, r *http.Request) {
	var req visionRequest
	if !a.decode(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		a.error(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	var images []genai.ImagePart
	if req.ReferenceImage != "" {
		obj, err := a.Resolver.Resolve(r.Context(), blob.Ref{Value: req.ReferenceImage})
		if err == nil {
			images = []genai.ImagePart{{MIME: obj.MIME, Data: obj.Data}}
		} else {
			a.Logger.Warn().Err(err).Msg("reference image ignored")
		}
	}

	prompt := design.VisionPrompt(req.Prompt, len(images) > 0, design.NormalizeDesignType(req.DesignType))
	result, err := a.Images.GenerateImage(r.Context(), genai.ImageRequest{
		Images: images,
		Prompt: prompt,
		Config: genai.ConfigVision,
	})
	if err != nil {
		a.respondGenerateError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"imageUrl": result.DataURI(),
	})
}
