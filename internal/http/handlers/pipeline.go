package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"server/internal/blob"
	"server/internal/providers/genai"
)

// generate runs the shared tool pipeline after a handler has validated its
// input: resolve every image reference (concurrently when there are two),
// call the provider with images-then-prompt, and map the outcome onto the
// JSON envelope the browser expects. success shapes the reply from the
// generated data URI; passing nil yields the default {"imageUrl": ...}.
func (a *App) generate(w http.ResponseWriter, r *http.Request, refs []blob.Ref, prompt string, cfg genai.GenerationConfig, success func(dataURI string) any) {
	ctx := r.Context()

	var images []genai.ImagePart
	if len(refs) > 0 {
		objects, err := a.Resolver.ResolveAll(ctx, refs...)
		if err != nil {
			a.respondResolveError(w, err)
			return
		}
		images = make([]genai.ImagePart, len(objects))
		for i, obj := range objects {
			images[i] = genai.ImagePart{MIME: obj.MIME, Data: obj.Data}
		}
	}

	result, err := a.Images.GenerateImage(ctx, genai.ImageRequest{
		Images: images,
		Prompt: prompt,
		Config: cfg,
	})
	if err != nil {
		a.respondGenerateError(w, err)
		return
	}

	if success == nil {
		success = func(dataURI string) any {
			return map[string]string{"imageUrl": dataURI}
		}
	}
	a.json(w, http.StatusOK, success(result.DataURI()))
}

func (a *App) respondResolveError(w http.ResponseWriter, err error) {
	var fetchErr *blob.FetchError
	switch {
	case errors.As(err, &fetchErr):
		msg := "Failed to fetch image"
		if fetchErr.Label != "" {
			msg = fmt.Sprintf("Failed to fetch %s image", fetchErr.Label)
		}
		a.Logger.Warn().Err(err).Msg("image fetch failed")
		a.error(w, http.StatusBadRequest, msg)
	case errors.Is(err, blob.ErrMalformedDataURI):
		a.error(w, http.StatusBadRequest, "Invalid image data")
	default:
		a.respondInternal(w, err)
	}
}

func (a *App) respondGenerateError(w http.ResponseWriter, err error) {
	var apiErr *genai.APIError
	var noImage *genai.NoImageError
	switch {
	case errors.As(err, &apiErr):
		a.Logger.Error().Err(err).Msg("gemini api error")
		a.json(w, http.StatusInternalServerError, map[string]any{
			"error":   "Gemini API error",
			"status":  apiErr.StatusCode,
			"details": apiErr.Message,
		})
	case errors.As(err, &noImage):
		text := noImage.Text
		if text == "" {
			text = "No text either"
		}
		a.json(w, http.StatusInternalServerError, map[string]string{
			"error": "No image in response",
			"text":  text,
		})
	case errors.Is(err, genai.ErrNoCandidates):
		a.error(w, http.StatusInternalServerError, "No response from Gemini")
	case errors.Is(err, genai.ErrNoParts):
		a.error(w, http.StatusInternalServerError, "No parts in Gemini response")
	default:
		a.respondInternal(w, err)
	}
}

func (a *App) respondInternal(w http.ResponseWriter, err error) {
	a.Logger.Error().Err(err).Msg("request failed")
	a.json(w, http.StatusInternalServerError, map[string]string{
		"error":   "Internal error",
		"details": err.Error(),
	})
}

