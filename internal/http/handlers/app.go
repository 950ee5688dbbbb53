package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/blob"
	"server/internal/infra"
	"server/internal/providers/genai"
	"server/internal/storage"
)

// ImageGenerator is the slice of the Gemini client the image tools need.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req genai.ImageRequest) (*genai.ImageResult, error)
}

// TextGenerator is the slice of the Gemini client the concept tool needs.
type TextGenerator interface {
	GenerateText(ctx context.Context, req genai.TextRequest) (string, error)
}

// BlobResolver turns image references into bytes plus mime type.
type BlobResolver interface {
	Resolve(ctx context.Context, ref blob.Ref) (blob.Object, error)
	ResolveAll(ctx context.Context, refs ...blob.Ref) ([]blob.Object, error)
}

// App bundles the collaborators every handler needs. All fields are injected
// so tests can swap in stubs.
type App struct {
	Config   *infra.Config
	Logger   zerolog.Logger
	Images   ImageGenerator
	Texts    TextGenerator
	Resolver BlobResolver
	Store    storage.Store
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"error": msg})
}

// decode reads a JSON request body. A false return means the 400 reply has
// already been written.
func (a *App) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
