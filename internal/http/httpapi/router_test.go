package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/blob"
	"server/internal/http/handlers"
	"server/internal/infra"
	"server/internal/providers/genai"
)

type fixedImages struct {
	result *genai.ImageResult
}

func (f *fixedImages) GenerateImage(ctx context.Context, req genai.ImageRequest) (*genai.ImageResult, error) {
	return f.result, nil
}

type fixedTexts struct {
	reply string
}

func (f *fixedTexts) GenerateText(ctx context.Context, req genai.TextRequest) (string, error) {
	return f.reply, nil
}

func newTestRouter() http.Handler {
	app := &handlers.App{
		Config:   &infra.Config{AllowedOrigins: []string{"http://localhost:3000"}},
		Logger:   zerolog.Nop(),
		Images:   &fixedImages{result: &genai.ImageResult{MIME: "image/png", Data: []byte{1}}},
		Texts:    &fixedTexts{reply: `{"title":"Concept"}`},
		Resolver: blob.NewResolver(nil),
	}
	return NewRouter(app)
}

func TestRouterHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestRouterDispatchesTool(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{"roomType": "bedroom", "width": 4, "height": 4})
	req := httptest.NewRequest(http.MethodPost, "/api/create-2d-plan", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "data:image/png;base64,") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("request id header missing")
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/create-image", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("allow origin = %q", got)
	}
}
