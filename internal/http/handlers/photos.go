package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadBytes = 20 << 20

// ServePhoto streams a stored photo back to the browser. Anything the store
// cannot produce is a plain 404; the path is never reflected in the reply.
func (a *App) ServePhoto(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.NotFound(w, r)
		return
	}

	data, err := a.Store.Read(r.Context(), key)
	if err != nil {
		a.Logger.Warn().Err(err).Str("key", key).Msg("photo read failed")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(key))
	w.Header().Set("Cache-Control", "public, max-age=31536000")
	_, _ = w.Write(data)
}

// UploadPhoto accepts one multipart file and stores it under a fresh key.
func (a *App) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.error(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.error(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		a.respondInternal(w, err)
		return
	}
	if len(data) > maxUploadBytes {
		a.error(w, http.StatusBadRequest, "File too large")
		return
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	key := uploadKey(header.Filename)
	stored, err := a.Store.Upload(r.Context(), key, mime, data)
	if err != nil {
		a.respondInternal(w, err)
		return
	}

	a.json(w, http.StatusOK, map[string]string{
		"path": stored,
		"url":  a.Store.PublicURL(stored),
	})
}

// DeletePhoto removes a stored photo.
func (a *App) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		http.NotFound(w, r)
		return
	}

	if err := a.Store.Remove(r.Context(), key); err != nil {
		a.Logger.Warn().Err(err).Str("key", key).Msg("photo delete failed")
		http.NotFound(w, r)
		return
	}
	a.json(w, http.StatusOK, map[string]bool{"success": true})
}

func uploadKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

func contentTypeFor(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
