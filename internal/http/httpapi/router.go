package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"server/internal/http/handlers"
	"server/internal/middleware"
)

// NewRouter wires the middleware chain and every API route.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.Recover(app.Logger))
	r.Use(middleware.CORS(app.Config.AllowedOrigins))

	r.Get("/healthz", app.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/create-2d-plan", app.CreateFloorPlan)
		r.Post("/interior-design", app.RestyleRoom)
		r.Post("/convert-2d-to-3d", app.ConvertTo3D)
		r.Post("/furniture-plan", app.FurnishPlan)
		r.Post("/design-from-reference", app.DesignFromReference)
		r.Post("/create-image", app.CreateImage)
		r.Post("/create-design", app.CreateConcept)

		r.Get("/photos/*", app.ServePhoto)
		r.Delete("/photos/*", app.DeletePhoto)
		r.Post("/upload", app.UploadPhoto)
	})

	return r
}
