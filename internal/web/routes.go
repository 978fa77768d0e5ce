package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eitanbaron2006/smartalbum-ai-3/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	// Create handlers
	layoutsHandler := handlers.NewLayoutsHandler(s.config)
	transformHandler := handlers.NewTransformHandler(s.config)
	albumsHandler := handlers.NewAlbumsHandler(s.config)
	pagesHandler := handlers.NewPagesHandler(s.config)
	photosHandler := handlers.NewPhotosHandler(s.config)
	configHandler := handlers.NewConfigHandler(s.config)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	// API routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Layout catalog
		r.Get("/layouts", layoutsHandler.List)
		r.Get("/layouts/fallback", layoutsHandler.Fallback)

		// Pan/zoom clamping
		r.Post("/transform/clamp", transformHandler.Clamp)

		// Albums
		r.Get("/albums", albumsHandler.List)
		r.Post("/albums", albumsHandler.Create)
		r.Get("/albums/{id}", albumsHandler.Get)
		r.Put("/albums/{id}", albumsHandler.Update)
		r.Delete("/albums/{id}", albumsHandler.Delete)
		r.Get("/albums/{id}/photos", albumsHandler.GetPhotos)
		r.Post("/albums/{id}/photos", albumsHandler.AddPhotos)
		r.Post("/albums/{id}/distribute", albumsHandler.Distribute)

		// Pages
		r.Get("/pages/{id}", pagesHandler.Get)
		r.Put("/pages/{id}/layout", pagesHandler.UpdateLayout)
		r.Put("/pages/{id}/background", pagesHandler.UpdateBackground)
		r.Get("/pages/{id}/preview", pagesHandler.Preview)
		r.Put("/pages/{id}/slots/{index}/transform", pagesHandler.UpdateSlotTransform)
		r.Post("/pages/{id}/slots/swap", pagesHandler.SwapSlots)

		// Photos
		r.Get("/photos", photosHandler.List)
		r.Post("/photos", photosHandler.Register)
		r.Get("/photos/{uid}", photosHandler.Get)
		r.Get("/photos/{uid}/thumb/{size}", photosHandler.Thumbnail)

		// Config
		r.Get("/config", configHandler.Get)
	})

	// Landing page
	s.router.Get("/", s.serveIndex)
}

// serveIndex serves a short landing page pointing at the API.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Smart Album</title>
    <style>
        body { font-family: system-ui, sans-serif; display: flex; justify-content: center; align-items: center; height: 100vh; margin: 0; background: #1a1a2e; color: #eee; }
        .container { text-align: center; }
        h1 { color: #00d9ff; }
        p { color: #aaa; }
        a { color: #00d9ff; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Smart Album</h1>
        <p>Photo album editor API server.</p>
        <p>API is available at <a href="/api/v1/health">/api/v1/health</a></p>
    </div>
</body>
</html>`))
}
