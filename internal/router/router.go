// Package router sets up all HTTP routes and middleware chains for the
// blog API. The route table mirrors what the front-end API clients call.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"blogapi/internal/handlers"
	"blogapi/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(categories *handlers.Categories, posts *handlers.Posts, corsOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Liveness and health probes.
	r.Get("/", rootHandler)
	r.Get("/health", healthHandler)

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categories.List)
		r.Post("/", categories.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", categories.Get)
			r.Put("/", categories.Update)
			r.Delete("/", categories.Delete)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", posts.List)
		r.Post("/", posts.Create)
		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", posts.Get)
			r.Put("/", posts.Update)
			r.Delete("/", posts.Delete)
		})
	})

	return r
}

// rootHandler returns the liveness message.
func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Blog API is running"}`))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
