// Package handlers contains the HTTP handlers for the blog API: category
// and post CRUD over JSON, with slug generation and referential-integrity
// checks applied before anything touches the database.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// respond renders a single JSON payload, logging the render failure that
// should never happen.
func respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		slog.Error("render response", "error", err, "path", r.URL.Path)
	}
}

// respondList renders a JSON array payload.
func respondList(w http.ResponseWriter, r *http.Request, list []render.Renderer) {
	if err := render.RenderList(w, r, list); err != nil {
		slog.Error("render response list", "error", err, "path", r.URL.Path)
	}
}
