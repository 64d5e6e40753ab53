// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse is the JSON error payload for every failed request. The
// front-end reads the detail field verbatim.
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Detail string `json:"detail"`
}

// Render sets the HTTP status code before the payload is written.
func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

// ErrNotFound builds a 404 response for a missing category, post id or slug.
func ErrNotFound(detail string) render.Renderer {
	return &ErrResponse{HTTPStatusCode: http.StatusNotFound, Detail: detail}
}

// ErrConflict builds a 400 response for a uniqueness or referential-safety
// violation.
func ErrConflict(detail string) render.Renderer {
	return &ErrResponse{HTTPStatusCode: http.StatusBadRequest, Detail: detail}
}

// ErrInvalidRequest builds a 400 response for a malformed or invalid payload.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		Detail:         err.Error(),
	}
}

// ErrInternal builds a 500 response; the underlying error stays out of the
// payload and is left to the logger.
func ErrInternal(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Detail:         "Internal Server Error",
	}
}
