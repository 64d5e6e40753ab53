// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/render"

	"blogapi/internal/models"
)

// CategoryResponse renders a category with its computed posts_count.
type CategoryResponse struct {
	*models.Category
}

func (cr *CategoryResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// NewCategoryResponse wraps a category for rendering.
func NewCategoryResponse(c *models.Category) *CategoryResponse {
	return &CategoryResponse{Category: c}
}

// NewCategoryListResponse wraps a category slice for render.RenderList.
// An empty slice renders as [] rather than null.
func NewCategoryListResponse(items []models.Category) []render.Renderer {
	list := make([]render.Renderer, 0, len(items))
	for i := range items {
		list = append(list, NewCategoryResponse(&items[i]))
	}
	return list
}

// PostResponse renders a post with its embedded category reference.
type PostResponse struct {
	*models.Post
}

func (pr *PostResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// NewPostResponse wraps a post for rendering.
func NewPostResponse(p *models.Post) *PostResponse {
	return &PostResponse{Post: p}
}

// NewPostListResponse wraps a post slice for render.RenderList.
func NewPostListResponse(items []models.Post) []render.Renderer {
	list := make([]render.Renderer, 0, len(items))
	for i := range items {
		list = append(list, NewPostResponse(&items[i]))
	}
	return list
}

// MessageResponse acknowledges deletions and serves the liveness endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

func (mr *MessageResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// NewMessageResponse builds a plain message payload.
func NewMessageResponse(msg string) *MessageResponse {
	return &MessageResponse{Message: msg}
}
