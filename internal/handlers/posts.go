// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"blogapi/internal/models"
	"blogapi/internal/slug"
	"blogapi/internal/store"
)

// Posts serves the /posts endpoints. It needs the category store to verify
// that a referenced category exists before a post is written.
type Posts struct {
	posts      *store.PostStore
	categories *store.CategoryStore
}

// NewPosts creates the post handler group.
func NewPosts(posts *store.PostStore, categories *store.CategoryStore) *Posts {
	return &Posts{posts: posts, categories: categories}
}

// List returns all posts, newest first, optionally filtered by the search
// query parameter (case-insensitive substring match on the name).
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.posts.List(r.URL.Query().Get("search"))
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	respondList(w, r, NewPostListResponse(items))
}

// Get returns one post by its slug, the public identifier.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if post == nil {
		respond(w, r, ErrNotFound("Post not found"))
		return
	}
	respond(w, r, NewPostResponse(post))
}

// Create adds a post. The referenced category must exist, and the slug is
// derived from the name with a uniqueness probe across all stored posts.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	req := &PostCreateRequest{}
	if err := render.Bind(r, req); err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	category, err := h.categories.FindByID(req.CategoryID)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if category == nil {
		respond(w, r, ErrNotFound("Category not found"))
		return
	}

	postSlug, err := h.posts.UniqueSlug(slug.Generate(req.Name))
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}

	created, err := h.posts.Create(&models.Post{
		Name:       req.Name,
		Slug:       postSlug,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
	})
	if errors.Is(err, store.ErrConflict) {
		// A concurrent create claimed the slug between probe and insert.
		respond(w, r, ErrConflict("Post slug already exists"))
		return
	}
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}

	created.Category = &models.CategoryRef{Name: category.Name}
	render.Status(r, http.StatusCreated)
	respond(w, r, NewPostResponse(created))
}

// Update applies a partial update to the post identified by its current
// slug. A changed name recomputes the slug; a name equal to the current one
// leaves the slug alone.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if post == nil {
		respond(w, r, ErrNotFound("Post not found"))
		return
	}

	req := &PostUpdateRequest{}
	if err := render.Bind(r, req); err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	if req.CategoryID.Set {
		category, err := h.categories.FindByID(req.CategoryID.Value)
		if err != nil {
			respond(w, r, ErrInternal(err))
			return
		}
		if category == nil {
			respond(w, r, ErrNotFound("Category not found"))
			return
		}
		post.CategoryID = req.CategoryID.Value
	}

	if req.Name.Set && req.Name.Value != post.Name {
		post.Name = req.Name.Value
		newSlug, err := h.posts.UniqueSlug(slug.Generate(post.Name))
		if err != nil {
			respond(w, r, ErrInternal(err))
			return
		}
		post.Slug = newSlug
	}
	if req.Content.Set {
		post.Content = req.Content.Value
	}
	if req.ImageURL.Set {
		if req.ImageURL.Null {
			post.ImageURL = nil
		} else {
			v := req.ImageURL.Value
			post.ImageURL = &v
		}
	}

	if err := h.posts.Update(post); err != nil {
		if errors.Is(err, store.ErrConflict) {
			respond(w, r, ErrConflict("Post slug already exists"))
			return
		}
		respond(w, r, ErrInternal(err))
		return
	}

	// Resolve the (possibly new) category for the response.
	post.Category = nil
	if category, err := h.categories.FindByID(post.CategoryID); err == nil && category != nil {
		post.Category = &models.CategoryRef{Name: category.Name}
	}
	respond(w, r, NewPostResponse(post))
}

// Delete removes a post by slug. Posts are leaves, so removal is
// unconditional.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if post == nil {
		respond(w, r, ErrNotFound("Post not found"))
		return
	}

	if err := h.posts.Delete(post.ID); err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	respond(w, r, NewMessageResponse("Post deleted successfully"))
}
