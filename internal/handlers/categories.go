// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"blogapi/internal/store"
)

// Categories serves the /categories endpoints.
type Categories struct {
	store *store.CategoryStore
}

// NewCategories creates the category handler group.
func NewCategories(s *store.CategoryStore) *Categories {
	return &Categories{store: s}
}

// categoryID parses the {id} route parameter.
func categoryID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, errors.New("category id must be an integer")
	}
	return id, nil
}

// List returns every category annotated with its current posts_count.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List()
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	respondList(w, r, NewCategoryListResponse(items))
}

// Get returns one category by id.
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	category, err := h.store.FindByID(id)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if category == nil {
		respond(w, r, ErrNotFound("Category not found"))
		return
	}
	respond(w, r, NewCategoryResponse(category))
}

// Create adds a category. Duplicate names are rejected whether caught by
// the pre-check or by the unique constraint underneath it.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	req := &CategoryRequest{}
	if err := render.Bind(r, req); err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	existing, err := h.store.FindByName(req.Name)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if existing != nil {
		respond(w, r, ErrConflict("Category with this name already exists"))
		return
	}

	created, err := h.store.Create(req.Name)
	if errors.Is(err, store.ErrConflict) {
		respond(w, r, ErrConflict("Category with this name already exists"))
		return
	}
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}

	render.Status(r, http.StatusCreated)
	respond(w, r, NewCategoryResponse(created))
}

// Update renames a category in place. The new name must not belong to any
// other category.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	category, err := h.store.FindByID(id)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if category == nil {
		respond(w, r, ErrNotFound("Category not found"))
		return
	}

	req := &CategoryRequest{}
	if err := render.Bind(r, req); err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	other, err := h.store.FindByName(req.Name)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if other != nil && other.ID != id {
		respond(w, r, ErrConflict("Category with this name already exists"))
		return
	}

	if err := h.store.Rename(id, req.Name); err != nil {
		if errors.Is(err, store.ErrConflict) {
			respond(w, r, ErrConflict("Category with this name already exists"))
			return
		}
		respond(w, r, ErrInternal(err))
		return
	}

	// Re-read so the response carries the fresh name and posts_count.
	updated, err := h.store.FindByID(id)
	if err != nil || updated == nil {
		respond(w, r, ErrInternal(err))
		return
	}
	respond(w, r, NewCategoryResponse(updated))
}

// Delete removes a category, but only when no posts reference it. Deletion
// is rejected, not cascaded.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := categoryID(r)
	if err != nil {
		respond(w, r, ErrInvalidRequest(err))
		return
	}

	category, err := h.store.FindByID(id)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if category == nil {
		respond(w, r, ErrNotFound("Category not found"))
		return
	}

	count, err := h.store.PostCount(id)
	if err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	if count > 0 {
		respond(w, r, ErrConflict(fmt.Sprintf("Cannot delete category with %d posts. Delete posts first.", count)))
		return
	}

	if err := h.store.Delete(id); err != nil {
		respond(w, r, ErrInternal(err))
		return
	}
	respond(w, r, NewMessageResponse("Category deleted successfully"))
}
