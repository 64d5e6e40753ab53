// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"blogapi/internal/models"
)

// Validation limits for request fields.
const (
	maxNameLen     = 300
	maxContentLen  = 100_000
	maxImageURLLen = 2_000
)

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Bind validates the category payload after decoding.
func (req *CategoryRequest) Bind(r *http.Request) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(req.Name) > maxNameLen {
		return fmt.Errorf("name is too long (max %d characters)", maxNameLen)
	}
	return nil
}

// PostCreateRequest is the payload for creating a post. The slug is never
// client-supplied; it is derived from the name.
type PostCreateRequest struct {
	Name       string  `json:"name"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url"`
	CategoryID int64   `json:"category_id"`
}

// Bind validates the post creation payload after decoding.
func (req *PostCreateRequest) Bind(r *http.Request) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(req.Name) > maxNameLen {
		return fmt.Errorf("name is too long (max %d characters)", maxNameLen)
	}
	if req.Content == "" {
		return errors.New("content is required")
	}
	if utf8.RuneCountInString(req.Content) > maxContentLen {
		return fmt.Errorf("content is too long (max %d characters)", maxContentLen)
	}
	if req.ImageURL != nil && utf8.RuneCountInString(*req.ImageURL) > maxImageURLLen {
		return fmt.Errorf("image_url is too long (max %d characters)", maxImageURLLen)
	}
	if req.CategoryID <= 0 {
		return errors.New("category_id is required")
	}
	return nil
}

// PostUpdateRequest is the payload for a partial post update. Absent fields
// stay untouched; image_url may be an explicit null to clear the image; the
// remaining fields reject explicit nulls because their columns are NOT NULL.
type PostUpdateRequest struct {
	Name       models.Optional[string] `json:"name"`
	Content    models.Optional[string] `json:"content"`
	ImageURL   models.Optional[string] `json:"image_url"`
	CategoryID models.Optional[int64]  `json:"category_id"`
}

// Bind validates whichever fields the partial update carries.
func (req *PostUpdateRequest) Bind(r *http.Request) error {
	if req.Name.Set {
		if req.Name.Null {
			return errors.New("name cannot be null")
		}
		req.Name.Value = strings.TrimSpace(req.Name.Value)
		if req.Name.Value == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(req.Name.Value) > maxNameLen {
			return fmt.Errorf("name is too long (max %d characters)", maxNameLen)
		}
	}
	if req.Content.Set {
		if req.Content.Null {
			return errors.New("content cannot be null")
		}
		if req.Content.Value == "" {
			return errors.New("content cannot be empty")
		}
		if utf8.RuneCountInString(req.Content.Value) > maxContentLen {
			return fmt.Errorf("content is too long (max %d characters)", maxContentLen)
		}
	}
	if req.ImageURL.Set && !req.ImageURL.Null {
		if utf8.RuneCountInString(req.ImageURL.Value) > maxImageURLLen {
			return fmt.Errorf("image_url is too long (max %d characters)", maxImageURLLen)
		}
	}
	if req.CategoryID.Set {
		if req.CategoryID.Null {
			return errors.New("category_id cannot be null")
		}
		if req.CategoryID.Value <= 0 {
			return errors.New("category_id must be a positive id")
		}
	}
	return nil
}
