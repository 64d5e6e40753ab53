// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"blogapi/internal/models"
)

// PostStore handles all post-related database operations.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns all posts ordered by creation date descending (ties broken
// by id descending). When search is non-empty, only posts whose name
// contains it case-insensitively are returned. Each post carries its
// category name when the category is resolvable.
func (s *PostStore) List(search string) ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.name, p.slug, p.content, p.image_url, p.category_id,
		       p.created_at, c.name
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE $1 = '' OR p.name ILIKE '%' || $1 || '%'
		ORDER BY p.created_at DESC, p.id DESC
	`, search)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindBySlug retrieves a post by its slug, the public lookup key. Returns
// nil if not found.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	row := s.db.QueryRow(`
		SELECT p.id, p.name, p.slug, p.content, p.image_url, p.category_id,
		       p.created_at, c.name
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1
	`, slug)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// scanPost scans a joined post row, folding the nullable category name into
// a CategoryRef.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var p models.Post
	var categoryName sql.NullString
	err := scanner.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Content, &p.ImageURL,
		&p.CategoryID, &p.CreatedAt, &categoryName,
	)
	if err != nil {
		return nil, err
	}
	if categoryName.Valid {
		p.Category = &models.CategoryRef{Name: categoryName.String}
	}
	return &p, nil
}

// SlugExists reports whether any post currently holds the given slug.
func (s *PostStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return exists, nil
}

// UniqueSlug probes base, base-1, base-2, … until it finds a slug not held
// by any stored post. One lookup per candidate; in practice the base is
// free and the loop exits immediately.
func (s *PostStore) UniqueSlug(base string) (string, error) {
	candidate := base
	for n := 1; ; n++ {
		exists, err := s.SlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}
}

// Create inserts a new post and returns it with the generated id and
// timestamp. The category ref is not populated; callers already hold the
// category they validated. A slug collision surfaces as ErrConflict.
func (s *PostStore) Create(p *models.Post) (*models.Post, error) {
	result := &models.Post{}
	err := s.db.QueryRow(`
		INSERT INTO posts (name, slug, content, image_url, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, content, image_url, category_id, created_at
	`, p.Name, p.Slug, p.Content, p.ImageURL, p.CategoryID).Scan(
		&result.ID, &result.Name, &result.Slug, &result.Content,
		&result.ImageURL, &result.CategoryID, &result.CreatedAt,
	)
	if err != nil {
		return nil, wrapWriteErr("create post", err)
	}
	return result, nil
}

// Update persists the post's mutable fields. created_at never changes.
// A slug collision surfaces as ErrConflict.
func (s *PostStore) Update(p *models.Post) error {
	_, err := s.db.Exec(`
		UPDATE posts SET
			name = $1, slug = $2, content = $3, image_url = $4, category_id = $5
		WHERE id = $6
	`, p.Name, p.Slug, p.Content, p.ImageURL, p.CategoryID, p.ID)
	if err != nil {
		return wrapWriteErr("update post", err)
	}
	return nil
}

// Delete removes a post by ID. Posts are leaves; nothing references them.
func (s *PostStore) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}
