// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides the relational persistence layer for categories
// and posts. Lookup methods return (nil, nil) when no row matches.
package store

import (
	"database/sql"
	"fmt"

	"blogapi/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories ordered by id, each with the number of posts
// currently referencing it.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT c.id, c.name, c.created_at, COUNT(p.id) AS posts_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		GROUP BY c.id
		ORDER BY c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.PostsCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID with its post count. Returns nil if
// not found.
func (s *CategoryStore) FindByID(id int64) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		SELECT c.id, c.name, c.created_at, COUNT(p.id) AS posts_count
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt, &c.PostsCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return &c, nil
}

// FindByName retrieves a category by its exact, case-sensitive name.
// Returns nil if not found. Used for duplicate-name pre-checks.
func (s *CategoryStore) FindByName(name string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(
		`SELECT id, name, created_at FROM categories WHERE name = $1`, name,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by name: %w", err)
	}
	return &c, nil
}

// Create inserts a new category and returns it. A duplicate name surfaces
// as ErrConflict.
func (s *CategoryStore) Create(name string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, created_at
	`, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, wrapWriteErr("create category", err)
	}
	return &c, nil
}

// Rename changes a category's name in place. A duplicate name surfaces as
// ErrConflict.
func (s *CategoryStore) Rename(id int64, name string) error {
	if _, err := s.db.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, name, id); err != nil {
		return wrapWriteErr("rename category", err)
	}
	return nil
}

// Delete removes a category by ID. The posts FK has no cascade, so the
// database rejects deletion while posts still reference the category.
func (s *CategoryStore) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// PostCount returns the number of posts referencing the category.
func (s *CategoryStore) PostCount(id int64) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE category_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count posts for category: %w", err)
	}
	return count, nil
}
