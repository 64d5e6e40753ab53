// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the entities persisted by the blog API and the
// JSON shapes they expose.
package models

import "time"

// Category groups posts under a unique, case-sensitive name.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// PostsCount is a projection computed at read time from the posts
	// currently referencing this category. It is never persisted.
	PostsCount int `json:"posts_count"`
}
