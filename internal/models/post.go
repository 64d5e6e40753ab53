// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// CategoryRef is the reduced category representation embedded in post
// responses. Only the name travels with the post.
type CategoryRef struct {
	Name string `json:"name"`
}

// Post is a blog entry. The slug is the public lookup key, derived from
// the name at creation and recomputed whenever the name changes.
type Post struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Slug       string       `json:"slug"`
	Content    string       `json:"content"`
	ImageURL   *string      `json:"image_url"`
	CategoryID int64        `json:"category_id"`
	CreatedAt  time.Time    `json:"created_at"`

	// Category carries the owning category's name when resolvable,
	// nil otherwise.
	Category *CategoryRef `json:"category"`
}
