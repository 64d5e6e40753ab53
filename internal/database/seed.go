package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"blogapi/internal/slug"
)

// seedCategories is the fixed set of categories created on first run.
// The blog front-end ships with Russian content, hence the names.
var seedCategories = []string{
	"Программирование",
	"Дизайн",
	"Маркетинг",
	"Образование",
	"Новости",
}

// seedPosts are the two sample posts filed under the first category.
var seedPosts = []struct {
	name     string
	content  string
	imageURL string
}{
	{
		name:     "Введение в Vue.js",
		content:  "Vue.js - это прогрессивный фреймворк для создания пользовательских интерфейсов.",
		imageURL: "https://vuejs.org/images/logo.png",
	},
	{
		name:     "React vs Vue: что выбрать?",
		content:  "Сравнение двух популярных фреймворков для фронтенд-разработки.",
		imageURL: "https://upload.wikimedia.org/wikipedia/commons/a/a7/React-icon.svg",
	},
}

// Seed populates the database with the initial categories and two sample
// posts. It is a no-op when categories already exist, so it is safe to call
// on every startup.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var firstID int64
	for i, name := range seedCategories {
		var id int64
		err := db.QueryRow(
			`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", name, err)
		}
		if i == 0 {
			firstID = id
		}
	}

	for _, p := range seedPosts {
		_, err := db.Exec(`
			INSERT INTO posts (name, slug, content, image_url, category_id)
			VALUES ($1, $2, $3, $4, $5)
		`, p.name, slug.Generate(p.name), p.content, p.imageURL, firstID)
		if err != nil {
			return fmt.Errorf("seed insert post %q: %w", p.name, err)
		}
	}

	slog.Info("database seeded",
		"categories", len(seedCategories),
		"posts", len(seedPosts),
	)

	return nil
}
