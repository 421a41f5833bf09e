package entity

import "time"

// Post is a written article addressed by its slug.
type Post struct {
	ID        int64     // Sequential identifier.
	Title     string    // Display title of the post.
	Slug      string    // URL-safe identifier. Unique.
	Author    string    // Display name of the author.
	Body      string    // The post content.
	CreatedAt time.Time // Timestamp of when the post was created.
}
