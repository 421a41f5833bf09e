package repository

import (
	"context"
	"errors"

	"wlsd/internal/domain/entity"
)

// Post persistence errors.
var (
	// ErrPostNotFound is returned when a post lookup finds no row.
	ErrPostNotFound = errors.New("post not found")
	// ErrDuplicateSlug is returned when a create collides with an existing slug.
	ErrDuplicateSlug = errors.New("slug already taken")
)

// PostRepository defines the operations for post persistence.
type PostRepository interface {
	// Create persists a new post and fills in its generated ID. Returns
	// ErrDuplicateSlug when the slug is already taken.
	Create(ctx context.Context, post *entity.Post) error

	// FindBySlug retrieves a single post by its slug. Returns ErrPostNotFound
	// when absent.
	FindBySlug(ctx context.Context, slug string) (*entity.Post, error)
}
