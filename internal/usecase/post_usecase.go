package usecase

import (
	"context"

	"wlsd/internal/domain/entity"
)

// PostInput carries the post creation form fields.
type PostInput struct {
	Title  string `form:"title" json:"title" validate:"required"`
	Slug   string `form:"slug" json:"slug" validate:"required"`
	Author string `form:"author" json:"author" validate:"required"`
	Body   string `form:"body" json:"body" validate:"required"`
}

// PostUsecase defines the operations for post management.
type PostUsecase interface {
	CreatePost(ctx context.Context, input *PostInput) (*entity.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
}
