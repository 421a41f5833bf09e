package postgres

import (
	"context"

	"wlsd/internal/domain/entity"
	"wlsd/internal/domain/repository"
	"wlsd/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// Create persists a new post and fills in its generated ID.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := &model.PostModel{
		Title:  post.Title,
		Slug:   post.Slug,
		Author: post.Author,
		Body:   post.Body,
	}

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSlug
		}

		return errors.Wrap(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// FindBySlug retrieves a single post by its slug.
func (repo *postRepository) FindBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	var postM model.PostModel
	err := repo.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&postM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by slug")
	}

	return &entity.Post{
		ID:        postM.ID,
		Title:     postM.Title,
		Slug:      postM.Slug,
		Author:    postM.Author,
		Body:      postM.Body,
		CreatedAt: postM.CreatedAt,
	}, nil
}
