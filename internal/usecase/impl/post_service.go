package impl

import (
	"context"
	"log/slog"

	"wlsd/internal/domain/entity"
	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/domain/repository"
	"wlsd/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// CreatePost persists a new post from form input.
func (srv *postService) CreatePost(ctx context.Context, input *usecase.PostInput) (*entity.Post, error) {
	post := &entity.Post{
		Title:  input.Title,
		Slug:   input.Slug,
		Author: input.Author,
		Body:   input.Body,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, domainerrors.ErrBadRequest.WrapMessage("slug already taken")
		}

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.logger.Info("Post created", slog.String("slug", post.Slug))

	return post, nil
}

// GetPostBySlug retrieves a single post by its slug.
func (srv *postService) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}
