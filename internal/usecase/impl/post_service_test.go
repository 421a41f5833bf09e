package impl_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"wlsd/internal/domain/entity"
	domainerrors "wlsd/internal/domain/errors"
	"wlsd/internal/domain/repository"
	"wlsd/internal/usecase"
	"wlsd/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) (usecase.PostUsecase, *MockPostRepository) {
	t.Helper()

	repo := new(MockPostRepository)
	svc := impl.NewPostService(impl.PostServiceParams{
		PostRepo: repo,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return svc, repo
}

func TestCreatePost(t *testing.T) {
	svc, repo := newPostService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Slug == "hello" && p.Author == "ada"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Post).ID = 3
	}).Return(nil)

	post, err := svc.CreatePost(ctx, &usecase.PostInput{
		Title:  "Hello",
		Slug:   "hello",
		Author: "ada",
		Body:   "First post.",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), post.ID)
}

func TestCreatePost_DuplicateSlug(t *testing.T) {
	svc, repo := newPostService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateSlug)

	_, err := svc.CreatePost(ctx, &usecase.PostInput{
		Title: "Hello", Slug: "hello", Author: "ada", Body: "x",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBadRequest))
}

func TestGetPostBySlug_MissingIsNotFound(t *testing.T) {
	svc, repo := newPostService(t)
	ctx := context.Background()

	repo.On("FindBySlug", ctx, "missing").Return(nil, repository.ErrPostNotFound)

	_, err := svc.GetPostBySlug(ctx, "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
