package postgres

import (
	"context"
	"testing"
	"time"

	"wlsd/config"
	"wlsd/internal/domain/entity"
	"wlsd/internal/domain/repository"
	"wlsd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A second connection would see a different empty in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&model.UserModel{},
		&model.LoginTokenModel{},
		&model.SessionTokenModel{},
		&model.EventModel{},
		&model.PostModel{},
	))

	return db
}

func testAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		LoginTokenTTL:   30 * time.Minute,
		SessionTokenTTL: 24 * time.Hour,
	}

	return cfg
}

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
	}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &entity.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", byID.FirstName)

	// Lookups normalize too, so casing never matters.
	byEmail, err := repo.FindByEmail(ctx, "ADA@example.COM")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepository_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, repo, "ada@example.com")

	err := repo.Create(ctx, &entity.User{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "ADA@example.com",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestLoginTokenRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	token := &entity.LoginToken{Token: "deadbeefdeadbeef", Email: "ada@example.com"}
	require.NoError(t, repo.Create(ctx, token))

	email, err := repo.FindEmailByToken(ctx, "deadbeefdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)
}

func TestLoginTokenRepository_UnknownToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())

	_, err := repo.FindEmailByToken(context.Background(), "0000000000000000")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestLoginTokenRepository_ExpiredTokenLooksMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	stale := &model.LoginTokenModel{
		Token:     "deadbeefdeadbeef",
		Email:     "ada@example.com",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(stale).Error)

	_, err := repo.FindEmailByToken(ctx, "deadbeefdeadbeef")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)

	_, err = repo.FindUserByToken(ctx, "deadbeefdeadbeef")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestLoginTokenRepository_TokenCollision(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.LoginToken{
		Token: "deadbeefdeadbeef", Email: "a@example.com",
	}))

	err := repo.Create(ctx, &entity.LoginToken{
		Token: "deadbeefdeadbeef", Email: "b@example.com",
	})
	assert.ErrorIs(t, err, repository.ErrTokenCollision)
}

func TestLoginTokenRepository_FindUserByToken(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	user := createTestUser(t, userRepo, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &entity.LoginToken{
		Token: "deadbeefdeadbeef", Email: "ada@example.com",
	}))

	found, err := repo.FindUserByToken(ctx, "deadbeefdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestLoginTokenRepository_FindUserByToken_NoAccount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.LoginToken{
		Token: "deadbeefdeadbeef", Email: "nobody@example.com",
	}))

	// The token is live but its email has no account behind it.
	_, err := repo.FindUserByToken(ctx, "deadbeefdeadbeef")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	// The registration path still resolves the email.
	email, err := repo.FindEmailByToken(ctx, "deadbeefdeadbeef")
	require.NoError(t, err)
	assert.Equal(t, "nobody@example.com", email)
}

func TestLoginTokenRepository_ConsumeIsSingleUse(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.LoginToken{
		Token: "deadbeefdeadbeef", Email: "ada@example.com",
	}))

	require.NoError(t, repo.Consume(ctx, "deadbeefdeadbeef"))

	assert.ErrorIs(t, repo.Consume(ctx, "deadbeefdeadbeef"), repository.ErrTokenNotFound)
	_, err := repo.FindEmailByToken(ctx, "deadbeefdeadbeef")
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestLoginTokenRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLoginTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	require.NoError(t, db.Create(&model.LoginTokenModel{
		Token: "aaaaaaaaaaaaaaaa", Email: "old@example.com",
		CreatedAt: time.Now().Add(-time.Hour),
	}).Error)
	require.NoError(t, repo.Create(ctx, &entity.LoginToken{
		Token: "bbbbbbbbbbbbbbbb", Email: "fresh@example.com",
	}))

	require.NoError(t, repo.DeleteExpired(ctx))

	var count int64
	require.NoError(t, db.Model(&model.LoginTokenModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSessionTokenRepository_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSessionTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	user := createTestUser(t, userRepo, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &entity.SessionToken{
		Token: "cafecafecafecafe", UserID: user.ID,
	}))

	found, err := repo.FindUserByToken(ctx, "cafecafecafecafe")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestSessionTokenRepository_RejectsOrphan(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionTokenRepository(db, testAuthConfig())

	err := repo.Create(context.Background(), &entity.SessionToken{
		Token: "cafecafecafecafe", UserID: uuid.New(),
	})
	assert.ErrorIs(t, err, repository.ErrUnknownUser)
}

func TestSessionTokenRepository_ExpiredTokenLooksMissing(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSessionTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	user := createTestUser(t, userRepo, "ada@example.com")
	require.NoError(t, db.Create(&model.SessionTokenModel{
		Token: "cafecafecafecafe", UserID: user.ID,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}).Error)

	_, err := repo.FindUserByToken(ctx, "cafecafecafecafe")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestSessionTokenRepository_DeleteByUserID(t *testing.T) {
	db := setupTestDB(t)
	userRepo := NewUserRepository(db)
	repo := NewSessionTokenRepository(db, testAuthConfig())
	ctx := context.Background()

	user := createTestUser(t, userRepo, "ada@example.com")
	require.NoError(t, repo.Create(ctx, &entity.SessionToken{Token: "aaaaaaaaaaaaaaaa", UserID: user.ID}))
	require.NoError(t, repo.Create(ctx, &entity.SessionToken{Token: "bbbbbbbbbbbbbbbb", UserID: user.ID}))

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))

	_, err := repo.FindUserByToken(ctx, "aaaaaaaaaaaaaaaa")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
	_, err = repo.FindUserByToken(ctx, "bbbbbbbbbbbbbbbb")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestEventRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := &entity.Event{
		Title:       "Album release",
		Artist:      "The Gophers",
		Description: "First show of the tour",
		StartDate:   "2030-06-01",
	}
	require.NoError(t, repo.Create(ctx, event))
	require.NotZero(t, event.ID)

	found, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Gophers", found.Artist)

	found.Title = "Album release party"
	require.NoError(t, repo.Update(ctx, found))

	updated, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Album release party", updated.Title)

	require.NoError(t, repo.Delete(ctx, event.ID))
	_, err = repo.FindByID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, event.ID), repository.ErrEventNotFound)
}

func TestEventRepository_ListFiltersPast(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Event{
		Title: "Past show", Artist: "A", StartDate: "2020-01-01",
	}))
	require.NoError(t, repo.Create(ctx, &entity.Event{
		Title: "Future show", Artist: "B", StartDate: "2030-01-01",
	}))

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	upcoming, err := repo.List(ctx, now, false)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Future show", upcoming[0].Title)

	all, err := repo.List(ctx, now, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by start date, past first.
	assert.Equal(t, "Past show", all[0].Title)
}

func TestPostRepository_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	post := &entity.Post{
		Title:  "Hello",
		Slug:   "hello",
		Author: "ada",
		Body:   "First post.",
	}
	require.NoError(t, repo.Create(ctx, post))
	require.NotZero(t, post.ID)

	found, err := repo.FindBySlug(ctx, "hello")
	require.NoError(t, err)
	assert.Equal(t, "First post.", found.Body)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrPostNotFound)
}

func TestPostRepository_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Post{
		Title: "Hello", Slug: "hello", Author: "ada", Body: "x",
	}))

	err := repo.Create(ctx, &entity.Post{
		Title: "Hello again", Slug: "hello", Author: "bob", Body: "y",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
}
