package postgres

import (
	"context"
	"time"

	"wlsd/config"
	"wlsd/internal/domain/entity"
	"wlsd/internal/domain/repository"
	"wlsd/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loginTokenRepository implements the repository.LoginTokenRepository interface.
type loginTokenRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewLoginTokenRepository is the constructor for loginTokenRepository.
func NewLoginTokenRepository(db *gorm.DB, cfg *config.Config) repository.LoginTokenRepository {
	return &loginTokenRepository{
		db:  db,
		ttl: cfg.Auth.LoginTokenTTL,
	}
}

// Create persists a freshly issued login token.
func (repo *loginTokenRepository) Create(ctx context.Context, token *entity.LoginToken) error {
	tokenM := &model.LoginTokenModel{
		Token: token.Token,
		Email: normalizeEmail(token.Email),
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// The generator produced a value already in the table. Retryable.
			return repository.ErrTokenCollision
		}

		return errors.Wrap(err, "failed to create login token")
	}

	token.Email = tokenM.Email
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindUserByToken resolves a live login token to the account owning its bound
// email. An unknown token, an expired token and a token whose email has no
// account all come back as ErrUserNotFound.
func (repo *loginTokenRepository) FindUserByToken(ctx context.Context, token string) (*entity.User, error) {
	tokenM, err := repo.findLive(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, err
	}

	var userM model.UserModel
	err = repo.db.WithContext(ctx).
		Where("email = ?", tokenM.Email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by login token")
	}

	return toUserDomain(&userM), nil
}

// FindEmailByToken resolves a live login token to its bound email regardless
// of whether an account exists.
func (repo *loginTokenRepository) FindEmailByToken(ctx context.Context, token string) (string, error) {
	tokenM, err := repo.findLive(ctx, token)
	if err != nil {
		return "", err
	}

	return tokenM.Email, nil
}

// Consume deletes a login token after successful promotion.
func (repo *loginTokenRepository) Consume(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.LoginTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume login token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteExpired removes login tokens past their time-to-live.
func (repo *loginTokenRepository) DeleteExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-repo.ttl)

	if err := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.LoginTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired login tokens")
	}

	return nil
}

// findLive loads a token row and applies the expiry check. Expired rows are
// reported exactly like missing ones.
func (repo *loginTokenRepository) findLive(ctx context.Context, token string) (*model.LoginTokenModel, error) {
	var tokenM model.LoginTokenModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find login token")
	}

	if time.Now().After(tokenM.CreatedAt.Add(repo.ttl)) {
		return nil, repository.ErrTokenNotFound
	}

	return &tokenM, nil
}

// sessionTokenRepository implements the repository.SessionTokenRepository interface.
type sessionTokenRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSessionTokenRepository is the constructor for sessionTokenRepository.
func NewSessionTokenRepository(db *gorm.DB, cfg *config.Config) repository.SessionTokenRepository {
	return &sessionTokenRepository{
		db:  db,
		ttl: cfg.Auth.SessionTokenTTL,
	}
}

// Create persists a freshly issued session token. The foreign key on user_id
// keeps orphaned sessions out: an insert for a missing user fails here rather
// than corrupting the relation.
func (repo *sessionTokenRepository) Create(ctx context.Context, token *entity.SessionToken) error {
	tokenM := &model.SessionTokenModel{
		Token:  token.Token,
		UserID: token.UserID,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUnknownUser
		}
		if isUniqueConstraintViolation(err) {
			return repository.ErrTokenCollision
		}

		return errors.Wrap(err, "failed to create session token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindUserByToken resolves a live session token to its user.
func (repo *sessionTokenRepository) FindUserByToken(ctx context.Context, token string) (*entity.User, error) {
	var tokenM model.SessionTokenModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find session token")
	}

	if time.Now().After(tokenM.CreatedAt.Add(repo.ttl)) {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	err = repo.db.WithContext(ctx).
		Where("id = ?", tokenM.UserID).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// FK integrity should make this unreachable.
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by session token")
	}

	return toUserDomain(&userM), nil
}

// DeleteByToken revokes a single session.
func (repo *sessionTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.SessionTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteByUserID revokes every session of a user.
func (repo *sessionTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.SessionTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session tokens by user")
	}

	return nil
}

// DeleteExpired removes session tokens past their time-to-live.
func (repo *sessionTokenRepository) DeleteExpired(ctx context.Context) error {
	cutoff := time.Now().Add(-repo.ttl)

	if err := repo.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.SessionTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired session tokens")
	}

	return nil
}
