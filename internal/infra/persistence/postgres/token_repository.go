package postgres

import (
	"context"
	"time"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists the record for a freshly issued token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.AccessToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create token record")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByDigest retrieves a token record by its SHA-256 digest.
func (repo *tokenRepository) FindByDigest(ctx context.Context, digest string) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel
	err := repo.db.WithContext(ctx).
		Where("token_digest = ?", digest).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find token by digest")
	}

	return toTokenDomain(&tokenM), nil
}

// TouchLastUsed updates the record's last-used timestamp.
func (repo *tokenRepository) TouchLastUsed(ctx context.Context, digest string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccessTokenModel{}).
		Where("token_digest = ?", digest).
		Update("last_used_at", at).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to touch token last used")
	}

	return nil
}

// Revoke marks the record revoked. Revoking a digest that is unknown or
// already revoked affects zero rows, which is still a success.
func (repo *tokenRepository) Revoke(ctx context.Context, digest string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AccessTokenModel{}).
		Where("token_digest = ? AND revoked = ?", digest, false).
		Updates(map[string]any{
			"revoked":    true,
			"revoked_at": at,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to revoke token")
	}

	return nil
}

// DeleteExpired removes records whose expiry is before the given instant.
func (repo *tokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", before).
		Delete(&model.AccessTokenModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired tokens")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		ID:          data.ID,
		TokenDigest: data.TokenDigest,
		IdentityID:  data.IdentityID,
		Kind:        entity.Kind(data.Kind),
		ExpiresAt:   data.ExpiresAt,
		Revoked:     data.Revoked,
		RevokedAt:   data.RevokedAt,
		LastUsedAt:  data.LastUsedAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromTokenDomain(data *entity.AccessToken) *model.AccessTokenModel {
	if data == nil {
		return nil
	}

	return &model.AccessTokenModel{
		ID:          data.ID,
		TokenDigest: data.TokenDigest,
		IdentityID:  data.IdentityID,
		Kind:        data.Kind.String(),
		ExpiresAt:   data.ExpiresAt,
		Revoked:     data.Revoked,
		RevokedAt:   data.RevokedAt,
		LastUsedAt:  data.LastUsedAt,
	}
}
