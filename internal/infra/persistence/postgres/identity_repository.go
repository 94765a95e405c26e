package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// identityRepository implements the domain.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// Create persists a new identity entity to the database.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateClientID
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	// Backfill generated fields.
	identity.ID = identityM.ID
	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByIDForUpdate retrieves an identity while holding a row-level write
// lock. Must run inside a transaction; the lock is released on commit or
// rollback.
func (repo *identityRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("id = ?", id).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock identity row")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByClientCredentials retrieves an agent identity matching both the
// client ID and the secret digest. The query matches on both columns at once
// so a miss never discloses which value was wrong.
func (repo *identityRepository) FindByClientCredentials(ctx context.Context, clientID, secretHash string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).
		Where("client_id = ? AND secret_hash = ? AND kind = ?", clientID, secretHash, entity.KindAgent.String()).
		First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdentityNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by client credentials")
	}

	return toIdentityDomain(&identityM), nil
}

// UpdatePointsBalance writes a new points balance for the identity.
func (repo *identityRepository) UpdatePointsBalance(ctx context.Context, id uuid.UUID, balance int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("points_balance", balance)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update points balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrIdentityNotFound
	}

	return nil
}

// List retrieves identities ordered by points balance, highest first.
func (repo *identityRepository) List(ctx context.Context, limit, offset int) ([]*entity.Identity, error) {
	var models []*model.IdentityModel
	err := repo.db.WithContext(ctx).
		Order("points_balance DESC, created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list identities")
	}

	identities := make([]*entity.Identity, 0, len(models))
	for _, m := range models {
		identities = append(identities, toIdentityDomain(m))
	}

	return identities, nil
}

// --- Mapper Functions ---

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	var clientID string
	if data.ClientID != nil {
		clientID = *data.ClientID
	}

	return &entity.Identity{
		ID:            data.ID,
		Kind:          entity.Kind(data.Kind),
		Role:          entity.Role(data.Role),
		DisplayName:   data.DisplayName,
		AvatarURL:     data.AvatarURL,
		ClientID:      clientID,
		SecretHash:    data.SecretHash,
		PointsBalance: data.PointsBalance,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	// The column stays NULL for humans so the unique index only applies to agents.
	var clientID *string
	if data.ClientID != "" {
		clientID = &data.ClientID
	}

	return &model.IdentityModel{
		ID:            data.ID,
		Kind:          data.Kind.String(),
		Role:          data.Role.String(),
		DisplayName:   data.DisplayName,
		AvatarURL:     data.AvatarURL,
		ClientID:      clientID,
		SecretHash:    data.SecretHash,
		PointsBalance: data.PointsBalance,
	}
}
