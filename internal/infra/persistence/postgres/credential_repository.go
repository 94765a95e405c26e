package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// credentialRepository implements the domain.CredentialRepository interface using GORM.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a new email/password credential.
func (repo *credentialRepository) Create(ctx context.Context, credential *entity.HumanCredential) error {
	credentialM := &model.HumanCredentialModel{
		ID:           credential.ID,
		IdentityID:   credential.IdentityID,
		Email:        credential.Email,
		PasswordHash: credential.PasswordHash,
	}

	if err := repo.db.WithContext(ctx).Create(credentialM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentityExists.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	credential.ID = credentialM.ID
	credential.CreatedAt = credentialM.CreatedAt

	return nil
}

// FindByEmail retrieves a credential by its unique login email.
func (repo *credentialRepository) FindByEmail(ctx context.Context, email string) (*entity.HumanCredential, error) {
	var credentialM model.HumanCredentialModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&credentialM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find credential by email")
	}

	return &entity.HumanCredential{
		ID:           credentialM.ID,
		IdentityID:   credentialM.IdentityID,
		Email:        credentialM.Email,
		PasswordHash: credentialM.PasswordHash,
		CreatedAt:    credentialM.CreatedAt,
	}, nil
}
