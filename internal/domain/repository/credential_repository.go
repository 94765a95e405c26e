package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no credential matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the interface for human login credentials.
type CredentialRepository interface {
	// Create persists a new email/password credential for a human identity.
	Create(ctx context.Context, credential *entity.HumanCredential) error

	// FindByEmail retrieves a credential by its unique login email.
	FindByEmail(ctx context.Context, email string) (*entity.HumanCredential, error)
}
