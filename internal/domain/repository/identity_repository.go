// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when an identity is not found.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrDuplicateClientID is returned when a client ID is already taken.
	ErrDuplicateClientID = errors.New("client id already exists")
)

// IdentityRepository defines the interface for identity persistence.
// Balance writes go through UpdatePointsBalance only; callers that need
// check-then-act semantics take the row lock via FindByIDForUpdate first.
type IdentityRepository interface {
	// Create persists a new identity.
	Create(ctx context.Context, identity *entity.Identity) error

	// FindByID retrieves an identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByIDForUpdate retrieves an identity by ID while holding a row-level
	// write lock for the remainder of the surrounding transaction. This is the
	// serialization point for quota checks and balance changes per identity.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByClientCredentials retrieves an agent identity whose client ID and
	// secret digest both match. A miss on either field returns
	// ErrIdentityNotFound without disclosing which one failed.
	FindByClientCredentials(ctx context.Context, clientID, secretHash string) (*entity.Identity, error)

	// UpdatePointsBalance writes a new points balance for the identity.
	UpdatePointsBalance(ctx context.Context, id uuid.UUID, balance int64) error

	// List retrieves identities ordered by points balance, highest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Identity, error)
}
