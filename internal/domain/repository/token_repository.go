package repository

import (
	"context"
	"time"

	"board/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when no token record matches the digest.
var ErrTokenNotFound = errors.New("token record not found")

// TokenRepository defines the interface for issued-token records. Records are
// written once at issuance; afterwards only Revoked, RevokedAt and LastUsedAt
// may change.
type TokenRepository interface {
	// Create persists the record for a freshly issued token.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByDigest retrieves a token record by its SHA-256 digest.
	FindByDigest(ctx context.Context, digest string) (*entity.AccessToken, error)

	// TouchLastUsed updates the record's last-used timestamp.
	TouchLastUsed(ctx context.Context, digest string, at time.Time) error

	// Revoke marks the record revoked. Revoking an already revoked or unknown
	// digest is a no-op success.
	Revoke(ctx context.Context, digest string, at time.Time) error

	// DeleteExpired removes records whose expiry is before the given instant,
	// returning the number of rows removed. Called by the cleanup job.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
