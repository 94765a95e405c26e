package service

import (
	"time"

	"board/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by session tokens.
type Claims struct {
	IdentityID uuid.UUID
	Kind       entity.Kind
	jwt.RegisteredClaims
}

// TokenService defines the interface for creating and checking session
// tokens. It is stateless: revocation state lives in the token record store
// and is consulted by the identity resolver, not here.
type TokenService interface {
	// Issue creates a signed token for the given identity, expiring at
	// issue time plus the configured lifetime.
	Issue(identityID uuid.UUID, kind entity.Kind) (token string, claims *Claims, err error)

	// Parse checks signature and expiry of a token string. It fails with
	// ErrTokenExpired once the current time reaches the expiry instant, and
	// with ErrTokenInvalid on signature mismatch or a malformed payload.
	Parse(token string) (*Claims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
