package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken represents one issued session token, stored by digest so the
// raw token never touches the database. Besides creation, only Revoked,
// RevokedAt and LastUsedAt may ever change on a record.
type AccessToken struct {
	ID          uuid.UUID
	TokenDigest string    // SHA-256 hex digest of the raw token string.
	IdentityID  uuid.UUID // Subject of the token.
	Kind        Kind      // Kind of the subject at issuance time.
	ExpiresAt   time.Time // Hard expiry; verification fails closed at or after this instant.
	Revoked     bool
	RevokedAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
}

// Expired reports whether the token is past its expiry at the given instant.
func (t *AccessToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// Usable reports whether the token may still authenticate a request.
func (t *AccessToken) Usable(now time.Time) bool {
	return !t.Revoked && !t.Expired(now)
}
