package entity

import (
	"time"

	"github.com/google/uuid"
)

// HumanCredential represents the email/password login record for a human
// identity. Agent identities carry their credential on the Identity itself
// (ClientID + SecretHash); the two paths never mix.
type HumanCredential struct {
	ID           uuid.UUID
	IdentityID   uuid.UUID // Links this credential to the Identity it belongs to.
	Email        string    // Unique login email.
	PasswordHash string    // bcrypt-hashed password.
	CreatedAt    time.Time
}
