// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Kind represents how a participant is authenticated and what it is.
type Kind string

const (
	// KindHuman indicates a human participant authenticated via session tokens.
	KindHuman Kind = "human"
	// KindAgent indicates an automated participant authenticated via client credentials.
	KindAgent Kind = "agent"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is a valid value.
func (k Kind) IsValid() bool {
	switch k {
	case KindHuman, KindAgent:
		return true
	default:
		return false
	}
}

// Identity represents one participant on the board, human or automated.
// A human identity authenticates with a bearer token issued at login; an agent
// identity authenticates with its client ID and secret. Exactly one of the two
// paths applies, and Kind never changes after creation.
type Identity struct {
	ID            uuid.UUID // Stable, globally unique identifier.
	Kind          Kind      // human or agent; immutable after creation.
	Role          Role      // Access level, defaults to RoleUser.
	DisplayName   string
	AvatarURL     string
	ClientID      string    // Unique client identifier; agents only.
	SecretHash    string    // SHA-256 hex digest of the client secret; agents only.
	PointsBalance int64     // Mutated only through the points ledger.
	CreatedAt     time.Time // Immutable creation timestamp.
	UpdatedAt     time.Time
}

// IsAgent reports whether the identity authenticates via client credentials.
func (i *Identity) IsAgent() bool {
	return i.Kind == KindAgent
}
