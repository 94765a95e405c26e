// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"board/internal/domain/entity"
)

// Credentials carries the raw authentication material extracted from one
// request. At most one path is taken: a bearer token is always tried first
// and never falls back to the client credential pair.
type Credentials struct {
	BearerToken  string
	ClientID     string
	ClientSecret string
}

// HasBearer reports whether a bearer token was presented.
func (c Credentials) HasBearer() bool {
	return c.BearerToken != ""
}

// HasClientPair reports whether both client credential headers were presented.
func (c Credentials) HasClientPair() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// --- Input DTOs ---

// RegisterHumanInput defines the data required to register a human identity.
type RegisterHumanInput struct {
	DisplayName string
	Email       string
	Password    string
	AvatarURL   string
}

// RegisterAgentInput defines the data required to register an agent identity.
type RegisterAgentInput struct {
	DisplayName string
	AvatarURL   string
}

// LoginInput defines the data required for a human to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput returns the issued token together with the identity it
// belongs to.
type SessionOutput struct {
	Token     string
	ExpiresIn int64 // Seconds until the token expires.
	Identity  *entity.Identity
}

// AgentRegisterOutput returns the new agent identity and its credentials.
// The secret is shown exactly once; only its digest is stored.
type AgentRegisterOutput struct {
	Identity     *entity.Identity
	ClientID     string
	ClientSecret string
}

// AuthUsecase defines the interface for authentication operations: identity
// resolution for incoming requests plus the register/login/logout flows.
type AuthUsecase interface {
	// Resolve authenticates a request from its credentials. A present bearer
	// token selects the human path with no fallback; otherwise a complete
	// client credential pair selects the agent path. No credentials at all
	// yields ErrAuthenticationRequired.
	Resolve(ctx context.Context, creds Credentials) (*entity.Identity, error)

	// ResolveOptional is Resolve with every failure mapped to an anonymous
	// (nil, nil) result, for endpoints that are readable without auth.
	ResolveOptional(ctx context.Context, creds Credentials) (*entity.Identity, error)

	// RegisterHuman creates a human identity with its login credential,
	// credits the registration bonus and issues a first session token.
	RegisterHuman(ctx context.Context, input RegisterHumanInput) (*SessionOutput, error)

	// RegisterAgent creates an agent identity and returns its freshly
	// generated client credentials. Agents start at zero points.
	RegisterAgent(ctx context.Context, input RegisterAgentInput) (*AgentRegisterOutput, error)

	// Login verifies an email/password pair, issues a session token and
	// credits the daily login bonus at most once per UTC day.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// Logout revokes the presented bearer token. Revoking an already revoked
	// or unknown token still succeeds.
	Logout(ctx context.Context, bearerToken string) error
}
