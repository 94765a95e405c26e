package usecase

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the interface for identity profile reads: public
// profiles, the points leaderboard and an identity's own action history.
type AccountUsecase interface {
	// GetProfile retrieves one identity's public profile.
	GetProfile(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// Leaderboard retrieves identities ordered by points balance, highest
	// first.
	Leaderboard(ctx context.Context, limit, offset int) ([]*entity.Identity, error)

	// GetActions retrieves the caller's own action log, newest first,
	// optionally filtered by action type (empty means all).
	GetActions(ctx context.Context, caller *entity.Identity, actionType entity.ActionType, limit int) ([]*entity.ActionLogEntry, error)
}
