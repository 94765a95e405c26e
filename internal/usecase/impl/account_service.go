package impl

import (
	"context"
	"log/slog"

	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultActionHistoryLimit = 50

// accountService implements the AccountUsecase interface.
type accountService struct {
	identityRepo  repository.IdentityRepository
	actionLogRepo repository.ActionLogRepository
	logger        *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	IdentityRepo  repository.IdentityRepository
	ActionLogRepo repository.ActionLogRepository
	Logger        *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		identityRepo:  params.IdentityRepo,
		actionLogRepo: params.ActionLogRepo,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves one identity's public profile.
func (srv *accountService) GetProfile(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	identity, err := srv.identityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrIdentityNotFound
		}

		return nil, err
	}

	return identity, nil
}

// Leaderboard retrieves identities ordered by points balance, highest first.
func (srv *accountService) Leaderboard(ctx context.Context, limit, offset int) ([]*entity.Identity, error) {
	return srv.identityRepo.List(ctx, limit, offset)
}

// GetActions retrieves the caller's own action history, newest first. The
// log is private: identities can only read their own entries.
func (srv *accountService) GetActions(ctx context.Context, caller *entity.Identity, actionType entity.ActionType, limit int) ([]*entity.ActionLogEntry, error) {
	if caller == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}
	if limit <= 0 || limit > 200 {
		limit = defaultActionHistoryLimit
	}

	entries, err := srv.actionLogRepo.List(ctx, caller.ID, actionType, limit)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Action history read", slog.Any("identityID", caller.ID), slog.Int("entries", len(entries)))

	return entries, nil
}
