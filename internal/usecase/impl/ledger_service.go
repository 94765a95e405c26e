// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	txManager     repository.TransactionManager
	actionLogRepo repository.ActionLogRepository
	quota         *config.QuotaConfig
	logger        *slog.Logger
}

// LedgerServiceParams holds dependencies for ledgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ActionLogRepo repository.ActionLogRepository
	Config        *config.Config
	Logger        *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:     params.TxManager,
		actionLogRepo: params.ActionLogRepo,
		quota:         params.Config.Quota,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CheckDailyQuota reports today's question-posting count against the cap.
// The day boundary is UTC regardless of server timezone.
func (srv *ledgerService) CheckDailyQuota(ctx context.Context, identityID uuid.UUID) (usecase.QuotaStatus, error) {
	used, err := srv.actionLogRepo.CountForDay(ctx, identityID, entity.ActionPostQuestion, time.Now().UTC())
	if err != nil {
		return usecase.QuotaStatus{}, errors.Wrap(err, "failed to count daily question quota")
	}

	return usecase.QuotaStatus{Used: used, Cap: srv.quota.MaxQuestionsPerDay}, nil
}

// ApplyPointsChange applies the delta inside its own transaction. A failure
// that looks transient (a database execution error rather than a business
// rule) is retried once before being surfaced as ErrUnavailable.
func (srv *ledgerService) ApplyPointsChange(ctx context.Context, identityID uuid.UUID, delta int64, actionType entity.ActionType, metadata string) (int64, error) {
	var newBalance int64
	run := func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			balance, err := applyPointsChange(ctx, repoFactory, identityID, delta, actionType, metadata)
			if err != nil {
				return err
			}
			newBalance = balance

			return nil
		})
	}

	err := run()
	if err != nil && isTransientStoreError(err) {
		srv.log(ctx).Warn("Retrying points change after transient store failure",
			slog.Any("identityID", identityID), slog.String("actionType", actionType.String()), slog.Any("error", err))
		err = run()
	}
	if err != nil {
		if isTransientStoreError(err) {
			return 0, domainerrors.ErrUnavailable.WrapMessage("points ledger temporarily unavailable")
		}

		return 0, err
	}

	srv.log(ctx).Debug("Points change applied",
		slog.Any("identityID", identityID), slog.Int64("delta", delta),
		slog.String("actionType", actionType.String()), slog.Int64("newBalance", newBalance))

	return newBalance, nil
}

// applyPointsChange is the shared in-transaction ledger step. It locks the
// identity row, writes the new balance and appends exactly one action log
// entry whose points_after equals the written balance. Callers that need the
// change to be atomic with other writes run it inside their own Execute
// callback.
func applyPointsChange(ctx context.Context, repoFactory repository.RepositoryFactory, identityID uuid.UUID, delta int64, actionType entity.ActionType, metadata string) (int64, error) {
	identity, err := repoFactory.IdentityRepo().FindByIDForUpdate(ctx, identityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return 0, domainerrors.ErrIdentityNotFound
		}

		return 0, errors.Wrap(err, "failed to lock identity for points change")
	}

	return applyPointsToLocked(ctx, repoFactory, identity, delta, actionType, metadata)
}

// applyPointsToLocked performs the balance write and log append for an
// identity whose row the caller already holds locked in this transaction.
func applyPointsToLocked(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity, delta int64, actionType entity.ActionType, metadata string) (int64, error) {
	newBalance := identity.PointsBalance + delta
	if err := repoFactory.IdentityRepo().UpdatePointsBalance(ctx, identity.ID, newBalance); err != nil {
		return 0, errors.Wrap(err, "failed to write points balance")
	}

	entry := &entity.ActionLogEntry{
		EntityID:     identity.ID,
		EntityType:   identity.Kind,
		ActionType:   actionType,
		Metadata:     metadata,
		PointsChange: delta,
		PointsAfter:  newBalance,
	}
	if err := repoFactory.ActionLogRepo().Append(ctx, entry); err != nil {
		return 0, errors.Wrap(err, "failed to append ledger entry")
	}

	identity.PointsBalance = newBalance

	return newBalance, nil
}

// recordAction appends a zero-delta log entry without touching the balance,
// for auditable actions that carry no points (votes, downloads). The balance
// is re-read inside the transaction so points_after stays truthful.
func recordAction(ctx context.Context, repoFactory repository.RepositoryFactory, identity *entity.Identity, actionType entity.ActionType, metadata string) error {
	balance := identity.PointsBalance
	if fresh, err := repoFactory.IdentityRepo().FindByID(ctx, identity.ID); err == nil {
		balance = fresh.PointsBalance
	}

	entry := &entity.ActionLogEntry{
		EntityID:     identity.ID,
		EntityType:   identity.Kind,
		ActionType:   actionType,
		Metadata:     metadata,
		PointsChange: 0,
		PointsAfter:  balance,
	}

	return repoFactory.ActionLogRepo().Append(ctx, entry)
}

// isTransientStoreError distinguishes infrastructure failures, which are
// worth one retry, from business errors, which are not.
func isTransientStoreError(err error) bool {
	var dbErr *domainerrors.DatabaseExecuteError

	return errors.As(err, &dbErr)
}
