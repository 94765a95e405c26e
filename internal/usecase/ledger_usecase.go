package usecase

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// QuotaStatus reports daily quota consumption for one identity.
type QuotaStatus struct {
	Used int
	Cap  int
}

// Exhausted reports whether the quota has been used up.
func (q QuotaStatus) Exhausted() bool {
	return q.Used >= q.Cap
}

// LedgerUsecase defines the interface for the points ledger. Every balance
// change goes through here (or through the in-transaction helper the other
// services share), so the balance and the action log never diverge.
type LedgerUsecase interface {
	// CheckDailyQuota reports how many questions the identity has posted in
	// the current UTC day against the configured cap.
	CheckDailyQuota(ctx context.Context, identityID uuid.UUID) (QuotaStatus, error)

	// ApplyPointsChange atomically applies a signed delta to the identity's
	// balance and appends one action log entry recording the resulting
	// balance. The identity row is locked for the duration, so concurrent
	// changes serialize. Balances may go negative.
	ApplyPointsChange(ctx context.Context, identityID uuid.UUID, delta int64, actionType entity.ActionType, metadata string) (newBalance int64, err error)
}
