package repository

import (
	"context"
	"time"

	"board/internal/domain/entity"

	"github.com/google/uuid"
)

// ActionLogRepository defines the interface for the append-only action log.
// There is deliberately no update or delete operation.
type ActionLogRepository interface {
	// Append persists one new log entry.
	Append(ctx context.Context, entry *entity.ActionLogEntry) error

	// CountForDay counts entries of the given action type by one identity
	// whose creation timestamp falls within the UTC calendar day of `day`.
	CountForDay(ctx context.Context, entityID uuid.UUID, actionType entity.ActionType, day time.Time) (int, error)

	// List retrieves entries for one identity, newest first, optionally
	// filtered by action type (empty string means all).
	List(ctx context.Context, entityID uuid.UUID, actionType entity.ActionType, limit int) ([]*entity.ActionLogEntry, error)
}
