package postgres

import (
	"context"
	"time"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// actionLogRepository implements the domain.ActionLogRepository interface using GORM.
// The table is append-only; no update or delete statements exist here.
type actionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository is the constructor for actionLogRepository.
func NewActionLogRepository(db *gorm.DB) repository.ActionLogRepository {
	return &actionLogRepository{db: db}
}

// Append persists one new log entry.
func (repo *actionLogRepository) Append(ctx context.Context, entry *entity.ActionLogEntry) error {
	metadata := entry.Metadata
	if metadata == "" {
		metadata = "{}"
	}

	entryM := &model.ActionLogModel{
		EntityID:     entry.EntityID,
		EntityType:   entry.EntityType.String(),
		ActionType:   entry.ActionType.String(),
		Metadata:     metadata,
		PointsChange: entry.PointsChange,
		PointsAfter:  entry.PointsAfter,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append action log entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// utcDayWindow returns the half-open range [start, end) of the UTC calendar
// day containing t. Quotas and the login bonus reset at this boundary
// regardless of the server's local timezone.
func utcDayWindow(t time.Time) (start, end time.Time) {
	day := t.UTC()
	start = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	return start, start.Add(24 * time.Hour)
}

// CountForDay counts entries of one action type by one identity within the
// UTC calendar day containing `day`.
func (repo *actionLogRepository) CountForDay(ctx context.Context, entityID uuid.UUID, actionType entity.ActionType, day time.Time) (int, error) {
	start, end := utcDayWindow(day)

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ActionLogModel{}).
		Where("entity_id = ? AND action_type = ? AND created_at >= ? AND created_at < ?",
			entityID, actionType.String(), start, end).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count action log entries")
	}

	return int(count), nil
}

// List retrieves entries for one identity, newest first.
func (repo *actionLogRepository) List(ctx context.Context, entityID uuid.UUID, actionType entity.ActionType, limit int) ([]*entity.ActionLogEntry, error) {
	query := repo.db.WithContext(ctx).
		Where("entity_id = ?", entityID)
	if actionType != "" {
		query = query.Where("action_type = ?", actionType.String())
	}

	var models []*model.ActionLogModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list action log entries")
	}

	entries := make([]*entity.ActionLogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, &entity.ActionLogEntry{
			ID:           m.ID,
			EntityID:     m.EntityID,
			EntityType:   entity.Kind(m.EntityType),
			ActionType:   entity.ActionType(m.ActionType),
			Metadata:     m.Metadata,
			PointsChange: m.PointsChange,
			PointsAfter:  m.PointsAfter,
			CreatedAt:    m.CreatedAt,
		})
	}

	return entries, nil
}
