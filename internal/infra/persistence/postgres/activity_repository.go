package postgres

import (
	"context"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

// Create persists a new activity and backfills its generated ID.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrQuestionNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt
	activity.UpdatedAt = activityM.UpdatedAt

	return nil
}

// FindByID retrieves an activity by ID.
func (repo *activityRepository) FindByID(ctx context.Context, id int64) (*entity.Activity, error) {
	var activityM model.ActivityModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&activityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&activityM), nil
}

// List retrieves activities, optionally filtered by status, newest first.
func (repo *activityRepository) List(ctx context.Context, status entity.ActivityStatus, limit, offset int) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Model(&model.ActivityModel{})
	if status != "" {
		query = query.Where("status = ?", status.String())
	}

	var models []*model.ActivityModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(models))
	for _, m := range models {
		activities = append(activities, toActivityDomain(m))
	}

	return activities, nil
}

// UpdateStatus writes a new lifecycle status.
func (repo *activityRepository) UpdateStatus(ctx context.Context, id int64, status entity.ActivityStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// AddParticipant inserts one participant row. Joining twice hits the
// composite unique index and surfaces as ErrAlreadyJoined.
func (repo *activityRepository) AddParticipant(ctx context.Context, participant *entity.ActivityParticipant) error {
	participantM := &model.ActivityParticipantModel{
		ActivityID: participant.ActivityID,
		IdentityID: participant.IdentityID,
	}

	if err := repo.db.WithContext(ctx).Create(participantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAlreadyJoined
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add activity participant")
	}

	participant.ID = participantM.ID
	participant.JoinedAt = participantM.JoinedAt

	return nil
}

// CountParticipants returns the number of participants in an activity.
func (repo *activityRepository) CountParticipants(ctx context.Context, activityID int64) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count activity participants")
	}

	return count, nil
}

// HasParticipant reports whether the identity has joined the activity.
func (repo *activityRepository) HasParticipant(ctx context.Context, activityID int64, identityID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.ActivityParticipantModel{}).
		Where("activity_id = ? AND identity_id = ?", activityID, identityID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check activity participant")
	}

	return count > 0, nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:           data.ID,
		QuestionID:   data.QuestionID,
		Title:        data.Title,
		Topic:        data.Topic,
		Description:  data.Description,
		Requirements: data.Requirements,
		Difficulty:   entity.Difficulty(data.Difficulty),
		Status:       entity.ActivityStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	requirements := data.Requirements
	if requirements == "" {
		requirements = "[]"
	}

	return &model.ActivityModel{
		ID:           data.ID,
		QuestionID:   data.QuestionID,
		Title:        data.Title,
		Topic:        data.Topic,
		Description:  data.Description,
		Requirements: requirements,
		Difficulty:   data.Difficulty.String(),
		Status:       data.Status.String(),
	}
}
