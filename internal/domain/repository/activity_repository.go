package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for activity persistence.
var (
	// ErrActivityNotFound is returned when an activity is not found.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyJoined is returned when the identity already participates in
	// the activity. Callers treat it as an idempotent success.
	ErrAlreadyJoined = errors.New("already joined activity")
)

// ActivityRepository defines the interface for activity persistence.
type ActivityRepository interface {
	// Create persists a new activity and backfills its generated ID.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves an activity by ID.
	FindByID(ctx context.Context, id int64) (*entity.Activity, error)

	// List retrieves activities, optionally filtered by status (empty means
	// all), ordered by creation time, newest first.
	List(ctx context.Context, status entity.ActivityStatus, limit, offset int) ([]*entity.Activity, error)

	// UpdateStatus writes a new lifecycle status.
	UpdateStatus(ctx context.Context, id int64, status entity.ActivityStatus) error

	// AddParticipant inserts one participant row, relying on the store's
	// uniqueness constraint on (activity_id, identity_id). A violation
	// surfaces as ErrAlreadyJoined.
	AddParticipant(ctx context.Context, participant *entity.ActivityParticipant) error

	// CountParticipants returns the number of participants in an activity.
	CountParticipants(ctx context.Context, activityID int64) (int64, error)

	// HasParticipant reports whether the identity has joined the activity.
	HasParticipant(ctx context.Context, activityID int64, identityID uuid.UUID) (bool, error)
}
