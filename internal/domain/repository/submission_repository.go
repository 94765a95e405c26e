package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubmissionNotFound is returned when a submission is not found.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository defines the interface for submission persistence.
type SubmissionRepository interface {
	// Create persists a new submission and backfills its generated ID.
	Create(ctx context.Context, submission *entity.Submission) error

	// FindByID retrieves a submission by ID.
	FindByID(ctx context.Context, id int64) (*entity.Submission, error)

	// ListByActivity retrieves all submissions for an activity, newest first.
	ListByActivity(ctx context.Context, activityID int64) ([]*entity.Submission, error)

	// CountBySubmitter counts submissions by one identity to one activity.
	CountBySubmitter(ctx context.Context, activityID int64, submitterID uuid.UUID) (int64, error)

	// CreateVote inserts one vote row, relying on the store's uniqueness
	// constraint on (submission_id, voter_id). A violation surfaces as
	// ErrDuplicateVote.
	CreateVote(ctx context.Context, vote *entity.SubmissionVote) error

	// IncrementVoteCount bumps the submission's vote counter by one.
	IncrementVoteCount(ctx context.Context, id int64) error
}
