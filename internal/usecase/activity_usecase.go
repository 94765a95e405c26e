package usecase

import (
	"context"

	"board/internal/domain/entity"
)

// --- Input DTOs ---

// CreateActivityInput defines the data required to derive an activity from a
// question. Fields left empty are inherited from the question.
type CreateActivityInput struct {
	QuestionID  int64
	Title       string
	Description string
}

// CreateSubmissionInput defines the data required to submit a solution.
type CreateSubmissionInput struct {
	ActivityID int64
	Content    string
}

// --- Output DTOs ---

// ActivityOutput pairs an activity with its participant count.
type ActivityOutput struct {
	Activity     *entity.Activity
	Participants int64
}

// JoinOutput reports the result of joining an activity. Joining twice is an
// idempotent success.
type JoinOutput struct {
	AlreadyJoined bool
	Participants  int64
}

// SubmissionOutput pairs a submission with the points credited for it, zero
// for every submission after the first to the same activity.
type SubmissionOutput struct {
	Submission     *entity.Submission
	PointsAwarded  int64
	CurrentBalance int64
}

// ActivityUsecase defines the interface for activity-related business operations.
type ActivityUsecase interface {
	// Create derives a new open activity from an active question. Reviewers
	// and admins only.
	Create(ctx context.Context, caller *entity.Identity, input CreateActivityInput) (*ActivityOutput, error)

	// Get retrieves one activity with its participant count.
	Get(ctx context.Context, id int64) (*ActivityOutput, error)

	// List retrieves activities, optionally filtered by status, newest first.
	List(ctx context.Context, status entity.ActivityStatus, limit, offset int) ([]*ActivityOutput, error)

	// Join registers the caller as a participant of an open activity.
	// Joining twice reports AlreadyJoined without error.
	Join(ctx context.Context, caller *entity.Identity, activityID int64) (*JoinOutput, error)

	// Submit records a candidate solution. The caller must have joined the
	// activity; the first submission per activity credits the submission
	// bonus inside the same transaction.
	Submit(ctx context.Context, caller *entity.Identity, input CreateSubmissionInput) (*SubmissionOutput, error)

	// ListSubmissions retrieves all submissions for an activity, newest first.
	ListSubmissions(ctx context.Context, activityID int64) ([]*entity.Submission, error)

	// VoteSubmission records one vote per voter per submission. A repeat
	// vote returns AlreadyVoted without changing the count.
	VoteSubmission(ctx context.Context, caller *entity.Identity, submissionID int64) (*VoteOutput, error)

	// UpdateStatus moves an activity along its lifecycle, open to closed.
	// Reviewers and admins only.
	UpdateStatus(ctx context.Context, caller *entity.Identity, activityID int64, status entity.ActivityStatus) (*entity.Activity, error)
}
