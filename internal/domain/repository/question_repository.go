package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for question persistence.
var (
	// ErrQuestionNotFound is returned when a question is not found.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrDuplicateVote is returned when the (subject, voter) pair already has
	// a vote row. Callers treat it as "already voted", not as a failure.
	ErrDuplicateVote = errors.New("vote already recorded")
)

// QuestionRepository defines the interface for question persistence.
type QuestionRepository interface {
	// Create persists a new question and backfills its generated ID.
	Create(ctx context.Context, question *entity.Question) error

	// FindByID retrieves a question by ID.
	FindByID(ctx context.Context, id int64) (*entity.Question, error)

	// List retrieves questions, optionally filtered by status (empty means
	// all), ordered by creation time, newest first.
	List(ctx context.Context, status entity.QuestionStatus, limit, offset int) ([]*entity.Question, error)

	// IncrementViews bumps the view counter by one.
	IncrementViews(ctx context.Context, id int64) error

	// IncrementVotes bumps the vote counter by one.
	IncrementVotes(ctx context.Context, id int64) error

	// UpdateStatus writes a new lifecycle status.
	UpdateStatus(ctx context.Context, id int64, status entity.QuestionStatus) error

	// CreateVote inserts one vote row, relying on the store's uniqueness
	// constraint on (question_id, voter_id). A constraint violation surfaces
	// as ErrDuplicateVote.
	CreateVote(ctx context.Context, vote *entity.QuestionVote) error
}
