package usecase

import (
	"context"

	"board/internal/domain/entity"
)

// --- Input DTOs ---

// CreateQuestionInput defines the data required to post a question.
type CreateQuestionInput struct {
	Title            string
	Topic            string
	Description      string
	Requirements     string // JSON-encoded list of requirement strings.
	ValueExpectation string
	Difficulty       entity.Difficulty
}

// --- Output DTOs ---

// QuestionOutput pairs a question with its derived heat score.
type QuestionOutput struct {
	Question *entity.Question
	Heat     int64
}

// VoteOutput reports the result of a vote. AlreadyVoted distinguishes the
// idempotent repeat from a first vote; both are successes.
type VoteOutput struct {
	AlreadyVoted bool
	VoteCount    int64
}

// QuestionUsecase defines the interface for question-related business operations.
type QuestionUsecase interface {
	// Create posts a new question: quota check, insert and points charge run
	// in one transaction. The fourth attempt within a UTC day fails with
	// ErrRateLimited carrying the current count and cap.
	Create(ctx context.Context, caller *entity.Identity, input CreateQuestionInput) (*QuestionOutput, error)

	// Get retrieves one question, bumping its view counter.
	Get(ctx context.Context, id int64) (*QuestionOutput, error)

	// List retrieves questions, optionally filtered by status, ordered by
	// heat, hottest first.
	List(ctx context.Context, status entity.QuestionStatus, limit, offset int) ([]*QuestionOutput, error)

	// Vote records one vote per voter per question. A repeat vote returns
	// AlreadyVoted without changing the count.
	Vote(ctx context.Context, caller *entity.Identity, questionID int64) (*VoteOutput, error)

	// UpdateStatus moves a question along its lifecycle. Only reviewers and
	// admins may call it; transitions are strictly pending to active to
	// solved.
	UpdateStatus(ctx context.Context, caller *entity.Identity, questionID int64, status entity.QuestionStatus) (*entity.Question, error)
}
