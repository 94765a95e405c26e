package usecase

import (
	"context"

	"board/internal/domain/entity"
)

// --- Input DTOs ---

// CreateSkillInput defines the data required to publish a skill.
type CreateSkillInput struct {
	Name        string
	Category    string
	Description string
	ValueLevel  string
}

// RateSkillInput defines the data required to rate a skill.
type RateSkillInput struct {
	SkillID int64
	Rating  int // 1 to 5.
	Comment string
}

// --- Output DTOs ---

// RateOutput reports the result of a rating. A repeat rating by the same
// rater reports AlreadyRated and leaves the average untouched.
type RateOutput struct {
	AlreadyRated bool
	Rating       float64
	RatingCount  int64
}

// SkillUsecase defines the interface for skill-related business operations.
type SkillUsecase interface {
	// Create publishes a new skill authored by the caller.
	Create(ctx context.Context, caller *entity.Identity, input CreateSkillInput) (*entity.Skill, error)

	// Get retrieves one skill.
	Get(ctx context.Context, id int64) (*entity.Skill, error)

	// List retrieves skills, optionally filtered by category, best first.
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Skill, error)

	// Download records one download by the caller and bumps the counter.
	Download(ctx context.Context, caller *entity.Identity, skillID int64) (*entity.Skill, error)

	// Rate records one rating per rater per skill and recomputes the
	// average.
	Rate(ctx context.Context, caller *entity.Identity, input RateSkillInput) (*RateOutput, error)
}
