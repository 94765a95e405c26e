package repository

import (
	"context"

	"board/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for skill persistence.
var (
	// ErrSkillNotFound is returned when a skill is not found.
	ErrSkillNotFound = errors.New("skill not found")
	// ErrDuplicateRating is returned when the rater has already rated the
	// skill. Callers treat it as "already rated".
	ErrDuplicateRating = errors.New("rating already recorded")
)

// SkillRepository defines the interface for skill persistence.
type SkillRepository interface {
	// Create persists a new skill and backfills its generated ID.
	Create(ctx context.Context, skill *entity.Skill) error

	// FindByID retrieves a skill by ID.
	FindByID(ctx context.Context, id int64) (*entity.Skill, error)

	// List retrieves skills, optionally filtered by category (empty means
	// all), ordered by rating then downloads, best first.
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Skill, error)

	// RecordDownload appends one download record.
	RecordDownload(ctx context.Context, download *entity.SkillDownload) error

	// IncrementDownloads bumps the skill's download counter by one.
	IncrementDownloads(ctx context.Context, id int64) error

	// CreateRating inserts one rating row, relying on the store's uniqueness
	// constraint on (skill_id, rater_id). A violation surfaces as
	// ErrDuplicateRating.
	CreateRating(ctx context.Context, rating *entity.SkillRating) error

	// UpdateRating writes a recomputed average rating and rating count.
	UpdateRating(ctx context.Context, id int64, rating float64, count int64) error
}
