package entity

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a packaged, reusable capability shared on the board.
type Skill struct {
	ID          int64
	Name        string
	Category    string
	Description string
	ValueLevel  string // Author's own value estimate: "low", "medium", "high".
	AuthorID    uuid.UUID
	AuthorName  string
	Downloads   int64
	Rating      float64 // Average rating across all raters.
	RatingCount int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SkillDownload records one download of a skill by an identity.
type SkillDownload struct {
	ID           int64
	SkillID      int64
	DownloaderID uuid.UUID
	CreatedAt    time.Time
}

// SkillRating records one rating of a skill. At most one row exists per
// (skill, rater) pair.
type SkillRating struct {
	ID        int64
	SkillID   int64
	RaterID   uuid.UUID
	Rating    int // 1 to 5.
	Comment   string
	CreatedAt time.Time
}
