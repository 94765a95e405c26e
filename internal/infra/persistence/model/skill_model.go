package model

import (
	"time"

	"github.com/google/uuid"
)

// SkillModel mirrors the 'skills' table. Rating holds the running average;
// RatingCount is the divisor used to recompute it.
type SkillModel struct {
	ID          int64     `gorm:"primary_key;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Category    string    `gorm:"type:varchar(50);not null;index"`
	Description string    `gorm:"type:text"`
	ValueLevel  string    `gorm:"type:varchar(10);not null;default:'medium'"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorName  string    `gorm:"type:varchar(100)"`
	Downloads   int64     `gorm:"not null;default:0"`
	Rating      float64   `gorm:"not null;default:0"`
	RatingCount int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}

// SkillDownloadModel mirrors the 'skill_downloads' table.
type SkillDownloadModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	SkillID      int64     `gorm:"not null;index"`
	DownloaderID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkillDownloadModel) TableName() string {
	return "skill_downloads"
}

// SkillRatingModel mirrors the 'skill_ratings' table. One rating per rater
// per skill, enforced by the composite unique index.
type SkillRatingModel struct {
	ID        int64     `gorm:"primary_key;autoIncrement"`
	SkillID   int64     `gorm:"not null;uniqueIndex:idx_skill_ratings_skill_rater"`
	RaterID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_skill_ratings_skill_rater"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SkillRatingModel) TableName() string {
	return "skill_ratings"
}
