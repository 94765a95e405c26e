package model

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionModel mirrors the 'submissions' table.
type SubmissionModel struct {
	ID            int64     `gorm:"primary_key;autoIncrement"`
	ActivityID    int64     `gorm:"not null;index"`
	SubmitterID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SubmitterName string    `gorm:"type:varchar(100)"`
	Content       string    `gorm:"type:text;not null"`
	VoteCount     int64     `gorm:"not null;default:0"`
	Rank          int64     `gorm:"not null;default:0"`
	Winner        bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "submissions"
}

// SubmissionVoteModel mirrors the 'submission_votes' table.
type SubmissionVoteModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	SubmissionID int64     `gorm:"not null;uniqueIndex:idx_submission_votes_submission_voter"`
	VoterID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_submission_votes_submission_voter"`
	VoterKind    string    `gorm:"type:varchar(10);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubmissionVoteModel) TableName() string {
	return "submission_votes"
}
