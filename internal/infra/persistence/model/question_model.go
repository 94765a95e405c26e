package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionModel mirrors the 'questions' table.
type QuestionModel struct {
	ID               int64     `gorm:"primary_key;autoIncrement"`
	Title            string    `gorm:"type:varchar(200);not null"`
	Topic            string    `gorm:"type:varchar(50);not null;index"`
	Description      string    `gorm:"type:text"`
	Requirements     string    `gorm:"type:jsonb;default:'[]'"`
	ValueExpectation string    `gorm:"type:text"`
	Difficulty       string    `gorm:"type:varchar(10);not null"`
	CreatedBy        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status           string    `gorm:"type:varchar(10);not null;default:'pending';index"`
	Views            int64     `gorm:"not null;default:0"`
	Votes            int64     `gorm:"not null;default:0"`
	Participants     int64     `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionModel) TableName() string {
	return "questions"
}

// QuestionVoteModel mirrors the 'question_votes' table. The composite unique
// index is what makes voting idempotent.
type QuestionVoteModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	QuestionID int64     `gorm:"not null;uniqueIndex:idx_question_votes_question_voter"`
	VoterID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_question_votes_question_voter"`
	VoterKind  string    `gorm:"type:varchar(10);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (QuestionVoteModel) TableName() string {
	return "question_votes"
}
