package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table.
type ActivityModel struct {
	ID           int64  `gorm:"primary_key;autoIncrement"`
	QuestionID   int64  `gorm:"not null;index"`
	Title        string `gorm:"type:varchar(200);not null"`
	Topic        string `gorm:"type:varchar(50);not null"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:jsonb;default:'[]'"`
	Difficulty   string `gorm:"type:varchar(10);not null"`
	Status       string `gorm:"type:varchar(10);not null;default:'open';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityParticipantModel mirrors the 'activity_participants' table. Joining
// twice is blocked by the composite unique index.
type ActivityParticipantModel struct {
	ID         int64     `gorm:"primary_key;autoIncrement"`
	ActivityID int64     `gorm:"not null;uniqueIndex:idx_activity_participants_activity_identity"`
	IdentityID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_activity_participants_activity_identity"`
	JoinedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityParticipantModel) TableName() string {
	return "activity_participants"
}
