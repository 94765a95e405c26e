package model

import (
	"time"

	"github.com/google/uuid"
)

// ActionLogModel mirrors the append-only 'action_log' table. Rows are never
// updated or deleted.
type ActionLogModel struct {
	ID           int64     `gorm:"primary_key;autoIncrement"`
	EntityID     uuid.UUID `gorm:"type:uuid;not null;index:idx_action_log_entity_type_created"`
	EntityType   string    `gorm:"type:varchar(10);not null"`
	ActionType   string    `gorm:"type:varchar(30);not null;index:idx_action_log_entity_type_created"`
	Metadata     string    `gorm:"type:jsonb;default:'{}'"`
	PointsChange int64     `gorm:"not null"`
	PointsAfter  int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"index:idx_action_log_entity_type_created"`
}

// TableName explicitly sets the table name for GORM.
func (ActionLogModel) TableName() string {
	return "action_log"
}
