// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// IdentityModel mirrors the 'identities' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type IdentityModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Kind          string    `gorm:"type:varchar(10);not null"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user'"`
	DisplayName   string    `gorm:"type:varchar(100);not null"`
	AvatarURL     string    `gorm:"type:varchar(500)"`
	ClientID      *string   `gorm:"type:varchar(100);uniqueIndex"`
	SecretHash    string    `gorm:"type:varchar(64)"`
	PointsBalance int64     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Credential *HumanCredentialModel `gorm:"foreignKey:IdentityID"`
}

// TableName explicitly sets the table name for GORM.
func (IdentityModel) TableName() string {
	return "identities"
}

// HumanCredentialModel mirrors the 'identity_credentials' table. One row per
// human identity; agents have no row here.
type HumanCredentialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	IdentityID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (HumanCredentialModel) TableName() string {
	return "identity_credentials"
}
