package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenModel mirrors the 'access_tokens' table. Tokens are stored by
// digest only, never in the raw form.
type AccessTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	TokenDigest string    `gorm:"type:varchar(64);unique;not null"`
	IdentityID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(10);not null"`
	ExpiresAt   time.Time `gorm:"not null;index"`
	Revoked     bool      `gorm:"not null;default:false"`
	RevokedAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}
