// Package model contains the GORM persistence models mirroring the database
// schema. They are kept separate from the domain entities so schema details
// never leak into business logic.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username             string    `gorm:"type:varchar(100);unique;not null"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Verified             bool      `gorm:"not null;default:false"`
	VerifyEmailToken     string    `gorm:"type:varchar(64);index"`
	VerifyTokenExpiresAt *time.Time
	ResetPassToken       string `gorm:"type:varchar(64);index"`
	ResetTokenExpiresAt  *time.Time
	ChangedPasswordAt    *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BlacklistedTokenModel mirrors the 'blacklisted_tokens' table. Rows are
// append only; presence of a token invalidates the session that carried it.
type BlacklistedTokenModel struct {
	Token     string `gorm:"type:text;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlacklistedTokenModel) TableName() string {
	return "blacklisted_tokens"
}
