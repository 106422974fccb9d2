package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LocalUser backs the built-in identity provider used when no hosted
// provider is configured. UserMetadata is self-reported and mutable by the
// subject; AppMetadata is written only by administrative tooling.
type LocalUser struct {
	ID           uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email        string            `gorm:"not null;size:255;uniqueIndex" json:"email"`
	PasswordHash string            `gorm:"not null" json:"-"`
	UserMetadata datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"user_metadata"`
	AppMetadata  datatypes.JSONMap `gorm:"type:jsonb;default:'{}'" json:"app_metadata"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// IdentityToken is an opaque access token issued by the local provider,
// stored as a SHA-256 hash.
type IdentityToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
	User      LocalUser `gorm:"foreignKey:UserID" json:"-"`
}
