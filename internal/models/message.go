package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contributor submission awaiting (or past) moderation.
// IsApproved and Status are a paired representation of the same moderation
// state; both are derived from ModerationState and always written together.
type Message struct {
	ID              uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name            string      `gorm:"size:100;not null" json:"name"`
	Content         string      `gorm:"type:text;not null" json:"content"`
	IsApproved      *bool       `gorm:"index" json:"is_approved"`
	Status          string      `gorm:"size:20;not null;default:'pending'" json:"status"`
	LocationCountry *string     `gorm:"size:100" json:"location_country,omitempty"`
	LocationCity    *string     `gorm:"size:100" json:"location_city,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	MediaFiles      []MediaFile `gorm:"foreignKey:MessageID" json:"media_files,omitempty"`
}

// State exposes the message's moderation state as the internal enum.
func (m *Message) State() ModerationState {
	return StateFromApproved(m.IsApproved)
}

// MediaFile is an attachment owned by a message.
type MediaFile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MessageID uuid.UUID `gorm:"type:uuid;not null;index" json:"message_id"`
	Kind      string    `gorm:"size:20;not null" json:"kind"`
	URL       string    `gorm:"size:2048;not null" json:"url"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// Media kinds accepted on upload registration.
var MediaKinds = []string{"image", "video", "audio"}
