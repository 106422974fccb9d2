package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/guestwall/guestwall-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
)

// MessageWithMedia is a message joined with its attachment count.
type MessageWithMedia struct {
	models.Message
	AttachmentCount int64 `json:"attachment_count"`
}

// HasMedia is true iff the message owns at least one attachment.
func (m *MessageWithMedia) HasMedia() bool {
	return m.AttachmentCount > 0
}

// Stats are the derived moderation statistics. Recomputed on demand, never
// persisted.
type Stats struct {
	Total     int
	Approved  int
	Pending   int
	Rejected  int
	WithMedia int
	Countries int
}

// ModerationService is the source of truth for message moderation state and
// the on-demand aggregator over it.
type ModerationService struct {
	db *gorm.DB
}

func NewModerationService(db *gorm.DB) *ModerationService {
	return &ModerationService{db: db}
}

// ListMessages returns all messages with their attachment counts, newest
// first.
func (s *ModerationService) ListMessages() ([]MessageWithMedia, error) {
	var rows []MessageWithMedia
	err := s.db.Model(&models.Message{}).
		Select("messages.*, count(media_files.id) AS attachment_count").
		Joins("LEFT JOIN media_files ON media_files.message_id = messages.id").
		Group("messages.id").
		Order("messages.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return rows, nil
}

// SetDecision applies a moderation decision. Both stored forms of the state
// change in a single UPDATE; a partial update is impossible. Re-deciding an
// already-decided message is an idempotent overwrite, which also permits
// reversal between approved and rejected. There is no transition back to
// pending.
func (s *ModerationService) SetDecision(messageID uuid.UUID, decision models.ModerationState) error {
	if !decision.IsDecision() {
		return ErrInvalidDecision
	}

	result := s.db.Model(&models.Message{}).
		Where("id = ?", messageID).
		Updates(map[string]interface{}{
			"is_approved": decision.Approved(),
			"status":      string(decision),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}

// ComputeStats recomputes the summary statistics from a full scan. Volume
// is small, so correctness wins over caching; staleness would be worse than
// the scan. Store-read failures propagate unchanged.
func (s *ModerationService) ComputeStats() (*Stats, error) {
	messages, err := s.ListMessages()
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(messages)}
	countries := make(map[string]struct{})
	for i := range messages {
		m := &messages[i]
		switch m.State() {
		case models.StateApproved:
			stats.Approved++
		case models.StateRejected:
			stats.Rejected++
		default:
			stats.Pending++
		}
		if m.HasMedia() {
			stats.WithMedia++
		}
		if m.LocationCountry != nil && *m.LocationCountry != "" {
			countries[*m.LocationCountry] = struct{}{}
		}
	}
	stats.Countries = len(countries)
	return stats, nil
}
