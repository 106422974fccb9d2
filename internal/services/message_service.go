package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/guestwall/guestwall-backend/internal/config"
	"github.com/guestwall/guestwall-backend/internal/mailer"
	"github.com/guestwall/guestwall-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidMediaKind = errors.New("media kind must be image, video, or audio")

// ContentRejectedError carries the filter reason for a rejected submission.
type ContentRejectedError struct {
	Reason string
}

func (e *ContentRejectedError) Error() string {
	return "content rejected: " + e.Reason
}

// MessageService handles the public contributor flow: submissions and media
// registration. New messages always start pending.
type MessageService struct {
	db     *gorm.DB
	filter *ContentFilter
	mail   mailer.Mailer
	cfg    *config.Config
}

func NewMessageService(db *gorm.DB, filter *ContentFilter, mail mailer.Mailer, cfg *config.Config) *MessageService {
	return &MessageService{db: db, filter: filter, mail: mail, cfg: cfg}
}

func (s *MessageService) Create(name, content, country, city string) (*models.Message, error) {
	if name == "" || len(name) > 100 {
		return nil, errors.New("name is required and must be under 100 characters")
	}
	if len(content) < 2 {
		return nil, errors.New("message must be at least 2 characters")
	}
	if len(content) > 2000 {
		return nil, errors.New("message must be under 2000 characters")
	}

	if ok, reason := s.filter.Check(content); !ok {
		return nil, &ContentRejectedError{Reason: reason}
	}

	message := &models.Message{
		Name:    name,
		Content: content,
		Status:  string(models.StatePending),
	}
	if country != "" {
		message.LocationCountry = &country
	}
	if city != "" {
		message.LocationCity = &city
	}

	if err := s.db.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	go s.notifyOwner(message)

	return message, nil
}

// AddMedia registers an uploaded attachment against a message. The object
// itself lives in external storage; only the reference is recorded.
func (s *MessageService) AddMedia(messageID uuid.UUID, kind, url string, sizeBytes int64) (*models.MediaFile, error) {
	if !validMediaKind(kind) {
		return nil, ErrInvalidMediaKind
	}
	if url == "" {
		return nil, errors.New("url is required")
	}

	var message models.Message
	if err := s.db.Where("id = ?", messageID).First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to load message: %w", err)
	}

	media := &models.MediaFile{
		MessageID: message.ID,
		Kind:      kind,
		URL:       url,
		SizeBytes: sizeBytes,
	}
	if err := s.db.Create(media).Error; err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	return media, nil
}

func (s *MessageService) notifyOwner(message *models.Message) {
	if s.cfg.MailTo == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	name := html.EscapeString(message.Name)
	err := s.mail.Send(ctx, mailer.Email{
		From:    s.cfg.MailFrom,
		To:      []string{s.cfg.MailTo},
		Subject: "New guestwall message from " + message.Name,
		HTML: "<p><strong>" + name + "</strong> left a new message:</p>" +
			"<blockquote>" + html.EscapeString(message.Content) + "</blockquote>" +
			"<p>It is waiting for moderation.</p>",
	})
	if err != nil {
		slog.Error("submission notification failed", "action", "notify_owner", "error", err.Error())
	}
}

func validMediaKind(kind string) bool {
	for _, k := range models.MediaKinds {
		if k == kind {
			return true
		}
	}
	return false
}
