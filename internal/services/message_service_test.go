package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/guestwall/guestwall-backend/internal/config"
	"github.com/guestwall/guestwall-backend/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessageService(t *testing.T) *MessageService {
	db, _ := newMockDB(t)
	return NewMessageService(db, NewContentFilter(), mailer.Noop{}, &config.Config{})
}

func TestCreateValidation(t *testing.T) {
	svc := newMessageService(t)

	_, err := svc.Create("", "hello there", "", "")
	assert.Error(t, err)

	_, err = svc.Create(strings.Repeat("n", 101), "hello there", "", "")
	assert.Error(t, err)

	_, err = svc.Create("Ada", "x", "", "")
	assert.Error(t, err)

	_, err = svc.Create("Ada", strings.Repeat("x", 2001), "", "")
	assert.Error(t, err)
}

func TestCreateRejectsFilteredContent(t *testing.T) {
	svc := newMessageService(t)

	_, err := svc.Create("Ada", "visit https://dodgy.example.com now", "", "")
	require.Error(t, err)

	var rejected *ContentRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, "url_not_allowed", rejected.Reason)
}

func TestAddMediaRejectsUnknownKind(t *testing.T) {
	svc := newMessageService(t)

	_, err := svc.AddMedia(uuid.New(), "document", "https://cdn.example/x.pdf", 10)
	assert.ErrorIs(t, err, ErrInvalidMediaKind)

	_, err = svc.AddMedia(uuid.New(), "image", "", 10)
	assert.Error(t, err)
}
