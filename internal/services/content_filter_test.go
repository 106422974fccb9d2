package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentFilterAcceptsNormalText(t *testing.T) {
	f := NewContentFilter()

	for _, text := range []string{
		"",
		"Congratulations on the big day!",
		"We loved the ceremony. See you soon.",
		"So proud of you both",
	} {
		ok, reason := f.Check(text)
		assert.True(t, ok, "text %q rejected with %s", text, reason)
	}
}

func TestContentFilterRejections(t *testing.T) {
	f := NewContentFilter()

	tests := []struct {
		text   string
		reason string
	}{
		{"this is fucking great", "inappropriate_language"},
		{"check out https://dodgy.example.com", "url_not_allowed"},
		{"visit www.dodgy.example now", "url_not_allowed"},
		{"email me at joe@example.com", "contact_info_not_allowed"},
		{"call 555-123-4567 today", "contact_info_not_allowed"},
		{"buy now!!!!!!", "spam_detected"},
		{"soooooo good", "spam_detected"},
	}

	for _, tt := range tests {
		ok, reason := f.Check(tt.text)
		assert.False(t, ok, "text %q should be rejected", tt.text)
		assert.Equal(t, tt.reason, reason, "text %q", tt.text)
	}
}

func TestContentFilterWordBoundaries(t *testing.T) {
	f := NewContentFilter()

	// "class" and "assignment" contain banned substrings but are fine words.
	ok, _ := f.Check("the whole class sends its best")
	assert.True(t, ok)
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, "URLs and web links are not allowed.", RejectionMessage("url_not_allowed"))
	assert.Equal(t, "Your message does not meet our content guidelines.", RejectionMessage("unknown_reason"))
}
