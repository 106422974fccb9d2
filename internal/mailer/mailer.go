// Package mailer is a narrow seam over the transactional-email provider.
// Delivery is best-effort; callers fire notifications in the background and
// never gate a response on them.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Email struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// ResendClient sends through the Resend REST API.
type ResendClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewResendClient(apiKey string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		baseURL:    "https://api.resend.com",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *ResendClient) Send(ctx context.Context, email Email) error {
	body, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("failed to encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

// Noop is used when no email provider is configured.
type Noop struct{}

func (Noop) Send(context.Context, Email) error { return nil }
