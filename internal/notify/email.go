// Package notify implements transactional email delivery through the
// external email API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"intouch/config"
)

// EmailAPINotifier posts messages to the provider's /send endpoint with
// bearer-key authentication.
type EmailAPINotifier struct {
	baseURL string
	apiKey  string
	from    string
	client  *http.Client
	logger  *zap.Logger
}

func NewEmailAPINotifier(cfg config.EmailConfig, logger *zap.Logger) *EmailAPINotifier {
	return &EmailAPINotifier{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		from:    cfg.FromAddress,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type sendRequest struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

func (n *EmailAPINotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(sendRequest{
		To:      to,
		From:    n.from,
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("encoding email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		n.logger.Error("email API rejected message",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("email API returned status %d", resp.StatusCode)
	}

	return nil
}
