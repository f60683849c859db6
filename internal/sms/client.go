// Package sms sends text messages through the provider's HTTP API.
package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"safezone/internal/config"
)

var ErrEmptyRecipient = errors.New("sms: empty recipient")

type message struct {
	Sender     string `json:"sender"`
	Recipient  string `json:"recipient"`
	Content    string `json:"content"`
	ProviderID string `json:"provider_id"`
}

type providerError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Client struct {
	cfg    config.SMSConfig
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.SMSConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Send posts one message. Any non-2xx answer is an error carrying the
// provider's message when it sent one.
func (c *Client) Send(ctx context.Context, phone, text string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrEmptyRecipient
	}

	body, err := json.Marshal(message{
		Sender:     c.cfg.Sender,
		Recipient:  phone,
		Content:    text,
		ProviderID: c.cfg.ProviderID,
	})
	if err != nil {
		return fmt.Errorf("sms: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sms: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sms: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	reason := resp.Status
	var pe providerError
	if json.Unmarshal(raw, &pe) == nil {
		switch {
		case pe.Message != "":
			reason = pe.Message
		case pe.Error != "":
			reason = pe.Error
		}
	}

	c.logger.Warn("sms provider rejected message",
		slog.Int("status", resp.StatusCode),
		slog.String("reason", reason),
	)
	return fmt.Errorf("sms: %s", reason)
}
