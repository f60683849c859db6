package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"safezone/internal/config"
	"safezone/internal/domain"
	"safezone/pkg/e"
)

// EventSender drains critical-zone events and POSTs each one to the
// configured webhook.
type EventSender struct {
	logger  *slog.Logger
	cfg     config.WebhookConfig
	queue   EventSource
	http    *http.Client
	backoff time.Duration
}

func NewEventSender(logger *slog.Logger, cfg config.WebhookConfig, q EventSource) *EventSender {
	return &EventSender{
		logger:  logger,
		cfg:     cfg,
		queue:   q,
		http:    &http.Client{Timeout: 5 * time.Second},
		backoff: time.Second,
	}
}

func (s *EventSender) Run(ctx context.Context) {
	s.logger.Info("event sender started", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("event sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		ev, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			s.sleep(ctx, 500*time.Millisecond)
			continue
		}

		s.logger.Info("sending critical zone event", slog.String("critical_zone_id", ev.CriticalZoneID.String()))
		if !s.sendWithRetry(ctx, ev) {
			s.logger.Error("critical zone event dropped", slog.String("critical_zone_id", ev.CriticalZoneID.String()))
		}
	}
}

// sendWithRetry reports whether the webhook accepted the event.
func (s *EventSender) sendWithRetry(ctx context.Context, ev domain.CriticalZoneEvent) bool {
	const maxRetries = 3

	body, err := json.Marshal(ev)
	if err != nil {
		s.logger.Error("marshal event failed", slog.String("error", err.Error()))
		return false
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return false
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create webhook request failed", slog.String("error", err.Error()))
			return false
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return true
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		if attempt < maxRetries {
			s.sleep(ctx, time.Duration(attempt)*s.backoff)
		}
	}
	return false
}

func (s *EventSender) sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
