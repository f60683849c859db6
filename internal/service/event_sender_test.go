package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safezone/internal/config"
	"safezone/internal/domain"
	"safezone/internal/service"
	mock_service "safezone/internal/service/mocks"
	"safezone/pkg/e"
	"safezone/pkg/logger"
)

func TestEventSender_RetriesUntilAccepted(t *testing.T) {
	var hits atomic.Int32
	var got domain.CriticalZoneEvent

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	queue := mock_service.NewMockEventSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ev := domain.CriticalZoneEvent{
		Event:          domain.EventCriticalZoneCreated,
		CriticalZoneID: uuid.New(),
		Latitude:       -8.8383,
		Longitude:      13.2344,
		Reporters:      10,
	}
	gomock.InOrder(
		queue.EXPECT().BRPop(gomock.Any(), gomock.Any()).Return(ev, nil),
		queue.EXPECT().BRPop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, time.Duration) (domain.CriticalZoneEvent, error) {
				cancel()
				return domain.CriticalZoneEvent{}, e.ErrQueueEmpty
			}),
	)

	sender := service.NewEventSender(logger.Discard(), config.WebhookConfig{URL: srv.URL}, queue)

	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("sender did not stop")
	}

	if hits.Load() != 2 {
		t.Fatalf("expected 2 webhook attempts, got %d", hits.Load())
	}
	if got.CriticalZoneID != ev.CriticalZoneID {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
