package system_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"safezone/internal/api/handlers/http/system"
	"safezone/pkg/logger"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHealth(t *testing.T) {
	t.Parallel()

	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	cases := []struct {
		name       string
		checks     map[string]system.Pinger
		wantCode   int
		wantStatus string
	}{
		{"no deps", nil, http.StatusOK, "ok"},
		{"all up", map[string]system.Pinger{"postgres": up, "redis": up}, http.StatusOK, "ok"},
		{"redis down", map[string]system.Pinger{"postgres": up, "redis": down}, http.StatusServiceUnavailable, "degraded"},
		{"nil skipped", map[string]system.Pinger{"redis": nil}, http.StatusOK, "ok"},
	}

	for _, tc := range cases {
		h := system.NewHandler(logger.Discard(), tc.checks)
		rr := httptest.NewRecorder()
		h.SystemHealth(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

		if rr.Code != tc.wantCode {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.wantCode, rr.Code)
		}
		var body struct {
			Status string            `json:"status"`
			Checks map[string]string `json:"checks"`
		}
		if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid json: %v", tc.name, err)
		}
		if body.Status != tc.wantStatus {
			t.Fatalf("%s: expected status %q got %q", tc.name, tc.wantStatus, body.Status)
		}
	}
}
