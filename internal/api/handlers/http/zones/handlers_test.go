package zones_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"safezone/internal/api/handlers/http/zones"
	mock_zones "safezone/internal/api/handlers/http/zones/mocks"
	"safezone/internal/domain"
	"safezone/internal/middleware"
	"safezone/pkg/e"
	"safezone/pkg/geo"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withIdentity(r *http.Request, userID string) *http.Request {
	return r.WithContext(middleware.WithIdentity(r.Context(), domain.Identity{UserID: userID, Username: "Maria"}))
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

func sampleZone() *domain.Zone {
	return &domain.Zone{
		ID:          uuid.New(),
		Date:        "2024-05-01",
		Hour:        "21:30",
		Description: "assalto",
		Location:    geo.MakePoint(-8.8383, 13.2344),
		Type:        domain.ZoneDanger,
		UserID:      "u1",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestZoneCreate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	body := `{"date":"2024-05-01","hour":"21:30","description":"assalto","type":"DANGER",
		"coordinates":{"latitude":-8.8383,"longitude":13.2344},
		"featureDetails":{"insufficientLighting":true}}`
	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/zones", bytes.NewBufferString(body)), "u1")
	rr := httptest.NewRecorder()

	z := sampleZone()
	cz := &domain.CriticalZone{ID: uuid.New(), Location: z.Location, CellToken: "tok"}

	svc.EXPECT().
		CreateZone(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got domain.CreateZoneRequest) (*domain.CreateZoneResult, error) {
			if got.UserID != "u1" {
				t.Errorf("expected user from identity, got %q", got.UserID)
			}
			if got.FeatureDetails == nil || !got.FeatureDetails.InsufficientLighting {
				t.Errorf("feature details not decoded: %+v", got.FeatureDetails)
			}
			return &domain.CreateZoneResult{Zone: z, ClusterDetected: true, CriticalZone: cz, Message: "cluster"}, nil
		}).
		Times(1)

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected %d got %d, body=%s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	got := decodeJSON[zones.CreateZoneResponse](t, rr)
	if got.Zone.ID != z.ID || !got.ClusterDetected || got.CriticalZone == nil || got.CriticalZone.ID != cz.ID {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.Zone.Coordinates.Latitude != -8.8383 || got.Zone.Coordinates.Longitude != 13.2344 {
		t.Fatalf("unexpected coordinates: %+v", got.Zone.Coordinates)
	}
}

func TestZoneCreate_NoIdentity_401(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zones", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()

	svc.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Times(0)

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected %d got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestZoneCreate_InvalidJSON_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneService(ctrl), false)

	req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/zones", bytes.NewBufferString("{bad json")), "u1")
	rr := httptest.NewRecorder()

	h.ZoneCreate(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
	}
}

func TestZoneCreate_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("op: %w", e.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("op: %w", e.ErrInvalidCoordinates), http.StatusBadRequest},
		{fmt.Errorf("op: %w", e.ErrConflict), http.StatusConflict},
		{fmt.Errorf("op: %w", e.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		ctrl := gomock.NewController(t)
		svc := mock_zones.NewMockZoneService(ctrl)
		h := zones.NewHandler(newTestLogger(), svc, false)

		svc.EXPECT().CreateZone(gomock.Any(), gomock.Any()).Return(nil, tc.err)

		req := withIdentity(httptest.NewRequest(http.MethodPost, "/api/v1/zones", bytes.NewBufferString(`{}`)), "u1")
		rr := httptest.NewRecorder()
		h.ZoneCreate(rr, req)

		if rr.Code != tc.want {
			t.Fatalf("err=%v: expected %d got %d", tc.err, tc.want, rr.Code)
		}
		got := decodeJSON[map[string]string](t, rr)
		if _, ok := got["details"]; ok {
			t.Fatalf("details must be hidden, got %v", got)
		}
	}
}

func TestZoneGet_ShowDetails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, true)

	id := uuid.New()
	svc.EXPECT().GetZoneByID(gomock.Any(), id).Return(nil, errors.New("pool closed"))

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/"+id.String(), nil), "id", id.String())
	rr := httptest.NewRecorder()
	h.ZoneGet(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
	got := decodeJSON[map[string]string](t, rr)
	if got["details"] != "pool closed" {
		t.Fatalf("expected details, got %v", got)
	}
}

func TestZoneList_WithPoint(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.ZoneQuery) ([]*domain.Zone, error) {
			if q.Point == nil || q.Point.Lat() != -8.8 || q.Point.Lng() != 13.2 {
				t.Errorf("unexpected point: %+v", q.Point)
			}
			if q.Type == nil || *q.Type != domain.ZoneDanger {
				t.Errorf("unexpected type: %v", q.Type)
			}
			if q.RadiusMeters != domain.DefaultRadiusMeters {
				t.Errorf("unexpected radius: %v", q.RadiusMeters)
			}
			return []*domain.Zone{sampleZone()}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones?lat=-8.8&lng=13.2&type=DANGER", nil)
	rr := httptest.NewRecorder()
	h.ZoneList(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if got := decodeJSON[[]zones.ZoneResponse](t, rr); len(got) != 1 {
		t.Fatalf("expected 1 zone, got %d", len(got))
	}
}

func TestZoneList_NoFilters_EmptyArray(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetAll(gomock.Any(), domain.ZoneQuery{RadiusMeters: domain.DefaultRadiusMeters}).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.ZoneList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if body := bytes.TrimSpace(rr.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestZoneList_HalfPoint_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.ZoneList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones?lat=-8.8", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneListMine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetZonesByUser(gomock.Any(), "u7").Return([]*domain.Zone{sampleZone()}, nil)

	rr := httptest.NewRecorder()
	h.ZoneListMine(rr, withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/zones/me", nil), "u7"))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestZoneListByType_Unknown_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().
		GetZonesByType(gomock.Any(), domain.ZoneType("PURPLE")).
		Return(nil, fmt.Errorf("op: %w", e.ErrInvalidInput))

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/type/PURPLE", nil), "type", "PURPLE")
	rr := httptest.NewRecorder()
	h.ZoneListByType(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneBoundingBox(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	want := domain.BoundingBoxRequest{MinLat: -9, MinLng: 13, MaxLat: -8, MaxLng: 14, Limit: domain.MaxBoundingLimit}
	svc.EXPECT().FindZonesInBoundingBox(gomock.Any(), want).Return([]*domain.Zone{sampleZone()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/bbox?minLat=-9&minLng=13&maxLat=-8&maxLng=14&limit=10000", nil)
	rr := httptest.NewRecorder()
	h.ZoneBoundingBox(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
}

func TestZoneBoundingBox_MissingParam_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().FindZonesInBoundingBox(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.ZoneBoundingBox(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/bbox?minLat=-9&minLng=13&maxLat=-8", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneNearby_IncludesDistance(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	nz := &domain.NearbyZone{Zone: *sampleZone(), DistanceMeters: 120.5}
	svc.EXPECT().FindNearbyZones(gomock.Any(), geo.MakePoint(-8.8, 13.2), 500.0).Return([]*domain.NearbyZone{nz}, nil)

	rr := httptest.NewRecorder()
	h.ZoneNearby(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/nearby?lat=-8.8&lng=13.2&radius=500", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[[]zones.ZoneResponse](t, rr)
	if len(got) != 1 || got[0].Distance == nil || *got[0].Distance != 120.5 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestZoneStats_MissingPoint_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetZoneStatsNearby(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.ZoneStats(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/stats?radius=10", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestCriticalZoneList(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	cz := &domain.CriticalZone{ID: uuid.New(), Location: geo.MakePoint(-8.8, 13.2), CellToken: "1a2b"}
	svc.EXPECT().ListCriticalZones(gomock.Any(), domain.DefaultCriticalLimit).Return([]*domain.CriticalZone{cz}, nil)

	rr := httptest.NewRecorder()
	h.CriticalZoneList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/critical", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[[]zones.CriticalZoneResponse](t, rr)
	if len(got) != 1 || got[0].Coordinates.Latitude != -8.8 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestZoneGet_InvalidID_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	h := zones.NewHandler(newTestLogger(), mock_zones.NewMockZoneService(ctrl), false)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/nope", nil), "id", "nope")
	rr := httptest.NewRecorder()
	h.ZoneGet(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneGet_WithFeatureDetails(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	z := sampleZone()
	fd := &domain.FeatureDetails{ZoneID: z.ID, ZoneType: z.Type, AbandonedHouses: true}
	svc.EXPECT().GetZoneByID(gomock.Any(), z.ID).Return(&domain.ZoneWithDetails{Zone: z, FeatureDetails: fd}, nil)

	req := addChiURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/zones/"+z.ID.String(), nil), "id", z.ID.String())
	rr := httptest.NewRecorder()
	h.ZoneGet(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]any](t, rr)
	details, ok := got["featureDetails"].(map[string]any)
	if !ok || details["abandonedHouses"] != true {
		t.Fatalf("unexpected featureDetails: %v", got["featureDetails"])
	}
}

func TestZoneUpdate_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	z := sampleZone()
	z.Description = "nova"

	svc.EXPECT().
		UpdateZone(gomock.Any(), z.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, p domain.ZonePatch) (*domain.ZoneWithDetails, error) {
			if p.Description == nil || *p.Description != "nova" || p.Type != nil {
				t.Errorf("unexpected patch: %+v", p)
			}
			return &domain.ZoneWithDetails{Zone: z}, nil
		})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/zones/"+z.ID.String(), bytes.NewBufferString(`{"description":"nova"}`))
	req = addChiURLParam(req, "id", z.ID.String())
	rr := httptest.NewRecorder()
	h.ZoneUpdate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if got := decodeJSON[zones.ZoneResponse](t, rr); got.Description != "nova" {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestZoneUpdateCoordinates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	z := sampleZone()
	c := domain.Coordinates{Latitude: -8.9, Longitude: 13.3}
	svc.EXPECT().UpdateZoneCoordinates(gomock.Any(), z.ID, c).Return(z, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/zones/"+z.ID.String()+"/coordinates",
		bytes.NewBufferString(`{"latitude":-8.9,"longitude":13.3}`))
	req = addChiURLParam(req, "id", z.ID.String())
	rr := httptest.NewRecorder()
	h.ZoneUpdateCoordinates(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
}

func TestZoneDelete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	id := uuid.New()
	gomock.InOrder(
		svc.EXPECT().DeleteZone(gomock.Any(), id).Return(nil),
		svc.EXPECT().DeleteZone(gomock.Any(), id).Return(fmt.Errorf("op: %w", e.ErrNotFound)),
	)

	for _, want := range []int{http.StatusNoContent, http.StatusNotFound} {
		req := addChiURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/zones/"+id.String(), nil), "id", id.String())
		rr := httptest.NewRecorder()
		h.ZoneDelete(rr, req)
		if rr.Code != want {
			t.Fatalf("expected %d got %d", want, rr.Code)
		}
	}
}

func TestRadiusOutOfRange_400(t *testing.T) {
	t.Parallel()

	radii := []string{"NaN", "nan", "Inf", "-Inf", "+Inf", "0", "-10", "50000.5", "1e9", "abc"}
	routes := []struct {
		name string
		path string
		call func(h *zones.Handler, w http.ResponseWriter, r *http.Request)
	}{
		{"list", "/api/v1/zones?lat=0&lng=0&radius=", (*zones.Handler).ZoneList},
		{"nearby", "/api/v1/zones/nearby?lat=0&lng=0&radius=", (*zones.Handler).ZoneNearby},
		{"stats", "/api/v1/zones/stats?lat=0&lng=0&radius=", (*zones.Handler).ZoneStats},
		{"search", "/api/v1/zones/search?lat=0&lng=0&radius=", (*zones.Handler).ZoneSearch},
	}

	for _, rt := range routes {
		for _, radius := range radii {
			t.Run(rt.name+"/"+radius, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				// no expectations: any service call fails the test
				svc := mock_zones.NewMockZoneService(ctrl)
				h := zones.NewHandler(newTestLogger(), svc, false)

				rr := httptest.NewRecorder()
				rt.call(h, rr, httptest.NewRequest(http.MethodGet, rt.path+radius, nil))

				if rr.Code != http.StatusBadRequest {
					t.Fatalf("expected %d got %d, body=%s", http.StatusBadRequest, rr.Code, rr.Body.String())
				}
			})
		}
	}
}

func TestZoneList_NonFinitePoint_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	rr := httptest.NewRecorder()
	h.ZoneList(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones?lat=NaN&lng=0", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneSearch_PassesFilters(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	want := domain.NearbyFilter{
		Center:       geo.MakePoint(-8.8, 13.2),
		RadiusMeters: 2500,
		UserID:       "u1",
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-31",
		Limit:        5,
	}
	nz := &domain.NearbyZone{Zone: *sampleZone(), DistanceMeters: 42}
	svc.EXPECT().FindZonesNearbyWithFilters(gomock.Any(), want).Return([]*domain.NearbyZone{nz}, nil)

	rr := httptest.NewRecorder()
	h.ZoneSearch(rr, httptest.NewRequest(http.MethodGet,
		"/api/v1/zones/search?lat=-8.8&lng=13.2&radius=2500&userId=u1&startDate=2025-01-01&endDate=2025-01-31&limit=5", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d, body=%s", http.StatusOK, rr.Code, rr.Body.String())
	}
	got := decodeJSON[[]zones.ZoneResponse](t, rr)
	if len(got) != 1 || got[0].Distance == nil || *got[0].Distance != 42 {
		t.Fatalf("unexpected response: %+v", got)
	}
}

func TestZoneSearch_Defaults(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().FindZonesNearbyWithFilters(gomock.Any(), domain.NearbyFilter{
		Center:       geo.MakePoint(1, 2),
		RadiusMeters: domain.DefaultRadiusMeters,
		Limit:        domain.DefaultFilterLimit,
	}).Return(nil, nil)

	rr := httptest.NewRecorder()
	h.ZoneSearch(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/search?lat=1&lng=2", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	if body := bytes.TrimSpace(rr.Body.Bytes()); string(body) != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestZoneSearch_InvalidFilter_400(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().FindZonesNearbyWithFilters(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("op: %w: startDate after endDate", e.ErrInvalidInput))

	rr := httptest.NewRecorder()
	h.ZoneSearch(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/search?lat=1&lng=2&startDate=2025-02-01&endDate=2025-01-01", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected %d got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestZoneSummary(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetZoneStats(gomock.Any()).Return(&domain.ZoneCounts{
		Total:       3,
		ByUser:      map[string]int64{"u1": 2, "u2": 1},
		RecentZones: 1,
	}, nil)

	rr := httptest.NewRecorder()
	h.ZoneSummary(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/summary", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected %d got %d", http.StatusOK, rr.Code)
	}
	got := decodeJSON[map[string]any](t, rr)
	if got["total"] != float64(3) || got["recentZones"] != float64(1) {
		t.Fatalf("unexpected body: %v", got)
	}
	if byUser, ok := got["byUser"].(map[string]any); !ok || byUser["u1"] != float64(2) {
		t.Fatalf("unexpected byUser: %v", got["byUser"])
	}
}

func TestZoneSummary_Error_500(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := mock_zones.NewMockZoneService(ctrl)
	h := zones.NewHandler(newTestLogger(), svc, false)

	svc.EXPECT().GetZoneStats(gomock.Any()).Return(nil, errors.New("boom"))

	rr := httptest.NewRecorder()
	h.ZoneSummary(rr, httptest.NewRequest(http.MethodGet, "/api/v1/zones/summary", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected %d got %d", http.StatusInternalServerError, rr.Code)
	}
}
