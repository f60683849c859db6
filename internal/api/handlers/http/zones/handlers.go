package zones

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/internal/middleware"
	"safezone/pkg/geo"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneService interface {
	CreateZone(ctx context.Context, req domain.CreateZoneRequest) (*domain.CreateZoneResult, error)
	UpdateZone(ctx context.Context, id uuid.UUID, patch domain.ZonePatch) (*domain.ZoneWithDetails, error)
	DeleteZone(ctx context.Context, id uuid.UUID) error
	GetZoneByID(ctx context.Context, id uuid.UUID) (*domain.ZoneWithDetails, error)
	GetAll(ctx context.Context, q domain.ZoneQuery) ([]*domain.Zone, error)
	GetZonesByType(ctx context.Context, zoneType domain.ZoneType) ([]*domain.Zone, error)
	GetZonesByUser(ctx context.Context, userID string) ([]*domain.Zone, error)
	FindZonesInBoundingBox(ctx context.Context, req domain.BoundingBoxRequest) ([]*domain.Zone, error)
	FindNearbyZones(ctx context.Context, center geo.Point, radiusMeters float64) ([]*domain.NearbyZone, error)
	UpdateZoneCoordinates(ctx context.Context, id uuid.UUID, c domain.Coordinates) (*domain.Zone, error)
	GetZoneStatsNearby(ctx context.Context, center geo.Point, radiusMeters float64) (*domain.ZoneStats, error)
	ListCriticalZones(ctx context.Context, limit int) ([]*domain.CriticalZone, error)
	FindZonesNearbyWithFilters(ctx context.Context, f domain.NearbyFilter) ([]*domain.NearbyZone, error)
	GetZoneStats(ctx context.Context) (*domain.ZoneCounts, error)
}

const radiusError = "radius must be a number in (0, 50000]"

type Handler struct {
	logger      *slog.Logger
	Zones       ZoneService
	showDetails bool
}

func NewHandler(logger *slog.Logger, zones ZoneService, showDetails bool) *Handler {
	return &Handler{
		logger:      logger,
		Zones:       zones,
		showDetails: showDetails,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) ZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneCreate", slog.String("remote", r.RemoteAddr))

	who, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
		return
	}

	var req domain.CreateZoneRequest
	if err := middleware.DecodeJSON(w, r, &req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	req.UserID = who.UserID

	res, err := h.Zones.CreateZone(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone created",
		slog.String("id", res.Zone.ID.String()),
		slog.String("type", string(res.Zone.Type)),
		slog.Bool("cluster_detected", res.ClusterDetected),
	)
	h.writeJSON(w, http.StatusCreated, newCreateZoneResponse(res))
}

func (h *Handler) ZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	var query domain.ZoneQuery

	if q.Has("lat") || q.Has("lng") {
		p, err := parsePoint(q)
		if err != nil {
			l.Warn("invalid point", slog.String("error", err.Error()))
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng must be valid numbers"})
			return
		}
		query.Point = &p
	}
	if t := q.Get("type"); t != "" {
		zt := domain.ZoneType(t)
		query.Type = &zt
	}
	radius, err := parseRadius(q.Get("radius"), domain.DefaultRadiusMeters)
	if err != nil {
		l.Warn("invalid radius", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": radiusError})
		return
	}
	query.RadiusMeters = radius

	zones, err := h.Zones.GetAll(r.Context(), query)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zones listed", slog.Int("count", len(zones)))
	h.writeJSON(w, http.StatusOK, newZoneList(zones))
}

func (h *Handler) ZoneListMine(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneListMine", slog.String("remote", r.RemoteAddr))

	who, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		h.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing user identity"})
		return
	}

	zones, err := h.Zones.GetZonesByUser(r.Context(), who.UserID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newZoneList(zones))
}

func (h *Handler) ZoneListByType(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("ZoneListByType", slog.String("remote", r.RemoteAddr))

	zones, err := h.Zones.GetZonesByType(r.Context(), domain.ZoneType(chi.URLParam(r, "type")))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newZoneList(zones))
}

func (h *Handler) ZoneBoundingBox(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneBoundingBox", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	q := r.URL.Query()
	var (
		req  domain.BoundingBoxRequest
		errs []error
	)
	req.MinLat, errs = requireFloat(q.Get("minLat"), errs)
	req.MinLng, errs = requireFloat(q.Get("minLng"), errs)
	req.MaxLat, errs = requireFloat(q.Get("maxLat"), errs)
	req.MaxLng, errs = requireFloat(q.Get("maxLng"), errs)
	if len(errs) > 0 {
		l.Warn("invalid bounding box", slog.Int("bad_params", len(errs)))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minLat, minLng, maxLat and maxLng are required numbers"})
		return
	}

	req.Limit = parseInt(q.Get("limit"), domain.DefaultBoundingLimit)
	if req.Limit > domain.MaxBoundingLimit {
		req.Limit = domain.MaxBoundingLimit
		l.Warn("limit capped", slog.Int("limit", req.Limit))
	}

	zones, err := h.Zones.FindZonesInBoundingBox(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newZoneList(zones))
}

func (h *Handler) ZoneNearby(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneNearby", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	center, radius, ok := h.circle(w, r)
	if !ok {
		return
	}

	zones, err := h.Zones.FindNearbyZones(r.Context(), center, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, newNearbyZoneResponse(z))
	}
	l.Info("nearby zones", slog.Int("count", len(out)), slog.Float64("radius_m", radius))
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ZoneStats(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("ZoneStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	center, radius, ok := h.circle(w, r)
	if !ok {
		return
	}

	stats, err := h.Zones.GetZoneStatsNearby(r.Context(), center, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// ZoneSearch is the filtered radius search: optional userId, startDate and
// endDate (YYYY-MM-DD) and limit on top of lat/lng/radius.
func (h *Handler) ZoneSearch(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneSearch", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	center, radius, ok := h.circle(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	f := domain.NearbyFilter{
		Center:       center,
		RadiusMeters: radius,
		UserID:       q.Get("userId"),
		StartDate:    q.Get("startDate"),
		EndDate:      q.Get("endDate"),
		Limit:        parseInt(q.Get("limit"), domain.DefaultFilterLimit),
	}
	if f.Limit > domain.MaxBoundingLimit {
		f.Limit = domain.MaxBoundingLimit
		l.Warn("limit capped", slog.Int("limit", f.Limit))
	}

	zones, err := h.Zones.FindZonesNearbyWithFilters(r.Context(), f)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, newNearbyZoneResponse(z))
	}
	l.Info("zone search", slog.Int("count", len(out)), slog.Float64("radius_m", radius))
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ZoneSummary(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("ZoneSummary", slog.String("remote", r.RemoteAddr))

	counts, err := h.Zones.GetZoneStats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, counts)
}

func (h *Handler) CriticalZoneList(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("CriticalZoneList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	limit := parseInt(r.URL.Query().Get("limit"), domain.DefaultCriticalLimit)
	if limit > domain.MaxBoundingLimit {
		limit = domain.MaxBoundingLimit
	}

	list, err := h.Zones.ListCriticalZones(r.Context(), limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]CriticalZoneResponse, 0, len(list))
	for _, cz := range list {
		out = append(out, newCriticalZoneResponse(cz))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) ZoneGet(w http.ResponseWriter, r *http.Request) {
	h.log(r).Debug("ZoneGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	zd, err := h.Zones.GetZoneByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newZoneResponse(zd.Zone, zd.FeatureDetails))
}

func (h *Handler) ZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	var patch domain.ZonePatch
	if err := middleware.DecodeJSON(w, r, &patch); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	zd, err := h.Zones.UpdateZone(r.Context(), id, patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone updated", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusOK, newZoneResponse(zd.Zone, zd.FeatureDetails))
}

func (h *Handler) ZoneUpdateCoordinates(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneUpdateCoordinates", slog.String("remote", r.RemoteAddr))

	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	var c domain.Coordinates
	if err := middleware.DecodeJSON(w, r, &c); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	zone, err := h.Zones.UpdateZoneCoordinates(r.Context(), id, c)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, newZoneResponse(zone, nil))
}

func (h *Handler) ZoneDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("ZoneDelete", slog.String("remote", r.RemoteAddr))

	id, ok := h.zoneID(w, r)
	if !ok {
		return
	}

	if err := h.Zones.DeleteZone(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("zone deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) zoneID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// circle reads the required lat/lng pair and the optional radius.
func (h *Handler) circle(w http.ResponseWriter, r *http.Request) (geo.Point, float64, bool) {
	q := r.URL.Query()
	center, err := parsePoint(q)
	if err != nil {
		h.log(r).Warn("invalid point", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "lat and lng are required numbers"})
		return geo.Point{}, 0, false
	}
	radius, err := parseRadius(q.Get("radius"), domain.DefaultRadiusMeters)
	if err != nil {
		h.log(r).Warn("invalid radius", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": radiusError})
		return geo.Point{}, 0, false
	}
	return center, radius, true
}
