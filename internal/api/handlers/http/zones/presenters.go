package zones

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
	"safezone/pkg/validator"
)

type ZoneResponse struct {
	ID             uuid.UUID              `json:"id"`
	Slug           string                 `json:"slug,omitempty"`
	Date           string                 `json:"date"`
	Hour           string                 `json:"hour"`
	Description    string                 `json:"description"`
	Type           domain.ZoneType        `json:"type"`
	Coordinates    domain.Coordinates     `json:"coordinates"`
	UserID         string                 `json:"userId"`
	FeatureDetails *domain.FeatureDetails `json:"featureDetails,omitempty"`
	Distance       *float64               `json:"distance,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

type CriticalZoneResponse struct {
	ID          uuid.UUID          `json:"id"`
	Coordinates domain.Coordinates `json:"coordinates"`
	CellToken   string             `json:"cellToken,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type CreateZoneResponse struct {
	Zone            ZoneResponse          `json:"zone"`
	ClusterDetected bool                  `json:"clusterDetected"`
	CriticalZone    *CriticalZoneResponse `json:"criticalZone,omitempty"`
	Message         string                `json:"message,omitempty"`
}

func newZoneResponse(z *domain.Zone, fd *domain.FeatureDetails) ZoneResponse {
	return ZoneResponse{
		ID:             z.ID,
		Slug:           z.Slug,
		Date:           z.Date,
		Hour:           z.Hour,
		Description:    z.Description,
		Type:           z.Type,
		Coordinates:    z.Coordinates(),
		UserID:         z.UserID,
		FeatureDetails: fd,
		CreatedAt:      z.CreatedAt,
		UpdatedAt:      z.UpdatedAt,
	}
}

func newNearbyZoneResponse(z *domain.NearbyZone) ZoneResponse {
	out := newZoneResponse(&z.Zone, nil)
	d := z.DistanceMeters
	out.Distance = &d
	return out
}

func newZoneList(zones []*domain.Zone) []ZoneResponse {
	out := make([]ZoneResponse, 0, len(zones))
	for _, z := range zones {
		out = append(out, newZoneResponse(z, nil))
	}
	return out
}

func newCriticalZoneResponse(cz *domain.CriticalZone) CriticalZoneResponse {
	return CriticalZoneResponse{
		ID:          cz.ID,
		Coordinates: domain.CoordinatesOf(cz.Location),
		CellToken:   cz.CellToken,
		CreatedAt:   cz.CreatedAt,
	}
}

func newCreateZoneResponse(res *domain.CreateZoneResult) CreateZoneResponse {
	out := CreateZoneResponse{
		Zone:            newZoneResponse(res.Zone, res.FeatureDetails),
		ClusterDetected: res.ClusterDetected,
		Message:         res.Message,
	}
	if res.CriticalZone != nil {
		cz := newCriticalZoneResponse(res.CriticalZone)
		out.CriticalZone = &cz
	}
	return out
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	l.Error("handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	body := func(msg string) map[string]string {
		out := map[string]string{"error": msg}
		if h.showDetails {
			out["details"] = err.Error()
		}
		return out
	}

	switch {
	case errors.Is(err, e.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, body("not found"))
	case errors.Is(err, e.ErrInvalidInput),
		errors.Is(err, e.ErrInvalidCoordinates),
		errors.Is(err, e.ErrInvalidUserID):
		h.writeJSON(w, http.StatusBadRequest, body("invalid input"))
	case errors.Is(err, e.ErrConflict):
		h.writeJSON(w, http.StatusConflict, body("conflict"))
	default:
		h.writeJSON(w, http.StatusInternalServerError, body("internal error"))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response failed", slog.Any("error", err))
	}
}

func parseInt(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// parseRadius accepts an empty value as def and anything else only inside
// (0, MaxRadiusMeters].
func parseRadius(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	f, err := parseFinite(s)
	if err != nil {
		return 0, err
	}
	if err := validator.ValidateVar(f, "radius_m"); err != nil {
		return 0, err
	}
	return f, nil
}

// parseFinite is strconv.ParseFloat without NaN and the infinities.
func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return f, nil
}

func requireFloat(s string, errs []error) (float64, []error) {
	if s == "" {
		return 0, append(errs, errors.New("missing value"))
	}
	f, err := parseFinite(s)
	if err != nil {
		return 0, append(errs, err)
	}
	return f, errs
}

func parsePoint(q url.Values) (geo.Point, error) {
	var errs []error
	lat, errs := requireFloat(q.Get("lat"), errs)
	lng, errs := requireFloat(q.Get("lng"), errs)
	if len(errs) > 0 {
		return geo.Point{}, fmt.Errorf("lat/lng: %w", errors.Join(errs...))
	}
	return geo.MakePoint(lat, lng), nil
}
