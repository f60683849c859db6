package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
	"safezone/pkg/validator"
)

const ClusterDetectedMessage = "Zona crítica detectada: vários relatos de perigo nesta área"

type ZoneService struct {
	zones    ZoneRepository
	critical CriticalZoneRepository
	features FeatureDetailsRepository
	detector *CriticalZoneDetector
	logger   *slog.Logger
	now      func() time.Time
}

func NewZoneService(
	zones ZoneRepository,
	critical CriticalZoneRepository,
	features FeatureDetailsRepository,
	detector *CriticalZoneDetector,
	logger *slog.Logger,
) *ZoneService {
	return &ZoneService{
		zones:    zones,
		critical: critical,
		features: features,
		detector: detector,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *ZoneService) CreateZone(ctx context.Context, req domain.CreateZoneRequest) (*domain.CreateZoneResult, error) {
	const op = "service.ZoneService.CreateZone"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	zone := &domain.Zone{
		Slug:        req.Slug,
		Date:        req.Date,
		Hour:        req.Hour,
		Description: req.Description,
		Location:    req.Coordinates.Point(),
		Type:        req.Type.OrDefault(),
		UserID:      req.UserID,
	}
	if err := s.zones.Create(ctx, zone); err != nil {
		s.logger.Error("create zone failed", slog.String("op", op), slog.String("user_id", req.UserID), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}

	var features domain.Features
	if req.FeatureDetails != nil {
		features = *req.FeatureDetails
	}
	details, err := s.features.Create(ctx, zone.ID, zone.Type, features)
	if err != nil {
		s.logger.Error("create feature details failed", slog.String("op", op), slog.String("zone_id", zone.ID.String()), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}

	s.logger.Info("zone created",
		slog.String("zone_id", zone.ID.String()),
		slog.String("user_id", zone.UserID),
		slog.String("type", string(zone.Type)),
	)

	res := &domain.CreateZoneResult{Zone: zone, FeatureDetails: details}
	if zone.Type != domain.ZoneDanger || s.detector == nil {
		return res, nil
	}

	det, err := s.detector.Detect(ctx, zone)
	if err != nil {
		return nil, e.Translate(op, err)
	}
	if det.Detected {
		res.ClusterDetected = true
		res.CriticalZone = det.CriticalZone
		res.Message = ClusterDetectedMessage
	}
	return res, nil
}

// UpdateZone merges patch over the stored zone. It does not re-run the
// critical-zone detector.
func (s *ZoneService) UpdateZone(ctx context.Context, id uuid.UUID, patch domain.ZonePatch) (*domain.ZoneWithDetails, error) {
	const op = "service.ZoneService.UpdateZone"

	if err := validator.ValidateStruct(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	zone, err := s.zones.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(op, id, err)
	}

	patch.Apply(zone)
	if err := s.zones.Update(ctx, zone); err != nil {
		return nil, s.fail(op, id, err)
	}

	out := &domain.ZoneWithDetails{Zone: zone}
	if patch.FeatureDetails != nil {
		out.FeatureDetails, err = s.features.Update(ctx, id, zone.Type, *patch.FeatureDetails)
		if err != nil {
			return nil, s.fail(op, id, err)
		}
	} else if out.FeatureDetails, err = s.details(ctx, id); err != nil {
		return nil, s.fail(op, id, err)
	}

	s.logger.Info("zone updated", slog.String("zone_id", id.String()))
	return out, nil
}

func (s *ZoneService) DeleteZone(ctx context.Context, id uuid.UUID) error {
	const op = "service.ZoneService.DeleteZone"

	if _, err := s.zones.GetByID(ctx, id); err != nil {
		return s.fail(op, id, err)
	}
	if err := s.zones.Delete(ctx, id); err != nil {
		return s.fail(op, id, err)
	}

	s.logger.Info("zone deleted", slog.String("zone_id", id.String()))
	return nil
}

func (s *ZoneService) GetZoneByID(ctx context.Context, id uuid.UUID) (*domain.ZoneWithDetails, error) {
	const op = "service.ZoneService.GetZoneByID"

	zone, err := s.zones.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(op, id, err)
	}
	details, err := s.details(ctx, id)
	if err != nil {
		return nil, s.fail(op, id, err)
	}
	return &domain.ZoneWithDetails{Zone: zone, FeatureDetails: details}, nil
}

// details returns nil when the zone has no feature row.
func (s *ZoneService) details(ctx context.Context, id uuid.UUID) (*domain.FeatureDetails, error) {
	fd, err := s.features.Get(ctx, id)
	if errors.Is(err, e.ErrNotFound) {
		return nil, nil
	}
	return fd, err
}

func (s *ZoneService) GetAll(ctx context.Context, q domain.ZoneQuery) ([]*domain.Zone, error) {
	const op = "service.ZoneService.GetAll"

	if q.Point != nil && !q.Point.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if q.Type != nil && !q.Type.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown zone type %q", op, e.ErrInvalidInput, *q.Type)
	}
	radius, err := radiusOrDefault(op, q.RadiusMeters)
	if err != nil {
		return nil, err
	}
	q.RadiusMeters = radius

	zones, err := s.zones.GetAll(ctx, q)
	if err != nil {
		s.logger.Error("list zones failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

func (s *ZoneService) GetZonesByType(ctx context.Context, zoneType domain.ZoneType) ([]*domain.Zone, error) {
	const op = "service.ZoneService.GetZonesByType"

	if !zoneType.Valid() {
		return nil, fmt.Errorf("%s: %w: unknown zone type %q", op, e.ErrInvalidInput, zoneType)
	}
	zones, err := s.zones.GetByType(ctx, zoneType)
	if err != nil {
		s.logger.Error("list zones by type failed", slog.String("op", op), slog.String("type", string(zoneType)), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

func (s *ZoneService) GetZonesByUser(ctx context.Context, userID string) ([]*domain.Zone, error) {
	const op = "service.ZoneService.GetZonesByUser"

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidUserID)
	}
	zones, err := s.zones.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("list user zones failed", slog.String("op", op), slog.String("user_id", userID), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

func (s *ZoneService) FindZonesInBoundingBox(ctx context.Context, req domain.BoundingBoxRequest) ([]*domain.Zone, error) {
	const op = "service.ZoneService.FindZonesInBoundingBox"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	box := geo.BoundingBox{MinLat: req.MinLat, MinLng: req.MinLng, MaxLat: req.MaxLat, MaxLng: req.MaxLng}

	zones, err := s.zones.GetByBoundingBox(ctx, box, req.Limit)
	if err != nil {
		s.logger.Error("bbox query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

func (s *ZoneService) FindNearbyZones(ctx context.Context, center geo.Point, radiusMeters float64) ([]*domain.NearbyZone, error) {
	const op = "service.ZoneService.FindNearbyZones"

	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	radiusMeters, err := radiusOrDefault(op, radiusMeters)
	if err != nil {
		return nil, err
	}

	zones, err := s.zones.GetNearby(ctx, center, radiusMeters)
	if err != nil {
		s.logger.Error("nearby query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

func (s *ZoneService) UpdateZoneCoordinates(ctx context.Context, id uuid.UUID, c domain.Coordinates) (*domain.Zone, error) {
	const op = "service.ZoneService.UpdateZoneCoordinates"

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrInvalidCoordinates, err)
	}
	zone, err := s.zones.UpdateCoordinates(ctx, id, c.Point())
	if err != nil {
		return nil, s.fail(op, id, err)
	}

	s.logger.Info("zone coordinates updated", slog.String("zone_id", id.String()))
	return zone, nil
}

func (s *ZoneService) GetZoneStatsNearby(ctx context.Context, center geo.Point, radiusMeters float64) (*domain.ZoneStats, error) {
	const op = "service.ZoneService.GetZoneStatsNearby"

	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	radiusMeters, err := radiusOrDefault(op, radiusMeters)
	if err != nil {
		return nil, err
	}

	st, err := s.zones.StatsNearby(ctx, center, radiusMeters)
	if err != nil {
		s.logger.Error("zone stats failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return st, nil
}

func (s *ZoneService) ListCriticalZones(ctx context.Context, limit int) ([]*domain.CriticalZone, error) {
	const op = "service.ZoneService.ListCriticalZones"

	if limit <= 0 {
		limit = domain.DefaultCriticalLimit
	}
	list, err := s.critical.ListCriticalZones(ctx, limit)
	if err != nil {
		s.logger.Error("list critical zones failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return list, nil
}

// FindZonesNearbyWithFilters searches a radius around f.Center, optionally
// narrowed to one reporter and a report-date window, nearest first.
func (s *ZoneService) FindZonesNearbyWithFilters(ctx context.Context, f domain.NearbyFilter) ([]*domain.NearbyZone, error) {
	const op = "service.ZoneService.FindZonesNearbyWithFilters"

	if !f.Center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if err := validator.ValidateStruct(f); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// YYYY-MM-DD orders lexically
	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return nil, fmt.Errorf("%s: %w: startDate after endDate", op, e.ErrInvalidInput)
	}
	if f.RadiusMeters == 0 {
		f.RadiusMeters = domain.DefaultRadiusMeters
	}
	if f.Limit == 0 {
		f.Limit = domain.DefaultFilterLimit
	}

	zones, err := s.zones.GetNearbyFiltered(ctx, f)
	if err != nil {
		s.logger.Error("filtered nearby query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return zones, nil
}

// GetZoneStats counts every zone, per reporter, and those created within
// the recent window.
func (s *ZoneService) GetZoneStats(ctx context.Context) (*domain.ZoneCounts, error) {
	const op = "service.ZoneService.GetZoneStats"

	counts, err := s.zones.Counts(ctx, s.now().Add(-domain.RecentZoneWindow))
	if err != nil {
		s.logger.Error("zone counts failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.Translate(op, err)
	}
	return counts, nil
}

// radiusOrDefault maps an omitted radius to the default and rejects values
// outside (0, MaxRadiusMeters], NaN and infinities included.
func radiusOrDefault(op string, r float64) (float64, error) {
	if r == 0 {
		return domain.DefaultRadiusMeters, nil
	}
	if err := validator.ValidateVar(r, "radius_m"); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return r, nil
}

// fail logs unexpected errors for a zone and translates them. Not found is
// an expected outcome and is not logged as an error.
func (s *ZoneService) fail(op string, id uuid.UUID, err error) error {
	if !errors.Is(err, e.ErrNotFound) {
		s.logger.Error("zone operation failed", slog.String("op", op), slog.String("zone_id", id.String()), slog.Any("error", err))
	}
	return e.Translate(op, err)
}
