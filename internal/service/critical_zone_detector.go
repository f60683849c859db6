package service

import (
	"context"
	"log/slog"
	"time"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
)

const (
	DefaultCriticalThreshold = 10
	criticalCellLevel        = 13
	criticalKeyPrefix        = "critical_zone:"
)

// Detection is the outcome of one detector run.
type Detection struct {
	Detected     bool
	Reporters    int
	CriticalZone *domain.CriticalZone
}

type DetectorOption func(*CriticalZoneDetector)

// WithClusterGuard lets only one detector per S2 cell insert a critical zone
// while the guard key lives.
func WithClusterGuard(g ClusterGuard) DetectorOption {
	return func(d *CriticalZoneDetector) { d.guard = g }
}

func WithEventQueue(q EventQueue) DetectorOption {
	return func(d *CriticalZoneDetector) { d.events = q }
}

type CriticalZoneDetector struct {
	zones     ZoneRepository
	critical  CriticalZoneRepository
	guard     ClusterGuard
	events    EventQueue
	logger    *slog.Logger
	threshold int
	radius    float64
}

func NewCriticalZoneDetector(
	zones ZoneRepository,
	critical CriticalZoneRepository,
	logger *slog.Logger,
	threshold int,
	radiusMeters float64,
	opts ...DetectorOption,
) *CriticalZoneDetector {
	if threshold <= 0 {
		threshold = DefaultCriticalThreshold
	}
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultRadiusMeters
	}
	d := &CriticalZoneDetector{
		zones:     zones,
		critical:  critical,
		logger:    logger,
		threshold: threshold,
		radius:    radiusMeters,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect counts distinct users with a DANGER zone near trigger and, once the
// threshold is reached, records the cluster centroid as a critical zone.
func (d *CriticalZoneDetector) Detect(ctx context.Context, trigger *domain.Zone) (Detection, error) {
	const op = "service.CriticalZoneDetector.Detect"

	danger := domain.ZoneDanger
	nearby, err := d.zones.GetAll(ctx, domain.ZoneQuery{
		Point:        &trigger.Location,
		Type:         &danger,
		RadiusMeters: d.radius,
	})
	if err != nil {
		d.logger.Error("nearby lookup failed", slog.String("op", op), slog.String("zone_id", trigger.ID.String()), slog.Any("error", err))
		return Detection{}, e.Translate(op, err)
	}

	res := Detection{Reporters: len(nearby)}
	if res.Reporters < d.threshold {
		d.logger.Debug("below critical threshold",
			slog.String("zone_id", trigger.ID.String()),
			slog.Int("reporters", res.Reporters),
			slog.Int("threshold", d.threshold),
		)
		return res, nil
	}
	res.Detected = true

	center, err := d.zones.GetCenter(ctx, trigger.Location, domain.ZoneDanger, d.radius)
	if err != nil {
		d.logger.Error("centroid lookup failed", slog.String("op", op), slog.String("zone_id", trigger.ID.String()), slog.Any("error", err))
		return Detection{}, e.Translate(op, err)
	}
	if center == nil {
		d.logger.Warn("cluster without centroid", slog.String("zone_id", trigger.ID.String()))
		return res, nil
	}

	token := geo.CellToken(*center, criticalCellLevel)
	if !d.claim(ctx, token) {
		d.logger.Info("critical zone already claimed", slog.String("cell", token))
		return res, nil
	}

	cz := &domain.CriticalZone{Location: *center, CellToken: token}
	if err := d.critical.CreateCriticalZone(ctx, cz); err != nil {
		d.logger.Error("create critical zone failed", slog.String("op", op), slog.String("cell", token), slog.Any("error", err))
		return Detection{}, e.Translate(op, err)
	}
	res.CriticalZone = cz

	d.logger.Info("critical zone created",
		slog.String("critical_zone_id", cz.ID.String()),
		slog.String("cell", token),
		slog.Int("reporters", res.Reporters),
	)

	d.publish(ctx, cz, trigger, res.Reporters)
	return res, nil
}

// claim reports whether this run may insert. Guard errors fail open.
func (d *CriticalZoneDetector) claim(ctx context.Context, token string) bool {
	if d.guard == nil {
		return true
	}
	ok, err := d.guard.Acquire(ctx, criticalKeyPrefix+token)
	if err != nil {
		d.logger.Warn("cluster guard unavailable", slog.String("cell", token), slog.Any("error", err))
		return true
	}
	return ok
}

func (d *CriticalZoneDetector) publish(ctx context.Context, cz *domain.CriticalZone, trigger *domain.Zone, reporters int) {
	if d.events == nil {
		return
	}
	ev := domain.CriticalZoneEvent{
		Event:          domain.EventCriticalZoneCreated,
		CriticalZoneID: cz.ID,
		Latitude:       cz.Location.Lat(),
		Longitude:      cz.Location.Lng(),
		CellToken:      cz.CellToken,
		TriggerZoneID:  trigger.ID,
		Reporters:      reporters,
		DetectedAt:     time.Now().UTC(),
	}
	if err := d.events.Enqueue(ctx, ev); err != nil {
		d.logger.Error("enqueue critical zone event failed", slog.String("critical_zone_id", cz.ID.String()), slog.Any("error", err))
		return
	}
	d.logger.Info("critical zone event enqueued", slog.String("critical_zone_id", cz.ID.String()))
}
