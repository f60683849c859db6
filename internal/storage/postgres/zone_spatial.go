package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
)

// GetAll without a point lists every zone newest first. With a point it keeps
// the nearest zone of each user inside the radius, nearest first.
func (p *ZoneRepo) GetAll(ctx context.Context, q domain.ZoneQuery) ([]*domain.Zone, error) {
	const op = "postgres.Zone.GetAll"

	var typ *string
	if q.Type != nil {
		s := string(*q.Type)
		typ = &s
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var (
		rows pgx.Rows
		err  error
	)
	if q.Point == nil {
		query := `
			SELECT ` + zoneColumns + `
			FROM zones
			WHERE ($1::text IS NULL OR type = $1::text::zone_type)
			ORDER BY created_at DESC
		`
		rows, err = p.pool.Query(ctx, query, typ)
	} else {
		if !q.Point.Valid() {
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
		}
		radius := q.RadiusMeters
		if radius <= 0 {
			radius = domain.DefaultRadiusMeters
		}
		query := `
			WITH ranked AS (
				SELECT z.*,
				       ST_Distance(z.coordinates, ` + point("$1", "$2") + `) AS distance,
				       ROW_NUMBER() OVER (
				           PARTITION BY z.user_id
				           ORDER BY ST_Distance(z.coordinates, ` + point("$1", "$2") + `), z.created_at DESC
				       ) AS rn
				FROM zones z
				WHERE ST_DWithin(z.coordinates, ` + point("$1", "$2") + `, $3)
				  AND ($4::text IS NULL OR z.type = $4::text::zone_type)
			)
			SELECT ` + zoneColumns + `
			FROM ranked
			WHERE rn = 1
			ORDER BY distance ASC
		`
		rows, err = p.pool.Query(ctx, query, q.Point.X(), q.Point.Y(), radius, typ)
	}
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	zones, err := p.collect(rows, op)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

// GetByBoundingBox compares in planar lat/lng space so the result matches
// geo.BoundingBox.Contains exactly.
func (p *ZoneRepo) GetByBoundingBox(ctx context.Context, box geo.BoundingBox, limit int) ([]*domain.Zone, error) {
	const op = "postgres.Zone.GetByBoundingBox"

	if err := box.Validate(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	if limit <= 0 {
		limit = domain.DefaultBoundingLimit
	}
	if limit > domain.MaxBoundingLimit {
		limit = domain.MaxBoundingLimit
	}

	query := `
		SELECT ` + zoneColumns + `
		FROM zones
		WHERE ST_Intersects(coordinates::geometry, ST_MakeEnvelope($1, $2, $3, $4, 4326))
		ORDER BY created_at DESC
		LIMIT $5
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, box.MinLng, box.MinLat, box.MaxLng, box.MaxLat, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	zones, err := p.collect(rows, op)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return zones, nil
}

// GetNearby returns DANGER zones within radius, one per distinct position,
// nearest first.
func (p *ZoneRepo) GetNearby(ctx context.Context, center geo.Point, radiusMeters float64) ([]*domain.NearbyZone, error) {
	const op = "postgres.Zone.GetNearby"

	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultRadiusMeters
	}

	query := `
		SELECT ` + zoneColumns + `, distance
		FROM (
			SELECT DISTINCT ON (ST_X(z.coordinates::geometry), ST_Y(z.coordinates::geometry))
			       z.*,
			       ST_Distance(z.coordinates, ` + point("$1", "$2") + `) AS distance
			FROM zones z
			WHERE z.type = 'DANGER'
			  AND ST_DWithin(z.coordinates, ` + point("$1", "$2") + `, $3)
			ORDER BY ST_X(z.coordinates::geometry), ST_Y(z.coordinates::geometry), z.created_at DESC
		) d
		ORDER BY distance ASC
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, center.X(), center.Y(), radiusMeters)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.NearbyZone, 0, 16)
	for rows.Next() {
		var dist float64
		z, err := scanZone(rows, &dist)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &domain.NearbyZone{Zone: *z, DistanceMeters: dist})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

// GetCenter returns the centroid of the matching zones, or nil when there
// are none.
func (p *ZoneRepo) GetCenter(ctx context.Context, center geo.Point, zoneType domain.ZoneType, radiusMeters float64) (*geo.Point, error) {
	const op = "postgres.Zone.GetCenter"

	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultRadiusMeters
	}

	query := `
		SELECT ST_Y(c), ST_X(c)
		FROM (
			SELECT ST_Centroid(ST_Collect(coordinates::geometry)) AS c
			FROM zones
			WHERE type = $4::text::zone_type
			  AND ST_DWithin(coordinates, ` + point("$1", "$2") + `, $3)
		) s
		WHERE c IS NOT NULL
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var lat, lng float64
	err := p.pool.QueryRow(ctx, query, center.X(), center.Y(), radiusMeters, string(zoneType)).Scan(&lat, &lng)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	c := geo.MakePoint(lat, lng)
	return &c, nil
}

func (p *ZoneRepo) UpdateCoordinates(ctx context.Context, id uuid.UUID, pt geo.Point) (*domain.Zone, error) {
	const op = "postgres.Zone.UpdateCoordinates"

	if !pt.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	query := `
		UPDATE zones
		SET coordinates = ` + point("$2", "$3") + `,
		    updated_at  = now()
		WHERE id = $1
		RETURNING ` + zoneColumns

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	z, err := scanZone(p.pool.QueryRow(ctx, query, id, pt.X(), pt.Y()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return z, nil
}

func (p *ZoneRepo) StatsNearby(ctx context.Context, center geo.Point, radiusMeters float64) (*domain.ZoneStats, error) {
	const op = "postgres.Zone.StatsNearby"

	if !center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if radiusMeters <= 0 {
		radiusMeters = domain.DefaultRadiusMeters
	}

	query := `
		SELECT COUNT(*),
		       COALESCE(AVG(d), 0),
		       COALESCE(MIN(d), 0),
		       COALESCE(MAX(d), 0)
		FROM (
			SELECT ST_Distance(coordinates, ` + point("$1", "$2") + `) AS d
			FROM zones
			WHERE ST_DWithin(coordinates, ` + point("$1", "$2") + `, $3)
		) s
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var st domain.ZoneStats
	err := p.pool.QueryRow(ctx, query, center.X(), center.Y(), radiusMeters).
		Scan(&st.TotalZones, &st.AvgDistance, &st.MinDistance, &st.MaxDistance)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return &st, nil
}

// GetNearbyFiltered lists zones of any type inside f.RadiusMeters, optionally
// limited to one user and a report-date window, nearest first.
func (p *ZoneRepo) GetNearbyFiltered(ctx context.Context, f domain.NearbyFilter) ([]*domain.NearbyZone, error) {
	const op = "postgres.Zone.GetNearbyFiltered"

	if !f.Center.Valid() {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	if f.RadiusMeters <= 0 {
		f.RadiusMeters = domain.DefaultRadiusMeters
	}
	if f.Limit <= 0 {
		f.Limit = domain.DefaultFilterLimit
	}

	query := `
		SELECT ` + zoneColumns + `,
		       ST_Distance(coordinates, ` + point("$1", "$2") + `) AS distance
		FROM zones
		WHERE ST_DWithin(coordinates, ` + point("$1", "$2") + `, $3)
		  AND ($4::text IS NULL OR user_id = $4::text)
		  AND ($5::text IS NULL OR date >= $5::text::date)
		  AND ($6::text IS NULL OR date <= $6::text::date)
		ORDER BY distance ASC, created_at DESC
		LIMIT $7
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query,
		f.Center.X(),
		f.Center.Y(),
		f.RadiusMeters,
		nullable(f.UserID),
		nullable(f.StartDate),
		nullable(f.EndDate),
		f.Limit,
	)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.NearbyZone, 0, f.Limit)
	for rows.Next() {
		var dist float64
		z, err := scanZone(rows, &dist)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &domain.NearbyZone{Zone: *z, DistanceMeters: dist})
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

// Counts totals the zones per user. Zones created after recentSince are
// counted again in RecentZones.
func (p *ZoneRepo) Counts(ctx context.Context, recentSince time.Time) (*domain.ZoneCounts, error) {
	const op = "postgres.Zone.Counts"

	const query = `
		SELECT user_id,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE created_at > $1)
		FROM zones
		GROUP BY user_id
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, recentSince)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	counts := &domain.ZoneCounts{ByUser: make(map[string]int64)}
	for rows.Next() {
		var (
			userID        string
			total, recent int64
		)
		if err := rows.Scan(&userID, &total, &recent); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		counts.ByUser[userID] = total
		counts.Total += total
		counts.RecentZones += recent
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return counts, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
