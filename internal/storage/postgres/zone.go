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

type ZoneRepo struct {
	conn
}

// zoneColumns must stay in sync with scanZone.
const zoneColumns = `
	id,
	COALESCE(slug, '')        AS slug,
	date::text                AS date_s,
	hour::text                AS hour_s,
	COALESCE(description, '') AS description,
	ST_Y(coordinates::geometry) AS lat,
	ST_X(coordinates::geometry) AS lng,
	type::text                AS type_s,
	user_id,
	created_at,
	updated_at`

const pointParam = `ST_SetSRID(ST_MakePoint(%s, %s), 4326)::geography`

func point(lngArg, latArg string) string {
	return fmt.Sprintf(pointParam, lngArg, latArg)
}

func scanZone(row pgx.Row, extra ...any) (*domain.Zone, error) {
	var (
		z        domain.Zone
		lat, lng float64
		typ      string
	)
	dest := []any{
		&z.ID,
		&z.Slug,
		&z.Date,
		&z.Hour,
		&z.Description,
		&lat,
		&lng,
		&typ,
		&z.UserID,
		&z.CreatedAt,
		&z.UpdatedAt,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	z.Location = geo.MakePoint(lat, lng)
	z.Type = domain.ZoneType(typ)
	return &z, nil
}

func (p *ZoneRepo) collect(rows pgx.Rows, op string) ([]*domain.Zone, error) {
	defer rows.Close()

	zones := make([]*domain.Zone, 0, 16)
	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, err
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}
	return zones, nil
}

func (p *ZoneRepo) Create(ctx context.Context, zone *domain.Zone) error {
	const op = "postgres.Zone.Create"

	if zone == nil || zone.UserID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if err := geo.Validate(zone.Location.Lat(), zone.Location.Lng()); err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now().UTC()
	if zone.CreatedAt.IsZero() {
		zone.CreatedAt = now
	}
	zone.UpdatedAt = now
	zone.Type = zone.Type.OrDefault()

	query := `
		INSERT INTO zones (id, slug, date, hour, description, coordinates, type, user_id, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3::text::date, $4::text::time, $5, ` + point("$6", "$7") + `,
		        $8::text::zone_type, $9, $10, $11)
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.pool.Exec(ctx, query,
		zone.ID,
		zone.Slug,
		zone.Date,
		zone.Hour,
		zone.Description,
		zone.Location.X(),
		zone.Location.Y(),
		string(zone.Type),
		zone.UserID,
		zone.CreatedAt,
		zone.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", zone.UserID),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *ZoneRepo) Update(ctx context.Context, zone *domain.Zone) error {
	const op = "postgres.Zone.Update"

	if err := geo.Validate(zone.Location.Lat(), zone.Location.Lng()); err != nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
	}
	zone.Type = zone.Type.OrDefault()

	query := `
		UPDATE zones
		SET slug        = NULLIF($2, ''),
		    date        = $3::text::date,
		    hour        = $4::text::time,
		    description = $5,
		    coordinates = ` + point("$6", "$7") + `,
		    type        = $8::text::zone_type,
		    updated_at  = $9
		WHERE id = $1
		RETURNING created_at
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	updatedAt := time.Now().UTC()
	err := p.pool.QueryRow(ctx, query,
		zone.ID,
		zone.Slug,
		zone.Date,
		zone.Hour,
		zone.Description,
		zone.Location.X(),
		zone.Location.Y(),
		string(zone.Type),
		updatedAt,
	).Scan(&zone.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", zone.ID.String()))
		return e.WrapError(ctx, op, err)
	}
	zone.UpdatedAt = updatedAt

	return nil
}

func (p *ZoneRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Zone.Delete"

	const query = `DELETE FROM zones WHERE id = $1`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *ZoneRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error) {
	const op = "postgres.Zone.GetByID"

	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	z, err := scanZone(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return z, nil
}

func (p *ZoneRepo) GetByUserID(ctx context.Context, userID string) ([]*domain.Zone, error) {
	const op = "postgres.Zone.GetByUserID"

	query := `SELECT ` + zoneColumns + ` FROM zones WHERE user_id = $1 ORDER BY created_at DESC`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, userID)
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

func (p *ZoneRepo) GetByType(ctx context.Context, zoneType domain.ZoneType) ([]*domain.Zone, error) {
	const op = "postgres.Zone.GetByType"

	query := `SELECT ` + zoneColumns + ` FROM zones WHERE type = $1::text::zone_type ORDER BY created_at DESC`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, string(zoneType))
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
