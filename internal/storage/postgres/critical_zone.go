package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/e"
	"safezone/pkg/geo"
)

type CriticalZoneRepo struct {
	conn
}

func (p *CriticalZoneRepo) CreateCriticalZone(ctx context.Context, cz *domain.CriticalZone) error {
	const op = "postgres.CriticalZone.Create"

	if !cz.Location.Valid() {
		return e.Wrap(op, e.ErrInvalidCoordinates)
	}
	if cz.ID == uuid.Nil {
		cz.ID = uuid.New()
	}
	if cz.CreatedAt.IsZero() {
		cz.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO critical_zones (id, coordinates, cell_token, created_at)
		VALUES ($1, ` + point("$2", "$3") + `, $4, $5)
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	if _, err := p.pool.Exec(ctx, query, cz.ID, cz.Location.X(), cz.Location.Y(), cz.CellToken, cz.CreatedAt); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *CriticalZoneRepo) ListCriticalZones(ctx context.Context, limit int) ([]*domain.CriticalZone, error) {
	const op = "postgres.CriticalZone.List"

	if limit <= 0 {
		limit = domain.DefaultCriticalLimit
	}

	const query = `
		SELECT id, ST_Y(coordinates::geometry), ST_X(coordinates::geometry), cell_token, created_at
		FROM critical_zones
		ORDER BY created_at DESC
		LIMIT $1
	`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.CriticalZone, 0, limit)
	for rows.Next() {
		var (
			cz       domain.CriticalZone
			lat, lng float64
		)
		if err := rows.Scan(&cz.ID, &lat, &lng, &cz.CellToken, &cz.CreatedAt); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		cz.Location = geo.MakePoint(lat, lng)
		out = append(out, &cz)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
