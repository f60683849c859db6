package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"safezone/internal/domain"
	"safezone/pkg/e"
)

type FeatureDetailsRepo struct {
	conn
}

const featureColumns = `
	zone_id, zone_type::text,
	good_lighting, police_presence, public_transport,
	insufficient_lighting, lack_of_policing, abandoned_houses,
	created_at, updated_at`

func scanFeatures(row pgx.Row) (*domain.FeatureDetails, error) {
	var (
		fd  domain.FeatureDetails
		typ string
	)
	err := row.Scan(
		&fd.ZoneID, &typ,
		&fd.GoodLighting, &fd.PolicePresence, &fd.PublicTransport,
		&fd.InsufficientLighting, &fd.LackOfPolicing, &fd.AbandonedHouses,
		&fd.CreatedAt, &fd.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	fd.ZoneType = domain.ZoneType(typ)
	return &fd, nil
}

func (p *FeatureDetailsRepo) Create(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error) {
	const op = "postgres.FeatureDetails.Create"

	query := `
		INSERT INTO zone_feature_details (
			zone_id, zone_type,
			good_lighting, police_presence, public_transport,
			insufficient_lighting, lack_of_policing, abandoned_houses)
		VALUES ($1, $2::text::zone_type, $3, $4, $5, $6, $7, $8)
		RETURNING ` + featureColumns

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	fd, err := scanFeatures(p.pool.QueryRow(ctx, query,
		zoneID, string(zoneType.OrDefault()),
		f.GoodLighting, f.PolicePresence, f.PublicTransport,
		f.InsufficientLighting, f.LackOfPolicing, f.AbandonedHouses,
	))
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("zone_id", zoneID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return fd, nil
}

// Update writes the details of a zone, creating the row when the zone had
// none.
func (p *FeatureDetailsRepo) Update(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error) {
	const op = "postgres.FeatureDetails.Update"

	query := `
		INSERT INTO zone_feature_details (
			zone_id, zone_type,
			good_lighting, police_presence, public_transport,
			insufficient_lighting, lack_of_policing, abandoned_houses)
		VALUES ($1, $2::text::zone_type, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (zone_id) DO UPDATE SET
			zone_type             = EXCLUDED.zone_type,
			good_lighting         = EXCLUDED.good_lighting,
			police_presence       = EXCLUDED.police_presence,
			public_transport      = EXCLUDED.public_transport,
			insufficient_lighting = EXCLUDED.insufficient_lighting,
			lack_of_policing      = EXCLUDED.lack_of_policing,
			abandoned_houses      = EXCLUDED.abandoned_houses,
			updated_at            = now()
		RETURNING ` + featureColumns

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	fd, err := scanFeatures(p.pool.QueryRow(ctx, query,
		zoneID, string(zoneType.OrDefault()),
		f.GoodLighting, f.PolicePresence, f.PublicTransport,
		f.InsufficientLighting, f.LackOfPolicing, f.AbandonedHouses,
	))
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("zone_id", zoneID.String()))
		return nil, e.WrapError(ctx, op, err)
	}
	return fd, nil
}

func (p *FeatureDetailsRepo) Get(ctx context.Context, zoneID uuid.UUID) (*domain.FeatureDetails, error) {
	const op = "postgres.FeatureDetails.Get"

	query := `SELECT ` + featureColumns + ` FROM zone_feature_details WHERE zone_id = $1`

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	fd, err := scanFeatures(p.pool.QueryRow(ctx, query, zoneID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return fd, nil
}
