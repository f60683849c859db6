package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/pkg/geo"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	Update(ctx context.Context, zone *domain.Zone) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Zone, error)
	GetByUserID(ctx context.Context, userID string) ([]*domain.Zone, error)
	GetByType(ctx context.Context, zoneType domain.ZoneType) ([]*domain.Zone, error)
	GetAll(ctx context.Context, q domain.ZoneQuery) ([]*domain.Zone, error)
	GetByBoundingBox(ctx context.Context, box geo.BoundingBox, limit int) ([]*domain.Zone, error)
	GetNearby(ctx context.Context, center geo.Point, radiusMeters float64) ([]*domain.NearbyZone, error)
	GetCenter(ctx context.Context, center geo.Point, zoneType domain.ZoneType, radiusMeters float64) (*geo.Point, error)
	UpdateCoordinates(ctx context.Context, id uuid.UUID, p geo.Point) (*domain.Zone, error)
	StatsNearby(ctx context.Context, center geo.Point, radiusMeters float64) (*domain.ZoneStats, error)
	GetNearbyFiltered(ctx context.Context, f domain.NearbyFilter) ([]*domain.NearbyZone, error)
	Counts(ctx context.Context, recentSince time.Time) (*domain.ZoneCounts, error)
}

type CriticalZoneRepository interface {
	CreateCriticalZone(ctx context.Context, cz *domain.CriticalZone) error
	ListCriticalZones(ctx context.Context, limit int) ([]*domain.CriticalZone, error)
}

type FeatureDetailsRepository interface {
	Create(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error)
	Update(ctx context.Context, zoneID uuid.UUID, zoneType domain.ZoneType, f domain.Features) (*domain.FeatureDetails, error)
	Get(ctx context.Context, zoneID uuid.UUID) (*domain.FeatureDetails, error)
}

type ContactRepository interface {
	FindContactsByUserID(ctx context.Context, userID string) ([]domain.Contact, error)
}

// SMSSender is the outbound SMS capability.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.CriticalZoneEvent) error
}

// EventSource is the consuming side of the critical-zone event queue.
type EventSource interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.CriticalZoneEvent, error)
}

// ClusterGuard hands out at most one claim per key for a while. Acquire
// returns false when somebody else already holds the key.
type ClusterGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
}

type Service struct {
	Zones  *ZoneService
	Alerts *AlertService
}

func NewService(zones *ZoneService, alerts *AlertService) *Service {
	return &Service{
		Zones:  zones,
		Alerts: alerts,
	}
}
