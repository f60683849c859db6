// Package memory is an in-process implementation of the zone, feature,
// critical-zone and contact stores. It mirrors the PostGIS queries with
// pkg/geo and is used for local runs and tests.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"safezone/internal/domain"
	"safezone/internal/service"
)

var (
	_ service.ZoneRepository           = (*ZoneRepo)(nil)
	_ service.CriticalZoneRepository   = (*CriticalZoneRepo)(nil)
	_ service.FeatureDetailsRepository = (*FeatureDetailsRepo)(nil)
	_ service.ContactRepository        = (*ContactRepo)(nil)
)

type db struct {
	mu       sync.RWMutex
	zones    map[uuid.UUID]domain.Zone
	features map[uuid.UUID]domain.FeatureDetails
	critical []domain.CriticalZone
	groups   map[uuid.UUID]domain.ContactGroup
	contacts []domain.Contact
}

type Memory struct {
	Zone           *ZoneRepo
	Critical       *CriticalZoneRepo
	FeatureDetails *FeatureDetailsRepo
	Contact        *ContactRepo
}

func New() *Memory {
	d := &db{
		zones:    make(map[uuid.UUID]domain.Zone),
		features: make(map[uuid.UUID]domain.FeatureDetails),
		groups:   make(map[uuid.UUID]domain.ContactGroup),
	}
	return &Memory{
		Zone:           &ZoneRepo{db: d},
		Critical:       &CriticalZoneRepo{db: d},
		FeatureDetails: &FeatureDetailsRepo{db: d},
		Contact:        &ContactRepo{db: d},
	}
}

func (m *Memory) Zones() service.ZoneRepository                 { return m.Zone }
func (m *Memory) CriticalZones() service.CriticalZoneRepository { return m.Critical }
func (m *Memory) Features() service.FeatureDetailsRepository    { return m.FeatureDetails }
func (m *Memory) Contacts() service.ContactRepository           { return m.Contact }
