package postgres

import "safezone/internal/service"

var (
	_ service.ZoneRepository           = (*ZoneRepo)(nil)
	_ service.CriticalZoneRepository   = (*CriticalZoneRepo)(nil)
	_ service.FeatureDetailsRepository = (*FeatureDetailsRepo)(nil)
	_ service.ContactRepository        = (*ContactRepo)(nil)
)

func (p *Postgres) Zones() service.ZoneRepository                 { return p.Zone }
func (p *Postgres) CriticalZones() service.CriticalZoneRepository { return p.Critical }
func (p *Postgres) Features() service.FeatureDetailsRepository    { return p.FeatureDetails }
func (p *Postgres) Contacts() service.ContactRepository           { return p.Contact }
