package domain

import (
	"time"

	"github.com/google/uuid"

	"safezone/pkg/geo"
)

type ZoneType string

const (
	DefaultRadiusMeters  = 1000.0
	DefaultBoundingLimit = 50
	MaxBoundingLimit     = 500
	DefaultCriticalLimit = 50
	DefaultFilterLimit   = 10
	MaxRadiusMeters      = 50_000.0 // radius_m validator bound
	RecentZoneWindow     = 7 * 24 * time.Hour
)

const (
	ZoneSafe   ZoneType = "SAFE"
	ZoneDanger ZoneType = "DANGER"
)

func (t ZoneType) Valid() bool {
	return t == ZoneSafe || t == ZoneDanger
}

// OrDefault returns SAFE for the empty type.
func (t ZoneType) OrDefault() ZoneType {
	if t == "" {
		return ZoneSafe
	}
	return t
}

// Zone is a geotagged incident report. Location is the only stored
// representation of its position; Coordinates derives the public shape.
type Zone struct {
	ID          uuid.UUID
	Slug        string
	Date        string
	Hour        string
	Description string
	Location    geo.Point
	Type        ZoneType
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (z *Zone) Coordinates() Coordinates {
	return CoordinatesOf(z.Location)
}

// NearbyZone is a zone annotated with its distance to the query point.
type NearbyZone struct {
	Zone
	DistanceMeters float64
}

type FeatureDetails struct {
	ZoneID               uuid.UUID `json:"zoneId"`
	ZoneType             ZoneType  `json:"zoneType"`
	GoodLighting         bool      `json:"goodLighting"`
	PolicePresence       bool      `json:"policePresence"`
	PublicTransport      bool      `json:"publicTransport"`
	InsufficientLighting bool      `json:"insufficientLighting"`
	LackOfPolicing       bool      `json:"lackOfPolicing"`
	AbandonedHouses      bool      `json:"abandonedHouses"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Features is the caller-supplied part of FeatureDetails.
type Features struct {
	GoodLighting         bool `json:"goodLighting"`
	PolicePresence       bool `json:"policePresence"`
	PublicTransport      bool `json:"publicTransport"`
	InsufficientLighting bool `json:"insufficientLighting"`
	LackOfPolicing       bool `json:"lackOfPolicing"`
	AbandonedHouses      bool `json:"abandonedHouses"`
}

func (f FeatureDetails) Features() Features {
	return Features{
		GoodLighting:         f.GoodLighting,
		PolicePresence:       f.PolicePresence,
		PublicTransport:      f.PublicTransport,
		InsufficientLighting: f.InsufficientLighting,
		LackOfPolicing:       f.LackOfPolicing,
		AbandonedHouses:      f.AbandonedHouses,
	}
}

func (f *FeatureDetails) Apply(src Features) {
	f.GoodLighting = src.GoodLighting
	f.PolicePresence = src.PolicePresence
	f.PublicTransport = src.PublicTransport
	f.InsufficientLighting = src.InsufficientLighting
	f.LackOfPolicing = src.LackOfPolicing
	f.AbandonedHouses = src.AbandonedHouses
}

type ZoneWithDetails struct {
	Zone           *Zone
	FeatureDetails *FeatureDetails
}

// CriticalZone marks the centroid of a corroborated DANGER cluster.
type CriticalZone struct {
	ID        uuid.UUID
	Location  geo.Point
	CellToken string
	CreatedAt time.Time
}

type ZoneStats struct {
	TotalZones  int64   `json:"totalZones"`
	AvgDistance float64 `json:"avgDistance"`
	MinDistance float64 `json:"minDistance"`
	MaxDistance float64 `json:"maxDistance"`
}

// ZoneQuery drives the store's list query. With Point nil every zone is
// returned newest first; with Point set the store returns the nearest zone
// of each reporting user inside RadiusMeters.
type ZoneQuery struct {
	Point        *geo.Point
	Type         *ZoneType
	RadiusMeters float64
}

// NearbyFilter narrows a radius search. Empty fields are not applied; dates
// are inclusive and compared against the report date.
type NearbyFilter struct {
	Center       geo.Point `validate:"-"`
	RadiusMeters float64   `validate:"omitempty,radius_m"`
	UserID       string    `validate:"omitempty,max=200"`
	StartDate    string    `validate:"omitempty,datetime=2006-01-02"`
	EndDate      string    `validate:"omitempty,datetime=2006-01-02"`
	Limit        int       `validate:"min=0,max=500"`
}

// ZoneCounts summarises every stored zone. RecentZones counts zones created
// inside RecentZoneWindow.
type ZoneCounts struct {
	Total       int64            `json:"total"`
	ByUser      map[string]int64 `json:"byUser"`
	RecentZones int64            `json:"recentZones"`
}
