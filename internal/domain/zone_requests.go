package domain

type CreateZoneRequest struct {
	Slug           string       `json:"slug" validate:"omitempty,max=200"`
	Date           string       `json:"date" validate:"required,datetime=2006-01-02"`
	Hour           string       `json:"hour" validate:"required,hour"`
	Description    string       `json:"description" validate:"required,max=2000"`
	Type           ZoneType     `json:"type" validate:"omitempty,zone_type"`
	Coordinates    *Coordinates `json:"coordinates" validate:"required"`
	FeatureDetails *Features    `json:"featureDetails"`
	UserID         string       `json:"-" validate:"required"`
}

// ZonePatch carries the fields of an update. A nil field keeps the stored
// value.
type ZonePatch struct {
	Slug           *string      `json:"slug" validate:"omitempty,max=200"`
	Date           *string      `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Hour           *string      `json:"hour" validate:"omitempty,hour"`
	Description    *string      `json:"description" validate:"omitempty,max=2000"`
	Type           *ZoneType    `json:"type" validate:"omitempty,zone_type"`
	Coordinates    *Coordinates `json:"coordinates"`
	FeatureDetails *Features    `json:"featureDetails"`
}

// Apply merges the patch over z field by field.
func (p ZonePatch) Apply(z *Zone) {
	if p.Slug != nil {
		z.Slug = *p.Slug
	}
	if p.Date != nil {
		z.Date = *p.Date
	}
	if p.Hour != nil {
		z.Hour = *p.Hour
	}
	if p.Description != nil {
		z.Description = *p.Description
	}
	if p.Type != nil {
		z.Type = *p.Type
	}
	if p.Coordinates != nil {
		z.Location = p.Coordinates.Point()
	}
}

type CreateZoneResult struct {
	Zone            *Zone
	FeatureDetails  *FeatureDetails
	ClusterDetected bool
	CriticalZone    *CriticalZone
	Message         string
}

type BoundingBoxRequest struct {
	MinLat float64 `validate:"lat"`
	MinLng float64 `validate:"lng"`
	MaxLat float64 `validate:"lat,gtefield=MinLat"`
	MaxLng float64 `validate:"lng,gtefield=MinLng"`
	Limit  int     `validate:"min=0,max=500"`
}
