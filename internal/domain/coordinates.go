package domain

import "safezone/pkg/geo"

// Coordinates is the public {latitude, longitude} shape.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"lat"`
	Longitude float64 `json:"longitude" validate:"lng"`
}

func (c Coordinates) Point() geo.Point {
	return geo.MakePoint(c.Latitude, c.Longitude)
}

func (c Coordinates) Validate() error {
	return geo.Validate(c.Latitude, c.Longitude)
}

func CoordinatesOf(p geo.Point) Coordinates {
	return Coordinates{Latitude: p.Lat(), Longitude: p.Lng()}
}
