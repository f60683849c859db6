// Package geo holds the pure geometry helpers shared by the zone store
// implementations and the services: point construction, WKT encoding,
// ellipsoidal distance and bounding-box containment.
//
// Points are stored x=longitude, y=latitude, the same order PostGIS uses for
// ST_MakePoint and WKT.
package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// SRID of every geometry handled by the service (WGS 84).
const SRID = 4326

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidPoint       = errors.New("invalid point")
	ErrInvalidBoundingBox = errors.New("invalid bounding box")
)

// Point is a WGS 84 position.
type Point struct {
	x float64 // longitude
	y float64 // latitude
}

// MakePoint builds a point from latitude and longitude. Note the argument
// order differs from the internal (x, y) order.
func MakePoint(lat, lng float64) Point {
	return Point{x: lng, y: lat}
}

func (p Point) X() float64   { return p.x }
func (p Point) Y() float64   { return p.y }
func (p Point) Lat() float64 { return p.y }
func (p Point) Lng() float64 { return p.x }

func (p Point) Valid() bool {
	return Validate(p.y, p.x) == nil
}

func (p Point) String() string {
	return p.WKT()
}

// WKT renders the point as POINT(lng lat).
func (p Point) WKT() string {
	return "POINT(" + formatFloat(p.x) + " " + formatFloat(p.y) + ")"
}

func (p Point) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(p.y, p.x)
}

var pointRe = regexp.MustCompile(`^\s*(?:SRID=\d+;)?\s*POINT\s*\(\s*([-+0-9.eE]+)\s+([-+0-9.eE]+)\s*\)\s*$`)

// ParsePoint is the inverse of Point.WKT.
func ParsePoint(wkt string) (Point, error) {
	m := pointRe.FindStringSubmatch(wkt)
	if m == nil {
		return Point{}, fmt.Errorf("%w: %q", ErrInvalidPoint, wkt)
	}
	x, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	y, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	if err := Validate(y, x); err != nil {
		return Point{}, err
	}
	return Point{x: x, y: y}, nil
}

// Validate checks latitude in [-90, 90] and longitude in [-180, 180].
func Validate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidCoordinates, lat, lng)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WGS 84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563
	wgs84B = wgs84A * (1 - wgs84F)

	// mean Earth radius, used only when Vincenty does not converge
	meanEarthRadius = 6371008.8
)

// DistanceMeters returns the geodesic distance on the WGS 84 ellipsoid, the
// same measure PostGIS uses for geography columns.
func DistanceMeters(a, b Point) float64 {
	if a == b {
		return 0
	}
	if d, ok := vincenty(a, b); ok {
		return d
	}
	return a.latLng().Distance(b.latLng()).Radians() * meanEarthRadius
}

// WithinRadius reports whether b lies within radiusMeters of a (inclusive).
func WithinRadius(a, b Point, radiusMeters float64) bool {
	if radiusMeters < 0 {
		return false
	}
	return DistanceMeters(a, b) <= radiusMeters
}

func vincenty(p1, p2 Point) (float64, bool) {
	const (
		maxIter   = 200
		tolerance = 1e-12
	)

	toRad := math.Pi / 180
	L := (p2.x - p1.x) * toRad
	U1 := math.Atan((1 - wgs84F) * math.Tan(p1.y*toRad))
	U2 := math.Atan((1 - wgs84F) * math.Tan(p2.y*toRad))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	lambda := L
	var (
		sinSigma, cosSigma, sigma float64
		cosSqAlpha, cos2SigmaM    float64
	)
	converged := false
	for i := 0; i < maxIter; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		t1 := cosU2 * sinLambda
		t2 := cosU1*sinU2 - sinU1*cosU2*cosLambda
		sinSigma = math.Sqrt(t1*t1 + t2*t2)
		if sinSigma == 0 {
			return 0, true
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			// both points on the equator
			cos2SigmaM = 0
		}
		C := wgs84F / 16 * cosSqAlpha * (4 + wgs84F*(4-3*cosSqAlpha))
		prev := lambda
		lambda = L + (1-C)*wgs84F*sinAlpha*
			(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-prev) < tolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, false
	}

	uSq := cosSqAlpha * (wgs84A*wgs84A - wgs84B*wgs84B) / (wgs84B * wgs84B)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	return wgs84B * A * (sigma - deltaSigma), true
}

// BoundingBox is an axis-aligned lat/lng envelope. Boxes crossing the
// antimeridian are not supported.
type BoundingBox struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

func (b BoundingBox) Validate() error {
	if err := Validate(b.MinLat, b.MinLng); err != nil {
		return err
	}
	if err := Validate(b.MaxLat, b.MaxLng); err != nil {
		return err
	}
	if b.MinLat > b.MaxLat || b.MinLng > b.MaxLng {
		return fmt.Errorf("%w: min must not exceed max", ErrInvalidBoundingBox)
	}
	return nil
}

func (b BoundingBox) rect() s2.Rect {
	lo := s2.LatLngFromDegrees(b.MinLat, b.MinLng)
	hi := s2.LatLngFromDegrees(b.MaxLat, b.MaxLng)
	return s2.Rect{
		Lat: r1.Interval{Lo: lo.Lat.Radians(), Hi: hi.Lat.Radians()},
		Lng: s1.IntervalFromEndpoints(lo.Lng.Radians(), hi.Lng.Radians()),
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return b.rect().ContainsLatLng(p.latLng())
}

// Centroid returns the planar mean of points, which is what
// ST_Centroid(ST_Collect(geom)) yields for a set of points.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.x
		sy += p.y
	}
	n := float64(len(points))
	return Point{x: sx / n, y: sy / n}, true
}

// CellToken returns the S2 cell token containing p at the given level.
// Level 13 cells are roughly 1 km across.
func CellToken(p Point, level int) string {
	if level < 0 {
		level = 0
	}
	if level > s2.MaxLevel {
		level = s2.MaxLevel
	}
	return s2.CellIDFromLatLng(p.latLng()).Parent(level).ToToken()
}
