package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakePoint_AxisOrder(t *testing.T) {
	p := MakePoint(49.281441, -123.055913)

	assert.Equal(t, -123.055913, p.X())
	assert.Equal(t, 49.281441, p.Y())
	assert.Equal(t, "POINT(-123.055913 49.281441)", p.WKT())
}

func TestParsePoint_RoundTrip(t *testing.T) {
	cases := []struct{ lat, lng float64 }{
		{0, 0},
		{-23.5505, -46.6333},
		{90, 180},
		{-90, -180},
		{55.751244, 37.618423},
		{1e-7, -1e-7},
	}
	for _, c := range cases {
		got, err := ParsePoint(MakePoint(c.lat, c.lng).WKT())
		require.NoError(t, err)
		assert.InDelta(t, c.lat, got.Lat(), 1e-12)
		assert.InDelta(t, c.lng, got.Lng(), 1e-12)
	}
}

func TestParsePoint_AcceptsEWKT(t *testing.T) {
	got, err := ParsePoint("SRID=4326;POINT(13.4 52.5)")
	require.NoError(t, err)
	assert.Equal(t, 52.5, got.Lat())
	assert.Equal(t, 13.4, got.Lng())
}

func TestParsePoint_Invalid(t *testing.T) {
	for _, in := range []string{"", "POINT()", "POINT(1)", "LINESTRING(0 0, 1 1)", "POINT(200 10)", "POINT(10 95)"} {
		_, err := ParsePoint(in)
		assert.Error(t, err, in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(90, 180))
	assert.NoError(t, Validate(-90, -180))
	assert.ErrorIs(t, Validate(90.0001, 0), ErrInvalidCoordinates)
	assert.ErrorIs(t, Validate(0, -180.0001), ErrInvalidCoordinates)
	assert.ErrorIs(t, Validate(math.NaN(), 0), ErrInvalidCoordinates)
}

func TestDistanceMeters_Equator(t *testing.T) {
	d := DistanceMeters(MakePoint(0, 0), MakePoint(0, 1))
	assert.InDelta(t, 111319.4908, d, 1e-3)
}

func TestDistanceMeters_KnownGeodesic(t *testing.T) {
	// Flinders Peak -> Buninyong, the classic Vincenty test pair.
	a := MakePoint(-(37 + 57.0/60 + 3.72030/3600), 144+25.0/60+29.52440/3600)
	b := MakePoint(-(37 + 39.0/60 + 10.15610/3600), 143+55.0/60+35.38390/3600)
	assert.InDelta(t, 54972.271, DistanceMeters(a, b), 1e-2)
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	points := []Point{
		MakePoint(0, 0),
		MakePoint(-23.5505, -46.6333),
		MakePoint(-22.9068, -43.1729),
		MakePoint(64.1466, -21.9426),
		MakePoint(-33.8688, 151.2093),
		MakePoint(89.9, 10),
		MakePoint(0, 179.9),
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6, "%v %v", a, b)
		}
	}
}

func TestDistanceMeters_NearlyAntipodalFallsBack(t *testing.T) {
	d := DistanceMeters(MakePoint(0, 0), MakePoint(0.5, 179.7))
	assert.False(t, math.IsNaN(d))
	assert.Greater(t, d, 19_900_000.0)
	assert.Less(t, d, 20_100_000.0)
}

func TestWithinRadius(t *testing.T) {
	center := MakePoint(-8.8383, 13.2344)
	near := MakePoint(-8.8383, 13.2434) // ~990 m east
	far := MakePoint(-8.8383, 13.2544)

	assert.True(t, WithinRadius(center, center, 0))
	assert.True(t, WithinRadius(center, near, 1000))
	assert.False(t, WithinRadius(center, far, 1000))
	assert.False(t, WithinRadius(center, near, -1))
}

func TestBoundingBox_Contains(t *testing.T) {
	box := BoundingBox{MinLat: -24, MinLng: -47.5, MaxLat: -23, MaxLng: -46}
	require.NoError(t, box.Validate())

	assert.True(t, box.Contains(MakePoint(-23.5505, -46.6333)))
	assert.True(t, box.Contains(MakePoint(-24, -47.5)), "edges are inclusive")
	assert.True(t, box.Contains(MakePoint(-23, -46)), "edges are inclusive")
	assert.False(t, box.Contains(MakePoint(-22.9068, -43.1729)))
	assert.False(t, box.Contains(MakePoint(-23.5, -47.51)))
}

func TestBoundingBox_FullWorld(t *testing.T) {
	box := BoundingBox{MinLat: -90, MinLng: -180, MaxLat: 90, MaxLng: 180}
	require.NoError(t, box.Validate())
	assert.True(t, box.Contains(MakePoint(0, -180)))
	assert.True(t, box.Contains(MakePoint(0, 180)))
	assert.True(t, box.Contains(MakePoint(-45, 12)))
}

func TestBoundingBox_Validate(t *testing.T) {
	assert.ErrorIs(t, BoundingBox{MinLat: 10, MaxLat: 5}.Validate(), ErrInvalidBoundingBox)
	assert.ErrorIs(t, BoundingBox{MinLng: 10, MaxLng: 5}.Validate(), ErrInvalidBoundingBox)
	assert.ErrorIs(t, BoundingBox{MinLat: -91}.Validate(), ErrInvalidCoordinates)
}

func TestCentroid(t *testing.T) {
	_, ok := Centroid(nil)
	assert.False(t, ok)

	c, ok := Centroid([]Point{MakePoint(0, 0), MakePoint(2, 4), MakePoint(4, 2)})
	require.True(t, ok)
	assert.InDelta(t, 2, c.Lat(), 1e-12)
	assert.InDelta(t, 2, c.Lng(), 1e-12)
}

func TestCellToken_StableWithinCell(t *testing.T) {
	a := CellToken(MakePoint(-8.8383, 13.2344), 13)
	b := CellToken(MakePoint(-8.83831, 13.23441), 13)
	c := CellToken(MakePoint(10, 10), 13)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
