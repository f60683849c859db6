package domain

import (
	"testing"

	"github.com/google/uuid"

	"safezone/pkg/geo"
)

func TestZonePatch_Apply_OnlyDescription(t *testing.T) {
	z := &Zone{
		ID:          uuid.New(),
		Slug:        "mercado",
		Date:        "2025-03-01",
		Hour:        "21:30",
		Description: "old",
		Location:    geo.MakePoint(-8.8383, 13.2344),
		Type:        ZoneDanger,
		UserID:      "u1",
	}
	before := *z

	desc := "x"
	ZonePatch{Description: &desc}.Apply(z)

	if z.Description != "x" {
		t.Fatalf("description not applied: %q", z.Description)
	}
	before.Description = "x"
	if *z != before {
		t.Fatalf("unexpected changes: got=%+v want=%+v", *z, before)
	}
}

func TestZonePatch_Apply_Coordinates(t *testing.T) {
	z := &Zone{Location: geo.MakePoint(1, 2), Type: ZoneSafe}
	typ := ZoneDanger

	ZonePatch{
		Coordinates: &Coordinates{Latitude: -23.5505, Longitude: -46.6333},
		Type:        &typ,
	}.Apply(z)

	if z.Location.Lat() != -23.5505 || z.Location.Lng() != -46.6333 {
		t.Fatalf("location not re-derived: %v", z.Location)
	}
	if z.Type != ZoneDanger {
		t.Fatalf("type not applied: %s", z.Type)
	}
	if got := z.Coordinates(); got.Latitude != -23.5505 || got.Longitude != -46.6333 {
		t.Fatalf("coordinates accessor mismatch: %+v", got)
	}
}

func TestZoneType_OrDefault(t *testing.T) {
	if ZoneType("").OrDefault() != ZoneSafe {
		t.Fatalf("empty type must default to SAFE")
	}
	if ZoneDanger.OrDefault() != ZoneDanger {
		t.Fatalf("DANGER must stay DANGER")
	}
	if ZoneType("MAYBE").Valid() {
		t.Fatalf("unknown type must be invalid")
	}
}
