package domain

import (
	"time"

	"github.com/google/uuid"
)

const EventCriticalZoneCreated = "critical_zone.created"

type CriticalZoneEvent struct {
	Event          string    `json:"event"`
	CriticalZoneID uuid.UUID `json:"critical_zone_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	CellToken      string    `json:"cell_token"`
	TriggerZoneID  uuid.UUID `json:"trigger_zone_id"`
	Reporters      int       `json:"reporters"`
	DetectedAt     time.Time `json:"detected_at"`
}
