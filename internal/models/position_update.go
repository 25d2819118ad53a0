package models

import (
	"time"

	"github.com/google/uuid"
)

// PositionUpdate - одна телеметрическая отметка местоположения скорой
type PositionUpdate struct {
	AmbulanceID uuid.UUID `json:"ambulance_id"`
	Location    Point     `json:"location"`
	RecordedAt  time.Time `json:"recorded_at"`
}
