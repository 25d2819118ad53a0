package models

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

type Hospital struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Contact           string    `json:"contact"`
	Location          Point     `json:"location"`
	TotalBeds         int       `json:"total_beds"`
	AvailableBeds     int       `json:"available_beds"`
	ERWaitMinutes     float64   `json:"er_wait_minutes"`
	ERCapacityPercent float64   `json:"er_capacity_percent"`
	AmbulancesEnRoute int       `json:"ambulances_en_route"`
	OwnerID           string    `json:"owner_id"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Key и Position позволяют хранить больницу в geoindex.Index
func (h Hospital) Key() string { return h.ID.String() }

func (h Hospital) Position() Point { return h.Location }

// Validate проверяет инварианты больницы, включая available_beds <= total_beds
func (h Hospital) Validate() error {
	if err := h.Location.Validate(); err != nil {
		return err
	}
	if h.TotalBeds < 0 {
		return fmt.Errorf("%w: total_beds must be non-negative", ErrInvalidInput)
	}
	if h.AvailableBeds < 0 {
		return fmt.Errorf("%w: available_beds must be non-negative", ErrInvalidInput)
	}
	if h.AvailableBeds > h.TotalBeds {
		return fmt.Errorf("%w: available_beds (%d) cannot exceed total_beds (%d)", ErrInvalidInput, h.AvailableBeds, h.TotalBeds)
	}
	if !nonNegative(h.ERWaitMinutes) {
		return fmt.Errorf("%w: er_wait_minutes must be a non-negative number", ErrInvalidInput)
	}
	if !nonNegative(h.ERCapacityPercent) {
		return fmt.Errorf("%w: er_capacity_percent must be a non-negative number", ErrInvalidInput)
	}
	if h.AmbulancesEnRoute < 0 {
		return fmt.Errorf("%w: ambulances_en_route must be non-negative", ErrInvalidInput)
	}
	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
