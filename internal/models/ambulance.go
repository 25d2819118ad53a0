package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AmbulanceStatus string

const (
	AmbulanceAvailable   AmbulanceStatus = "available"
	AmbulanceBusy        AmbulanceStatus = "busy"
	AmbulanceMaintenance AmbulanceStatus = "maintenance"
)

// ParseAmbulanceStatus разбирает статус из строки
func ParseAmbulanceStatus(s string) (AmbulanceStatus, error) {
	switch st := AmbulanceStatus(s); st {
	case AmbulanceAvailable, AmbulanceBusy, AmbulanceMaintenance:
		return st, nil
	}
	return "", fmt.Errorf("%w: status %q must be one of available, busy, maintenance", ErrInvalidInput, s)
}

type Ambulance struct {
	ID                 uuid.UUID       `json:"id"`
	VehicleNumber      string          `json:"vehicle_number"`
	Status             AmbulanceStatus `json:"status"`
	Location           Point           `json:"location"`
	AssignedHospitalID *uuid.UUID      `json:"assigned_hospital_id,omitempty"`
	OwnerID            string          `json:"owner_id"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	// LastPingAt - время последней примененной отметки телеметрии; в бд не хранится
	LastPingAt         time.Time       `json:"-"`
}

func (a Ambulance) Key() string { return a.ID.String() }

func (a Ambulance) Position() Point { return a.Location }

func (a Ambulance) Validate() error {
	if err := a.Location.Validate(); err != nil {
		return err
	}
	if a.VehicleNumber == "" {
		return fmt.Errorf("%w: vehicle_number is required", ErrInvalidInput)
	}
	if _, err := ParseAmbulanceStatus(string(a.Status)); err != nil {
		return err
	}
	return nil
}
