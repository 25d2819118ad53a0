package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationDTO - точка в формате GeoJSON, coordinates = [longitude, latitude]
// @Description Точка в формате GeoJSON
type LocationDTO struct {
	Type        string    `json:"type,omitempty" validate:"omitempty,eq=Point" example:"Point"`
	Coordinates []float64 `json:"coordinates" validate:"required,len=2"`
}

// NearestHospitalsRequest DTO для поиска ближайших больниц
// @Description DTO для поиска ближайших больниц
type NearestHospitalsRequest struct {
	Location    LocationDTO `json:"location"`
	MaxDistance *int        `json:"maxDistance,omitempty" validate:"omitempty,min=1000" example:"5000"`
	MinBeds     *int        `json:"minBeds,omitempty" validate:"omitempty,min=1" example:"1"`
}

// NearestAmbulancesRequest DTO для поиска свободных скорых
// @Description DTO для поиска свободных скорых
type NearestAmbulancesRequest struct {
	Location    LocationDTO `json:"location"`
	MaxDistance *int        `json:"maxDistance,omitempty" validate:"omitempty,min=1000" example:"5000"`
}

// RankedHospitalsRequest DTO для ранжирования больниц по прогнозу коек
// @Description DTO для ранжирования больниц по прогнозу коек
type RankedHospitalsRequest struct {
	Location     LocationDTO `json:"location"`
	MaxDistance  *int        `json:"maxDistance,omitempty" validate:"omitempty,min=1000"`
	MinBeds      *int        `json:"minBeds,omitempty" validate:"omitempty,min=1"`
	HorizonHours int         `json:"horizonHours" validate:"required,oneof=1 3" example:"1"`
}

type BloodPressureDTO struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

// VitalSignsDTO - отсутствующие поля не влияют на оценку
type VitalSignsDTO struct {
	HeartRate        *float64          `json:"heartRate,omitempty"`
	BloodPressure    *BloodPressureDTO `json:"bloodPressure,omitempty"`
	OxygenSaturation *float64          `json:"oxygenSaturation,omitempty"`
	RespiratoryRate  *float64          `json:"respiratoryRate,omitempty"`
}

// SeverityRequest DTO для оценки тяжести
// @Description DTO для оценки тяжести
type SeverityRequest struct {
	Symptoms   []string       `json:"symptoms" validate:"max=50"`
	VitalSigns *VitalSignsDTO `json:"vitalSigns,omitempty"`
}

// SeverityResponse DTO ответа с оценкой тяжести
// @Description DTO ответа с оценкой тяжести
type SeverityResponse struct {
	Level                string   `json:"level" example:"Critical"`
	Score                int      `json:"score" example:"85"`
	RecommendedResources []string `json:"recommendedResources"`
	MatchedKeywords      []string `json:"matchedKeywords"`
	Degraded             bool     `json:"degraded"`
}

// AccidentDTO - location описывает место происшествия текстом, например участок дороги
type AccidentDTO struct {
	Location string  `json:"location" validate:"max=255" example:"Main St / 5th Ave"`
	Severity float64 `json:"severity" validate:"gte=0" example:"3"`
}

type TrafficDTO struct {
	CongestionLevel float64       `json:"congestionLevel"`
	RoadClosures    []string      `json:"roadClosures,omitempty"`
	Accidents       []AccidentDTO `json:"accidents,omitempty" validate:"dive"`
}

// ArrivalRequest DTO для оценки времени прибытия
// @Description DTO для оценки времени прибытия
type ArrivalRequest struct {
	From    LocationDTO `json:"from"`
	To      LocationDTO `json:"to"`
	Traffic TrafficDTO  `json:"traffic"`
}

// ArrivalResponse DTO с оценкой времени прибытия
// @Description DTO с оценкой времени прибытия
type ArrivalResponse struct {
	DistanceMeters   float64 `json:"distanceMeters"`
	EstimatedMinutes float64 `json:"estimatedMinutes"`
	RecommendedRoute string  `json:"recommendedRoute" example:"primary"`
	Confidence       float64 `json:"confidence"`
}

// CapacityProjectionDTO - прогноз свободных коек
type CapacityProjectionDTO struct {
	AvailableIn1Hour  int     `json:"availableIn1Hour"`
	AvailableIn3Hours int     `json:"availableIn3Hours"`
	HourlyNetChange   int     `json:"hourlyNetChange"`
	AdmissionRate     float64 `json:"admissionRate"`
	DischargeRate     float64 `json:"dischargeRate"`
	Confidence        float64 `json:"confidence"`
}

// CapacityResponse DTO с прогнозом для больницы
// @Description DTO с прогнозом для больницы
type CapacityResponse struct {
	HospitalID    uuid.UUID             `json:"hospitalId"`
	AvailableBeds int                   `json:"availableBeds"`
	Predictions   CapacityProjectionDTO `json:"predictions"`
}

// TriageRequest DTO для комплексной диспетчеризации
// @Description DTO для комплексной диспетчеризации
type TriageRequest struct {
	Location    LocationDTO    `json:"location"`
	MaxDistance *int           `json:"maxDistance,omitempty" validate:"omitempty,min=1000"`
	Symptoms    []string       `json:"symptoms" validate:"max=50"`
	VitalSigns  *VitalSignsDTO `json:"vitalSigns,omitempty"`
}

// TriageResponse DTO с результатом диспетчеризации
// @Description DTO с результатом диспетчеризации
type TriageResponse struct {
	Severity     SeverityResponse         `json:"severity"`
	HorizonHours int                      `json:"horizonHours"`
	Ambulances   []AmbulanceMatchResponse `json:"ambulances"`
	Hospitals    []RankedHospitalResponse `json:"hospitals"`
}

// CreateHospitalRequest DTO для создания и замены больницы
// @Description DTO для создания и замены больницы
type CreateHospitalRequest struct {
	Name              string      `json:"name" validate:"required,min=2,max=255"`
	Address           string      `json:"address" validate:"max=512"`
	Contact           string      `json:"contact" validate:"max=255"`
	Location          LocationDTO `json:"location"`
	TotalBeds         int         `json:"totalBeds" validate:"gte=0"`
	AvailableBeds     int         `json:"availableBeds" validate:"gte=0,ltefield=TotalBeds"`
	ERWaitMinutes     float64     `json:"erWaitMinutes" validate:"gte=0"`
	ERCapacityPercent float64     `json:"erCapacityPercent" validate:"gte=0"`
	AmbulancesEnRoute int         `json:"ambulancesEnRoute" validate:"gte=0"`
}

// UpdateBedsRequest DTO для фиксации поступления или выписки
// @Description DTO для фиксации поступления или выписки
type UpdateBedsRequest struct {
	AvailableBeds *int `json:"availableBeds" validate:"required,gte=0"`
}

// CreateAmbulanceRequest DTO для регистрации скорой
// @Description DTO для регистрации скорой
type CreateAmbulanceRequest struct {
	VehicleNumber      string      `json:"vehicleNumber" validate:"required,max=64"`
	Status             string      `json:"status,omitempty" validate:"omitempty,oneof=available busy maintenance"`
	Location           LocationDTO `json:"location"`
	AssignedHospitalID *uuid.UUID  `json:"assignedHospitalId,omitempty"`
}

// UpdateLocationRequest DTO для обновления позиции скорой
// @Description DTO для обновления позиции скорой
type UpdateLocationRequest struct {
	Location LocationDTO `json:"location"`
}

// UpdateStatusRequest DTO для смены статуса скорой
// @Description DTO для смены статуса скорой
type UpdateStatusRequest struct {
	Status             string     `json:"status" validate:"required,oneof=available busy maintenance"`
	AssignedHospitalID *uuid.UUID `json:"assignedHospitalId,omitempty"`
}

type PositionUpdateDTO struct {
	AmbulanceID uuid.UUID   `json:"ambulanceId" validate:"required"`
	Location    LocationDTO `json:"location"`
	RecordedAt  *time.Time  `json:"recordedAt,omitempty"`
}

// TelemetryRequest DTO с пачкой отметок местоположения
// @Description DTO с пачкой отметок местоположения
type TelemetryRequest struct {
	Updates []PositionUpdateDTO `json:"updates" validate:"required,min=1,max=500,dive"`
}

// HospitalResponse DTO для ответа с информацией о больнице
// @Description DTO для ответа с информацией о больнице
type HospitalResponse struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Address           string      `json:"address"`
	Contact           string      `json:"contact"`
	Location          LocationDTO `json:"location"`
	TotalBeds         int         `json:"totalBeds"`
	AvailableBeds     int         `json:"availableBeds"`
	ERWaitMinutes     float64     `json:"erWaitMinutes"`
	ERCapacityPercent float64     `json:"erCapacityPercent"`
	AmbulancesEnRoute int         `json:"ambulancesEnRoute"`
	OwnerID           string      `json:"ownerId"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// HospitalMatchResponse - больница с расстоянием до точки запроса
type HospitalMatchResponse struct {
	HospitalResponse
	DistanceMeters float64 `json:"distanceMeters"`
}

// RankedHospitalResponse - больница с прогнозом на горизонт
type RankedHospitalResponse struct {
	HospitalResponse
	DistanceMeters         *float64              `json:"distanceMeters,omitempty"`
	HorizonHours           int                   `json:"horizonHours"`
	ProjectedAvailableBeds int                   `json:"projectedAvailableBeds"`
	Predictions            CapacityProjectionDTO `json:"predictions"`
}

// AmbulanceResponse DTO для ответа с информацией о скорой
// @Description DTO для ответа с информацией о скорой
type AmbulanceResponse struct {
	ID                 uuid.UUID   `json:"id"`
	VehicleNumber      string      `json:"vehicleNumber"`
	Status             string      `json:"status"`
	Location           LocationDTO `json:"location"`
	AssignedHospitalID *uuid.UUID  `json:"assignedHospitalId,omitempty"`
	OwnerID            string      `json:"ownerId"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// AmbulanceMatchResponse - скорая с расстоянием и временем в пути
type AmbulanceMatchResponse struct {
	AmbulanceResponse
	DistanceMeters   float64           `json:"distanceMeters"`
	ETAMinutes       float64           `json:"etaMinutes"`
	AssignedHospital *HospitalResponse `json:"assignedHospital,omitempty"`
}

// TelemetryResponse DTO подтверждения постановки в очередь
type TelemetryResponse struct {
	Queued int `json:"queued"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Hospitals           int `json:"hospitals"`
	Ambulances          int `json:"ambulances"`
	AvailableAmbulances int `json:"availableAmbulances"`
}
