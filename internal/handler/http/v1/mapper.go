package v1

import (
	"fmt"
	"time"

	"github.com/shenikar/emergency_dispatch_system/internal/capacity"
	"github.com/shenikar/emergency_dispatch_system/internal/eta"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
	"github.com/shenikar/emergency_dispatch_system/internal/severity"
)

// metersOrDefault переводит необязательный maxDistance в метры; 0 - радиус по умолчанию
func metersOrDefault(maxDistance *int) float64 {
	if maxDistance == nil {
		return 0
	}
	return float64(*maxDistance)
}

func DTOToPoint(dto LocationDTO) (models.Point, error) {
	return models.NewPoint(dto.Coordinates)
}

func PointToDTO(p models.Point) LocationDTO {
	return LocationDTO{Type: "Point", Coordinates: p.Coordinates()}
}

func DTOToSeverityInput(symptoms []string, vitals *VitalSignsDTO) severity.Input {
	in := severity.Input{Symptoms: symptoms}
	if vitals == nil {
		return in
	}
	in.VitalSigns = severity.VitalSigns{
		HeartRate:        vitals.HeartRate,
		OxygenSaturation: vitals.OxygenSaturation,
		RespiratoryRate:  vitals.RespiratoryRate,
	}
	if bp := vitals.BloodPressure; bp != nil {
		in.VitalSigns.BloodPressure = &severity.BloodPressure{Systolic: bp.Systolic, Diastolic: bp.Diastolic}
	}
	return in
}

func DTOToTraffic(dto TrafficDTO) eta.Traffic {
	traffic := eta.Traffic{
		CongestionLevel: dto.CongestionLevel,
		RoadClosures:    dto.RoadClosures,
	}
	for _, a := range dto.Accidents {
		traffic.Accidents = append(traffic.Accidents, eta.Accident{Location: a.Location, Severity: a.Severity})
	}
	return traffic
}

// DTOToHospitalModel преобразует DTO создания/замены в доменную модель
func DTOToHospitalModel(dto CreateHospitalRequest) (*models.Hospital, error) {
	p, err := DTOToPoint(dto.Location)
	if err != nil {
		return nil, err
	}
	return &models.Hospital{
		Name:              dto.Name,
		Address:           dto.Address,
		Contact:           dto.Contact,
		Location:          p,
		TotalBeds:         dto.TotalBeds,
		AvailableBeds:     dto.AvailableBeds,
		ERWaitMinutes:     dto.ERWaitMinutes,
		ERCapacityPercent: dto.ERCapacityPercent,
		AmbulancesEnRoute: dto.AmbulancesEnRoute,
	}, nil
}

func DTOToAmbulanceModel(dto CreateAmbulanceRequest) (*models.Ambulance, error) {
	p, err := DTOToPoint(dto.Location)
	if err != nil {
		return nil, err
	}
	return &models.Ambulance{
		VehicleNumber:      dto.VehicleNumber,
		Status:             models.AmbulanceStatus(dto.Status),
		Location:           p,
		AssignedHospitalID: dto.AssignedHospitalID,
	}, nil
}

// DTOToPositionUpdates проверяет все отметки пачки; отсутствующее время заменяется на now
func DTOToPositionUpdates(dtos []PositionUpdateDTO, now time.Time) ([]models.PositionUpdate, error) {
	updates := make([]models.PositionUpdate, len(dtos))
	for i, dto := range dtos {
		p, err := DTOToPoint(dto.Location)
		if err != nil {
			return nil, fmt.Errorf("updates[%d].location: %w", i, err)
		}
		recordedAt := now
		if dto.RecordedAt != nil {
			recordedAt = dto.RecordedAt.UTC()
		}
		updates[i] = models.PositionUpdate{AmbulanceID: dto.AmbulanceID, Location: p, RecordedAt: recordedAt}
	}
	return updates, nil
}

// ModelToHospitalResponse преобразует доменную модель в DTO для ответа
func ModelToHospitalResponse(m *models.Hospital) *HospitalResponse {
	return &HospitalResponse{
		ID:                m.ID,
		Name:              m.Name,
		Address:           m.Address,
		Contact:           m.Contact,
		Location:          PointToDTO(m.Location),
		TotalBeds:         m.TotalBeds,
		AvailableBeds:     m.AvailableBeds,
		ERWaitMinutes:     m.ERWaitMinutes,
		ERCapacityPercent: m.ERCapacityPercent,
		AmbulancesEnRoute: m.AmbulancesEnRoute,
		OwnerID:           m.OwnerID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ModelsToHospitalResponses преобразует слайс моделей в слайс DTO
func ModelsToHospitalResponses(hospitals []*models.Hospital) []*HospitalResponse {
	responses := make([]*HospitalResponse, len(hospitals))
	for i, m := range hospitals {
		responses[i] = ModelToHospitalResponse(m)
	}
	return responses
}

func ModelToAmbulanceResponse(m *models.Ambulance) *AmbulanceResponse {
	return &AmbulanceResponse{
		ID:                 m.ID,
		VehicleNumber:      m.VehicleNumber,
		Status:             string(m.Status),
		Location:           PointToDTO(m.Location),
		AssignedHospitalID: m.AssignedHospitalID,
		OwnerID:            m.OwnerID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ModelsToAmbulanceResponses(ambulances []*models.Ambulance) []*AmbulanceResponse {
	responses := make([]*AmbulanceResponse, len(ambulances))
	for i, m := range ambulances {
		responses[i] = ModelToAmbulanceResponse(m)
	}
	return responses
}

func HospitalMatchesToResponses(matches []service.HospitalMatch) []HospitalMatchResponse {
	responses := make([]HospitalMatchResponse, len(matches))
	for i, m := range matches {
		responses[i] = HospitalMatchResponse{
			HospitalResponse: *ModelToHospitalResponse(&m.Hospital),
			DistanceMeters:   m.DistanceMeters,
		}
	}
	return responses
}

func AmbulanceMatchesToResponses(matches []service.AmbulanceMatch) []AmbulanceMatchResponse {
	responses := make([]AmbulanceMatchResponse, len(matches))
	for i, m := range matches {
		r := AmbulanceMatchResponse{
			AmbulanceResponse: *ModelToAmbulanceResponse(&m.Ambulance),
			DistanceMeters:    m.DistanceMeters,
			ETAMinutes:        m.ETAMinutes,
		}
		if m.AssignedHospital != nil {
			r.AssignedHospital = ModelToHospitalResponse(m.AssignedHospital)
		}
		responses[i] = r
	}
	return responses
}

func ProjectionToDTO(p capacity.Projection) CapacityProjectionDTO {
	return CapacityProjectionDTO{
		AvailableIn1Hour:  p.AvailableIn1Hour,
		AvailableIn3Hours: p.AvailableIn3Hours,
		HourlyNetChange:   p.HourlyNetChange,
		AdmissionRate:     p.AdmissionRate,
		DischargeRate:     p.DischargeRate,
		Confidence:        p.Confidence,
	}
}

func RankedHospitalsToResponses(ranked []service.RankedHospital) []RankedHospitalResponse {
	responses := make([]RankedHospitalResponse, len(ranked))
	for i, r := range ranked {
		responses[i] = RankedHospitalResponse{
			HospitalResponse:       *ModelToHospitalResponse(&r.Hospital),
			DistanceMeters:         r.DistanceMeters,
			HorizonHours:           r.HorizonHours,
			ProjectedAvailableBeds: r.ProjectedAvailable,
			Predictions:            ProjectionToDTO(r.Projection),
		}
	}
	return responses
}

func AssessmentToResponse(a severity.Assessment) SeverityResponse {
	return SeverityResponse{
		Level:                string(a.Tier),
		Score:                a.Score,
		RecommendedResources: a.RecommendedResources,
		MatchedKeywords:      a.MatchedKeywords,
		Degraded:             a.Degraded,
	}
}

func EstimateToResponse(e eta.Estimate) ArrivalResponse {
	return ArrivalResponse{
		DistanceMeters:   e.DistanceMeters,
		EstimatedMinutes: e.Minutes,
		RecommendedRoute: string(e.Route),
		Confidence:       e.Confidence,
	}
}
