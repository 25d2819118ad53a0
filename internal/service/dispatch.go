package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/capacity"
	"github.com/shenikar/emergency_dispatch_system/internal/eta"
	"github.com/shenikar/emergency_dispatch_system/internal/geoindex"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/severity"
	"github.com/sirupsen/logrus"
)

// HospitalQuery - параметры поиска больниц. MaxDistanceMeters == 0 означает радиус по умолчанию.
type HospitalQuery struct {
	Location          models.Point
	MaxDistanceMeters float64
	MinAvailableBeds  *int
}

type AmbulanceQuery struct {
	Location          models.Point
	MaxDistanceMeters float64
}

type HospitalMatch struct {
	Hospital       models.Hospital
	DistanceMeters float64
}

type AmbulanceMatch struct {
	Ambulance        models.Ambulance
	DistanceMeters   float64
	ETAMinutes       float64
	AssignedHospital *models.Hospital
}

// RankedHospital - больница с прогнозом на выбранный горизонт
type RankedHospital struct {
	Hospital           models.Hospital
	DistanceMeters     *float64
	HorizonHours       int
	ProjectedAvailable int
	Projection         capacity.Projection
}

type CapacityReport struct {
	Hospital   models.Hospital
	Projection capacity.Projection
}

type TriageRequest struct {
	Location          models.Point
	MaxDistanceMeters float64
	Severity          severity.Input
}

type TriageResult struct {
	Assessment   severity.Assessment
	HorizonHours int
	Ambulances   []AmbulanceMatch
	Hospitals    []RankedHospital
}

// DispatchService определяет контракт запросов диспетчеризации
type DispatchService interface {
	NearestHospitals(ctx context.Context, q HospitalQuery) ([]HospitalMatch, error)
	HospitalsWithBeds(ctx context.Context, q HospitalQuery) ([]HospitalMatch, error)
	NearestAvailableAmbulances(ctx context.Context, q AmbulanceQuery) ([]AmbulanceMatch, error)
	RankedHospitals(ctx context.Context, q HospitalQuery, horizonHours int) ([]RankedHospital, error)
	ProjectCapacity(ctx context.Context, hospitalID uuid.UUID) (*CapacityReport, error)
	AssessSeverity(ctx context.Context, in severity.Input) (severity.Assessment, error)
	EstimateArrival(ctx context.Context, from, to models.Point, traffic eta.Traffic) (eta.Estimate, error)
	Triage(ctx context.Context, req TriageRequest) (*TriageResult, error)
}

type dispatchService struct {
	hospitals  *geoindex.Index[models.Hospital]
	ambulances *geoindex.Index[models.Ambulance]
	assessor   *severity.Assessor
	logger     *logrus.Logger
}

func NewDispatchService(
	hospitals *geoindex.Index[models.Hospital],
	ambulances *geoindex.Index[models.Ambulance],
	assessor *severity.Assessor,
	logger *logrus.Logger,
) DispatchService {
	return &dispatchService{
		hospitals:  hospitals,
		ambulances: ambulances,
		assessor:   assessor,
		logger:     logger,
	}
}

// NearestHospitals ищет больницы в радиусе, при необходимости отсекая по числу свободных коек
func (s *dispatchService) NearestHospitals(ctx context.Context, q HospitalQuery) ([]HospitalMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "NearestHospitals",
	})

	if err := validateRadius(q.MaxDistanceMeters); err != nil {
		return nil, err
	}
	var predicate func(models.Hospital) bool
	if q.MinAvailableBeds != nil {
		minBeds := *q.MinAvailableBeds
		if minBeds < 0 {
			return nil, fmt.Errorf("service: %w: minBeds must be non-negative", models.ErrInvalidInput)
		}
		predicate = func(h models.Hospital) bool { return h.AvailableBeds >= minBeds }
	}

	found, err := s.hospitals.QueryRadius(q.Location, q.MaxDistanceMeters, predicate)
	if err != nil {
		return nil, fmt.Errorf("service: could not query hospitals: %w", err)
	}

	matches := make([]HospitalMatch, len(found))
	for i, m := range found {
		matches[i] = HospitalMatch{Hospital: m.Item, DistanceMeters: m.DistanceMeters}
	}
	log.WithField("count", len(matches)).Debug("Nearest hospitals resolved")
	return matches, nil
}

// HospitalsWithBeds - NearestHospitals с minBeds по умолчанию 1
func (s *dispatchService) HospitalsWithBeds(ctx context.Context, q HospitalQuery) ([]HospitalMatch, error) {
	if q.MinAvailableBeds == nil {
		one := 1
		q.MinAvailableBeds = &one
	}
	return s.NearestHospitals(ctx, q)
}

// NearestAvailableAmbulances ищет свободные скорые в радиусе
func (s *dispatchService) NearestAvailableAmbulances(ctx context.Context, q AmbulanceQuery) ([]AmbulanceMatch, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "NearestAvailableAmbulances",
	})

	if err := validateRadius(q.MaxDistanceMeters); err != nil {
		return nil, err
	}
	found, err := s.ambulances.QueryRadius(q.Location, q.MaxDistanceMeters, func(a models.Ambulance) bool {
		return a.Status == models.AmbulanceAvailable
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not query ambulances: %w", err)
	}

	matches := make([]AmbulanceMatch, len(found))
	for i, m := range found {
		match := AmbulanceMatch{
			Ambulance:      m.Item,
			DistanceMeters: m.DistanceMeters,
			ETAMinutes:     eta.FreeFlowMinutes(m.DistanceMeters),
		}
		if id := m.Item.AssignedHospitalID; id != nil {
			if h, ok := s.hospitals.Get(id.String()); ok {
				match.AssignedHospital = &h
			}
		}
		matches[i] = match
	}
	log.WithField("count", len(matches)).Debug("Nearest ambulances resolved")
	return matches, nil
}

// RankedHospitals ищет больницы и сортирует их по прогнозу свободных коек
func (s *dispatchService) RankedHospitals(ctx context.Context, q HospitalQuery, horizonHours int) ([]RankedHospital, error) {
	if !capacity.ValidHorizon(horizonHours) {
		return nil, fmt.Errorf("service: %w: horizonHours must be 1 or 3", models.ErrInvalidInput)
	}
	matches, err := s.NearestHospitals(ctx, q)
	if err != nil {
		return nil, err
	}

	hospitals := make([]models.Hospital, len(matches))
	distances := make(map[uuid.UUID]float64, len(matches))
	for i, m := range matches {
		hospitals[i] = m.Hospital
		distances[m.Hospital.ID] = m.DistanceMeters
	}
	return RankByProjectedCapacity(hospitals, horizonHours, distances)
}

// RankByProjectedCapacity сортирует больницы по убыванию прогноза на horizonHours (1 или 3).
// Если передана карта расстояний, равные прогнозы упорядочиваются по расстоянию
// (больницы без расстояния - в конце); иначе сохраняется исходный порядок.
func RankByProjectedCapacity(hospitals []models.Hospital, horizonHours int, distances map[uuid.UUID]float64) ([]RankedHospital, error) {
	if !capacity.ValidHorizon(horizonHours) {
		return nil, fmt.Errorf("service: %w: horizonHours must be 1 or 3", models.ErrInvalidInput)
	}

	ranked := make([]RankedHospital, len(hospitals))
	for i, h := range hospitals {
		projection := capacity.Estimate(capacity.SnapshotOf(h))
		projected, err := projection.At(horizonHours)
		if err != nil {
			return nil, err
		}
		r := RankedHospital{
			Hospital:           h,
			HorizonHours:       horizonHours,
			ProjectedAvailable: projected,
			Projection:         projection,
		}
		if d, ok := distances[h.ID]; ok {
			dist := d
			r.DistanceMeters = &dist
		}
		ranked[i] = r
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ProjectedAvailable != ranked[j].ProjectedAvailable {
			return ranked[i].ProjectedAvailable > ranked[j].ProjectedAvailable
		}
		if distances == nil {
			return false
		}
		return distanceOrInf(ranked[i].DistanceMeters) < distanceOrInf(ranked[j].DistanceMeters)
	})
	return ranked, nil
}

// ProjectCapacity считает прогноз для конкретной больницы
func (s *dispatchService) ProjectCapacity(ctx context.Context, hospitalID uuid.UUID) (*CapacityReport, error) {
	h, ok := s.hospitals.Get(hospitalID.String())
	if !ok {
		return nil, fmt.Errorf("service: hospital %s: %w", hospitalID, models.ErrNotFound)
	}
	return &CapacityReport{
		Hospital:   h,
		Projection: capacity.Estimate(capacity.SnapshotOf(h)),
	}, nil
}

// AssessSeverity оценивает тяжесть случая по симптомам и витальным показателям
func (s *dispatchService) AssessSeverity(ctx context.Context, in severity.Input) (severity.Assessment, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "AssessSeverity",
		"mode":    s.assessor.Mode(),
	})

	assessment, err := s.assessor.Assess(in)
	if err != nil {
		log.WithError(err).Warn("Severity input rejected")
		return severity.Assessment{}, fmt.Errorf("service: could not assess severity: %w", err)
	}
	if assessment.Degraded {
		log.WithField("reason", assessment.DegradedReason).Warn("Severity assessed in degraded mode")
	}
	return assessment, nil
}

// EstimateArrival оценивает время прибытия с учетом трафика
func (s *dispatchService) EstimateArrival(ctx context.Context, from, to models.Point, traffic eta.Traffic) (eta.Estimate, error) {
	estimate, err := eta.EstimateArrival(from, to, traffic)
	if err != nil {
		return eta.Estimate{}, fmt.Errorf("service: could not estimate arrival: %w", err)
	}
	return estimate, nil
}

// Triage оценивает тяжесть, подбирает свободные скорые и больницы с прогнозом коек.
// Для Critical и Severe больницы ранжируются по прогнозу на час, иначе - на три часа.
func (s *dispatchService) Triage(ctx context.Context, req TriageRequest) (*TriageResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dispatch",
		"method":  "Triage",
	})

	assessment, err := s.AssessSeverity(ctx, req.Severity)
	if err != nil {
		return nil, err
	}

	horizon := 3
	if assessment.Tier == severity.TierCritical || assessment.Tier == severity.TierSevere {
		horizon = 1
	}

	ambulances, err := s.NearestAvailableAmbulances(ctx, AmbulanceQuery{
		Location:          req.Location,
		MaxDistanceMeters: req.MaxDistanceMeters,
	})
	if err != nil {
		return nil, err
	}

	one := 1
	hospitals, err := s.RankedHospitals(ctx, HospitalQuery{
		Location:          req.Location,
		MaxDistanceMeters: req.MaxDistanceMeters,
		MinAvailableBeds:  &one,
	}, horizon)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"tier":       assessment.Tier,
		"ambulances": len(ambulances),
		"hospitals":  len(hospitals),
	}).Info("Triage completed")

	return &TriageResult{
		Assessment:   assessment,
		HorizonHours: horizon,
		Ambulances:   ambulances,
		Hospitals:    hospitals,
	}, nil
}

func validateRadius(meters float64) error {
	if math.IsNaN(meters) || math.IsInf(meters, 0) || meters < 0 {
		return fmt.Errorf("service: %w: maxDistance must be a positive number of meters", models.ErrInvalidInput)
	}
	return nil
}

func distanceOrInf(d *float64) float64 {
	if d == nil {
		return math.Inf(1)
	}
	return *d
}
