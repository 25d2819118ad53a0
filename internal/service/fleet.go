package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/geoindex"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -destination=../repository/mocks/repository.go -package=mocks github.com/shenikar/emergency_dispatch_system/internal/service AmbulanceRepository,HospitalRepository
//go:generate mockgen -destination=mocks/service.go -package=mocks github.com/shenikar/emergency_dispatch_system/internal/service DispatchService,FleetService

// HospitalRepository определяет контракт для работы с бд больниц
type HospitalRepository interface {
	Create(ctx context.Context, hospital *models.Hospital) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	Update(ctx context.Context, hospital *models.Hospital) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*models.Hospital, error)
	ListAll(ctx context.Context) ([]*models.Hospital, error)
}

// AmbulanceRepository определяет контракт для работы с бд скорых
type AmbulanceRepository interface {
	Create(ctx context.Context, ambulance *models.Ambulance) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ambulance, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, location models.Point) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AmbulanceStatus, assignedHospitalID *uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error)
	ListAll(ctx context.Context) ([]*models.Ambulance, error)
}

type Stats struct {
	Hospitals  int
	Ambulances int
	Available  int
}

// FleetService определяет контракт управления больницами и скорыми.
// Запись идет сначала в бд, затем в индекс.
type FleetService interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital) error
	GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error)
	ListHospitals(ctx context.Context, page, pageSize int) ([]*models.Hospital, error)
	UpdateHospital(ctx context.Context, ownerID string, hospital *models.Hospital) error
	UpdateBeds(ctx context.Context, ownerID string, id uuid.UUID, availableBeds int) (*models.Hospital, error)
	DeleteHospital(ctx context.Context, ownerID string, id uuid.UUID) error

	CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error
	GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error)
	ListAmbulances(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error)
	UpdateAmbulanceLocation(ctx context.Context, ownerID string, id uuid.UUID, location models.Point) (*models.Ambulance, error)
	UpdateAmbulanceStatus(ctx context.Context, ownerID string, id uuid.UUID, status models.AmbulanceStatus, assignedHospitalID *uuid.UUID) (*models.Ambulance, error)
	DeleteAmbulance(ctx context.Context, ownerID string, id uuid.UUID) error

	ApplyPositionUpdate(ctx context.Context, update models.PositionUpdate) error
	LoadIndex(ctx context.Context) error
	Stats(ctx context.Context) Stats
}

type fleetService struct {
	hospitalRepo  HospitalRepository
	ambulanceRepo AmbulanceRepository
	hospitals     *geoindex.Index[models.Hospital]
	ambulances    *geoindex.Index[models.Ambulance]
	logger        *logrus.Logger
}

func NewFleetService(
	hospitalRepo HospitalRepository,
	ambulanceRepo AmbulanceRepository,
	hospitals *geoindex.Index[models.Hospital],
	ambulances *geoindex.Index[models.Ambulance],
	logger *logrus.Logger,
) FleetService {
	return &fleetService{
		hospitalRepo:  hospitalRepo,
		ambulanceRepo: ambulanceRepo,
		hospitals:     hospitals,
		ambulances:    ambulances,
		logger:        logger,
	}
}

// CreateHospital создает больницу
func (s *fleetService) CreateHospital(ctx context.Context, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "CreateHospital",
		"name":    hospital.Name,
	})
	log.Info("Attempting to create a new hospital")

	if err := hospital.Validate(); err != nil {
		log.WithError(err).Warn("Hospital rejected")
		return fmt.Errorf("service: invalid hospital: %w", err)
	}
	if err := s.hospitalRepo.Create(ctx, hospital); err != nil {
		log.WithError(err).Error("Failed to create hospital in repository")
		return fmt.Errorf("service: could not create hospital: %w", err)
	}
	if err := s.hospitals.Upsert(*hospital); err != nil {
		return fmt.Errorf("service: could not index hospital: %w", err)
	}

	log.WithField("hospital_id", hospital.ID).Info("Hospital created successfully")
	return nil
}

// GetHospital возвращает больницу из индекса
func (s *fleetService) GetHospital(ctx context.Context, id uuid.UUID) (*models.Hospital, error) {
	h, ok := s.hospitals.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("service: hospital %s: %w", id, models.ErrNotFound)
	}
	return &h, nil
}

func (s *fleetService) ListHospitals(ctx context.Context, page, pageSize int) ([]*models.Hospital, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "fleet",
		"method":    "ListHospitals",
		"page":      page,
		"page_size": pageSize,
	})

	hospitals, err := s.hospitalRepo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list hospitals from repository")
		return nil, fmt.Errorf("service: could not list hospitals: %w", err)
	}
	log.WithField("count", len(hospitals)).Info("Hospitals listed successfully")
	return hospitals, nil
}

// UpdateHospital заменяет изменяемые поля больницы
func (s *fleetService) UpdateHospital(ctx context.Context, ownerID string, hospital *models.Hospital) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "UpdateHospital",
		"hospital_id": hospital.ID,
	})
	log.Info("Attempting to update hospital")

	existing, err := s.ownedHospital(ctx, ownerID, hospital.ID)
	if err != nil {
		log.WithError(err).Warn("Hospital update refused")
		return err
	}

	existing.Name = hospital.Name
	existing.Address = hospital.Address
	existing.Contact = hospital.Contact
	existing.Location = hospital.Location
	existing.TotalBeds = hospital.TotalBeds
	existing.AvailableBeds = hospital.AvailableBeds
	existing.ERWaitMinutes = hospital.ERWaitMinutes
	existing.ERCapacityPercent = hospital.ERCapacityPercent
	existing.AmbulancesEnRoute = hospital.AmbulancesEnRoute

	if err := s.saveHospital(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update hospital")
		return err
	}
	*hospital = *existing
	log.Info("Hospital updated successfully")
	return nil
}

// UpdateBeds фиксирует число свободных коек после поступления или выписки
func (s *fleetService) UpdateBeds(ctx context.Context, ownerID string, id uuid.UUID, availableBeds int) (*models.Hospital, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "fleet",
		"method":         "UpdateBeds",
		"hospital_id":    id,
		"available_beds": availableBeds,
	})

	existing, err := s.ownedHospital(ctx, ownerID, id)
	if err != nil {
		log.WithError(err).Warn("Bed update refused")
		return nil, err
	}
	existing.AvailableBeds = availableBeds
	if err := s.saveHospital(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update beds")
		return nil, err
	}
	log.Info("Beds updated")
	return existing, nil
}

// DeleteHospital удаляет больницу и снимает с нее назначения скорых в индексе
func (s *fleetService) DeleteHospital(ctx context.Context, ownerID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "fleet",
		"method":      "DeleteHospital",
		"hospital_id": id,
	})
	log.Info("Attempting to delete hospital")

	if _, err := s.ownedHospital(ctx, ownerID, id); err != nil {
		log.WithError(err).Warn("Hospital delete refused")
		return err
	}
	if err := s.hospitalRepo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete hospital in repository")
		return fmt.Errorf("service: could not delete hospital: %w", err)
	}
	s.hospitals.Remove(id.String())

	// В бд assigned_hospital_id сбрасывается через ON DELETE SET NULL
	for _, a := range s.ambulances.Snapshot() {
		if a.AssignedHospitalID == nil || *a.AssignedHospitalID != id {
			continue
		}
		_, err := s.ambulances.Modify(a.Key(), func(cur models.Ambulance) (models.Ambulance, error) {
			cur.AssignedHospitalID = nil
			return cur, nil
		})
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Warn("Failed to clear ambulance assignment in index")
		}
	}

	log.Info("Hospital deleted successfully")
	return nil
}

// CreateAmbulance создает скорую; статус по умолчанию available
func (s *fleetService) CreateAmbulance(ctx context.Context, ambulance *models.Ambulance) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":        "fleet",
		"method":         "CreateAmbulance",
		"vehicle_number": ambulance.VehicleNumber,
	})
	log.Info("Attempting to create a new ambulance")

	if ambulance.Status == "" {
		ambulance.Status = models.AmbulanceAvailable
	}
	if err := ambulance.Validate(); err != nil {
		log.WithError(err).Warn("Ambulance rejected")
		return fmt.Errorf("service: invalid ambulance: %w", err)
	}
	if err := s.checkAssignment(ambulance.AssignedHospitalID); err != nil {
		return err
	}
	if err := s.ambulanceRepo.Create(ctx, ambulance); err != nil {
		log.WithError(err).Error("Failed to create ambulance in repository")
		return fmt.Errorf("service: could not create ambulance: %w", err)
	}
	if err := s.ambulances.Upsert(*ambulance); err != nil {
		return fmt.Errorf("service: could not index ambulance: %w", err)
	}

	log.WithField("ambulance_id", ambulance.ID).Info("Ambulance created successfully")
	return nil
}

func (s *fleetService) GetAmbulance(ctx context.Context, id uuid.UUID) (*models.Ambulance, error) {
	a, ok := s.ambulances.Get(id.String())
	if !ok {
		return nil, fmt.Errorf("service: ambulance %s: %w", id, models.ErrNotFound)
	}
	return &a, nil
}

func (s *fleetService) ListAmbulances(ctx context.Context, page, pageSize int) ([]*models.Ambulance, error) {
	page, pageSize = normalizePage(page, pageSize)
	log := s.logger.WithFields(logrus.Fields{
		"service":   "fleet",
		"method":    "ListAmbulances",
		"page":      page,
		"page_size": pageSize,
	})

	ambulances, err := s.ambulanceRepo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list ambulances from repository")
		return nil, fmt.Errorf("service: could not list ambulances: %w", err)
	}
	log.WithField("count", len(ambulances)).Info("Ambulances listed successfully")
	return ambulances, nil
}

// UpdateAmbulanceLocation обновляет позицию скорой по запросу владельца
func (s *fleetService) UpdateAmbulanceLocation(ctx context.Context, ownerID string, id uuid.UUID, location models.Point) (*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "UpdateAmbulanceLocation",
		"ambulance_id": id,
	})

	if err := location.Validate(); err != nil {
		return nil, fmt.Errorf("service: invalid location: %w", err)
	}
	if _, err := s.ownedAmbulance(ctx, ownerID, id); err != nil {
		log.WithError(err).Warn("Location update refused")
		return nil, err
	}
	updated, err := s.moveAmbulance(ctx, id, location, time.Time{})
	if err != nil {
		log.WithError(err).Error("Failed to update ambulance location")
		return nil, err
	}
	return updated, nil
}

// UpdateAmbulanceStatus меняет статус и назначенную больницу
func (s *fleetService) UpdateAmbulanceStatus(ctx context.Context, ownerID string, id uuid.UUID, status models.AmbulanceStatus, assignedHospitalID *uuid.UUID) (*models.Ambulance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "UpdateAmbulanceStatus",
		"ambulance_id": id,
		"status":       status,
	})

	if _, err := models.ParseAmbulanceStatus(string(status)); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := s.checkAssignment(assignedHospitalID); err != nil {
		return nil, err
	}
	existing, err := s.ownedAmbulance(ctx, ownerID, id)
	if err != nil {
		log.WithError(err).Warn("Status update refused")
		return nil, err
	}
	if err := s.ambulanceRepo.UpdateStatus(ctx, id, status, assignedHospitalID); err != nil {
		log.WithError(err).Error("Failed to update ambulance status in repository")
		return nil, fmt.Errorf("service: could not update ambulance status: %w", err)
	}

	apply := func(cur models.Ambulance) (models.Ambulance, error) {
		cur.Status = status
		cur.AssignedHospitalID = assignedHospitalID
		return cur, nil
	}
	updated, err := s.ambulances.Modify(id.String(), apply)
	if errors.Is(err, models.ErrNotFound) {
		fresh, _ := apply(*existing)
		err = s.ambulances.Upsert(fresh)
		updated = fresh
	}
	if err != nil {
		return nil, fmt.Errorf("service: could not index ambulance: %w", err)
	}

	log.Info("Ambulance status updated")
	return &updated, nil
}

func (s *fleetService) DeleteAmbulance(ctx context.Context, ownerID string, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "DeleteAmbulance",
		"ambulance_id": id,
	})

	if _, err := s.ownedAmbulance(ctx, ownerID, id); err != nil {
		log.WithError(err).Warn("Ambulance delete refused")
		return err
	}
	if err := s.ambulanceRepo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete ambulance in repository")
		return fmt.Errorf("service: could not delete ambulance: %w", err)
	}
	s.ambulances.Remove(id.String())
	log.Info("Ambulance deleted successfully")
	return nil
}

// ApplyPositionUpdate применяет отметку телеметрии. Владелец не проверяется:
// очередь наполняется только через эндпоинт с API-ключом.
// Отметка старше уже примененной пропускается без ошибки.
func (s *fleetService) ApplyPositionUpdate(ctx context.Context, update models.PositionUpdate) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "fleet",
		"method":       "ApplyPositionUpdate",
		"ambulance_id": update.AmbulanceID,
	})

	if err := update.Location.Validate(); err != nil {
		return fmt.Errorf("service: invalid position update for %s: %w", update.AmbulanceID, err)
	}
	if cur, ok := s.ambulances.Get(update.AmbulanceID.String()); ok && isStale(update.RecordedAt, cur.LastPingAt) {
		log.WithFields(logrus.Fields{
			"recorded_at":  update.RecordedAt,
			"last_ping_at": cur.LastPingAt,
		}).Debug("Skipping stale position update")
		return nil
	}
	if _, err := s.moveAmbulance(ctx, update.AmbulanceID, update.Location, update.RecordedAt); err != nil {
		return err
	}
	log.Debug("Position update applied")
	return nil
}

// LoadIndex заполняет индексы из бд при старте
func (s *fleetService) LoadIndex(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "fleet",
		"method":  "LoadIndex",
	})

	hospitals, err := s.hospitalRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("service: could not load hospitals: %w", err)
	}
	for _, h := range hospitals {
		if err := s.hospitals.Upsert(*h); err != nil {
			log.WithError(err).WithField("hospital_id", h.ID).Warn("Skipping hospital with invalid location")
		}
	}

	ambulances, err := s.ambulanceRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("service: could not load ambulances: %w", err)
	}
	for _, a := range ambulances {
		if err := s.ambulances.Upsert(*a); err != nil {
			log.WithError(err).WithField("ambulance_id", a.ID).Warn("Skipping ambulance with invalid location")
		}
	}

	log.WithFields(logrus.Fields{
		"hospitals":  s.hospitals.Len(),
		"ambulances": s.ambulances.Len(),
	}).Info("Geo index loaded")
	return nil
}

func (s *fleetService) Stats(ctx context.Context) Stats {
	available := 0
	for _, a := range s.ambulances.Snapshot() {
		if a.Status == models.AmbulanceAvailable {
			available++
		}
	}
	return Stats{
		Hospitals:  s.hospitals.Len(),
		Ambulances: s.ambulances.Len(),
		Available:  available,
	}
}

func (s *fleetService) ownedHospital(ctx context.Context, ownerID string, id uuid.UUID) (*models.Hospital, error) {
	existing, err := s.hospitalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get hospital: %w", err)
	}
	if existing.OwnerID != ownerID {
		return nil, fmt.Errorf("service: hospital %s belongs to another owner: %w", id, models.ErrForbidden)
	}
	return existing, nil
}

func (s *fleetService) ownedAmbulance(ctx context.Context, ownerID string, id uuid.UUID) (*models.Ambulance, error) {
	existing, err := s.ambulanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get ambulance: %w", err)
	}
	if existing.OwnerID != ownerID {
		return nil, fmt.Errorf("service: ambulance %s belongs to another owner: %w", id, models.ErrForbidden)
	}
	return existing, nil
}

func (s *fleetService) saveHospital(ctx context.Context, h *models.Hospital) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("service: invalid hospital: %w", err)
	}
	if err := s.hospitalRepo.Update(ctx, h); err != nil {
		return fmt.Errorf("service: could not update hospital: %w", err)
	}
	if err := s.hospitals.Upsert(*h); err != nil {
		return fmt.Errorf("service: could not index hospital: %w", err)
	}
	return nil
}

// moveAmbulance пишет позицию в бд и в индекс. Если скорой нет в индексе, она подгружается из бд.
// Ненулевой recordedAt сдвигает LastPingAt вперед.
func (s *fleetService) moveAmbulance(ctx context.Context, id uuid.UUID, location models.Point, recordedAt time.Time) (*models.Ambulance, error) {
	if err := s.ambulanceRepo.UpdateLocation(ctx, id, location); err != nil {
		return nil, fmt.Errorf("service: could not update ambulance location: %w", err)
	}

	updated, err := s.ambulances.Modify(id.String(), func(cur models.Ambulance) (models.Ambulance, error) {
		cur.Location = location
		if recordedAt.After(cur.LastPingAt) {
			cur.LastPingAt = recordedAt
		}
		return cur, nil
	})
	if errors.Is(err, models.ErrNotFound) {
		fresh, getErr := s.ambulanceRepo.GetByID(ctx, id)
		if getErr != nil {
			return nil, fmt.Errorf("service: could not reload ambulance: %w", getErr)
		}
		fresh.Location = location
		fresh.LastPingAt = recordedAt
		err = s.ambulances.Upsert(*fresh)
		updated = *fresh
	}
	if err != nil {
		return nil, fmt.Errorf("service: could not index ambulance: %w", err)
	}
	return &updated, nil
}

func (s *fleetService) checkAssignment(hospitalID *uuid.UUID) error {
	if hospitalID == nil {
		return nil
	}
	if _, ok := s.hospitals.Get(hospitalID.String()); !ok {
		return fmt.Errorf("service: %w: assigned hospital %s does not exist", models.ErrInvalidInput, hospitalID)
	}
	return nil
}

// isStale - отметка без времени никогда не считается устаревшей
func isStale(recordedAt, lastPingAt time.Time) bool {
	return !recordedAt.IsZero() && recordedAt.Before(lastPingAt)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
