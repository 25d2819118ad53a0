package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/geoindex"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	repomocks "github.com/shenikar/emergency_dispatch_system/internal/repository/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const owner = "owner-1"

type fleetFixture struct {
	svc           *fleetService
	hospitalRepo  *repomocks.MockHospitalRepository
	ambulanceRepo *repomocks.MockAmbulanceRepository
	hospitals     *geoindex.Index[models.Hospital]
	ambulances    *geoindex.Index[models.Ambulance]
}

// newTestFleetService - вспомогательная функция для создания сервиса с моками репозиториев
func newTestFleetService(t *testing.T) *fleetFixture {
	ctrl := gomock.NewController(t)
	hospitalRepo := repomocks.NewMockHospitalRepository(ctrl)
	ambulanceRepo := repomocks.NewMockAmbulanceRepository(ctrl)
	hospitals := geoindex.New[models.Hospital](geoindex.DefaultCellLevel)
	ambulances := geoindex.New[models.Ambulance](geoindex.DefaultCellLevel)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewFleetService(hospitalRepo, ambulanceRepo, hospitals, ambulances, logger)
	return &fleetFixture{
		svc:           svc.(*fleetService),
		hospitalRepo:  hospitalRepo,
		ambulanceRepo: ambulanceRepo,
		hospitals:     hospitals,
		ambulances:    ambulances,
	}
}

func ownedHospital() models.Hospital {
	h := hospitalAt("City Hospital", center, 20, 5)
	h.OwnerID = owner
	return h
}

func TestCreateHospital_Success(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	h := &models.Hospital{Name: "City Hospital", Location: center, TotalBeds: 20, AvailableBeds: 5, OwnerID: owner}
	newID := uuid.New()

	// Ожидания
	f.hospitalRepo.EXPECT().
		Create(ctx, h).
		DoAndReturn(func(ctx context.Context, h *models.Hospital) error {
			// Симулируем, что БД присвоила ID
			h.ID = newID
			return nil
		}).Times(1)

	// Действие
	err := f.svc.CreateHospital(ctx, h)

	// Проверки
	require.NoError(t, err)
	got, err := f.svc.GetHospital(ctx, newID)
	require.NoError(t, err)
	assert.Equal(t, "City Hospital", got.Name)
}

func TestCreateHospital_InvalidBeds(t *testing.T) {
	f := newTestFleetService(t)
	h := &models.Hospital{Name: "Broken", Location: center, TotalBeds: 2, AvailableBeds: 5}

	// Репозиторий не вызывается
	err := f.svc.CreateHospital(context.Background(), h)

	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.Equal(t, 0, f.hospitals.Len())
}

func TestCreateHospital_RepositoryError(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	h := &models.Hospital{Name: "City Hospital", Location: center, TotalBeds: 20}

	f.hospitalRepo.EXPECT().Create(ctx, h).Return(errors.New("db down")).Times(1)

	err := f.svc.CreateHospital(ctx, h)

	assert.ErrorContains(t, err, "could not create hospital")
	assert.Equal(t, 0, f.hospitals.Len())
}

func TestGetHospital_NotFound(t *testing.T) {
	f := newTestFleetService(t)

	_, err := f.svc.GetHospital(context.Background(), uuid.New())

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListHospitals_NormalizesPagination(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	expected := []*models.Hospital{{Name: "A"}}

	f.hospitalRepo.EXPECT().List(ctx, 1, 20).Return(expected, nil).Times(1)

	got, err := f.svc.ListHospitals(ctx, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestUpdateBeds_Success(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := ownedHospital()
	require.NoError(t, f.hospitals.Upsert(stored))

	// Ожидания
	f.hospitalRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)
	f.hospitalRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, h *models.Hospital) error {
			assert.Equal(t, 12, h.AvailableBeds)
			return nil
		}).Times(1)

	// Действие
	updated, err := f.svc.UpdateBeds(ctx, owner, stored.ID, 12)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 12, updated.AvailableBeds)
	indexed, ok := f.hospitals.Get(stored.ID.String())
	require.True(t, ok)
	assert.Equal(t, 12, indexed.AvailableBeds)
}

func TestUpdateBeds_Forbidden(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := ownedHospital()

	f.hospitalRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)

	_, err := f.svc.UpdateBeds(ctx, "someone-else", stored.ID, 3)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestUpdateBeds_ExceedsTotal(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := ownedHospital()

	f.hospitalRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)

	_, err := f.svc.UpdateBeds(ctx, owner, stored.ID, stored.TotalBeds+1)

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateHospital_NotFound(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	id := uuid.New()

	f.hospitalRepo.EXPECT().
		GetByID(ctx, id).
		Return(nil, models.ErrNotFound).
		Times(1)

	err := f.svc.UpdateHospital(ctx, owner, &models.Hospital{ID: id})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateHospital_KeepsOwnerAndMovesInIndex(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := ownedHospital()
	require.NoError(t, f.hospitals.Upsert(stored))
	input := stored
	input.OwnerID = "ignored"
	input.Location = near(4000)

	f.hospitalRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)
	f.hospitalRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	err := f.svc.UpdateHospital(ctx, owner, &input)

	require.NoError(t, err)
	assert.Equal(t, owner, input.OwnerID)
	matches, err := f.hospitals.QueryRadius(center, 1000, nil)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDeleteHospital_ClearsAssignments(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := ownedHospital()
	require.NoError(t, f.hospitals.Upsert(stored))
	ambulance := models.Ambulance{
		ID:                 uuid.New(),
		VehicleNumber:      "A-1",
		Status:             models.AmbulanceBusy,
		Location:           near(100),
		AssignedHospitalID: &stored.ID,
	}
	require.NoError(t, f.ambulances.Upsert(ambulance))

	// Ожидания
	f.hospitalRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)
	f.hospitalRepo.EXPECT().Delete(ctx, stored.ID).Return(nil).Times(1)

	// Действие
	err := f.svc.DeleteHospital(ctx, owner, stored.ID)

	// Проверки
	require.NoError(t, err)
	_, ok := f.hospitals.Get(stored.ID.String())
	assert.False(t, ok)
	got, ok := f.ambulances.Get(ambulance.ID.String())
	require.True(t, ok)
	assert.Nil(t, got.AssignedHospitalID)
}

func TestCreateAmbulance_DefaultsToAvailable(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	a := &models.Ambulance{VehicleNumber: "A-7", Location: center, OwnerID: owner}

	f.ambulanceRepo.EXPECT().
		Create(ctx, a).
		DoAndReturn(func(ctx context.Context, a *models.Ambulance) error {
			a.ID = uuid.New()
			return nil
		}).Times(1)

	err := f.svc.CreateAmbulance(ctx, a)

	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceAvailable, a.Status)
	assert.Equal(t, 1, f.ambulances.Len())
}

func TestCreateAmbulance_UnknownAssignedHospital(t *testing.T) {
	f := newTestFleetService(t)
	missing := uuid.New()
	a := &models.Ambulance{VehicleNumber: "A-7", Location: center, AssignedHospitalID: &missing}

	err := f.svc.CreateAmbulance(context.Background(), a)

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateAmbulanceStatus_Success(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	hospital := ownedHospital()
	require.NoError(t, f.hospitals.Upsert(hospital))
	stored := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: center, OwnerID: owner}
	require.NoError(t, f.ambulances.Upsert(stored))

	f.ambulanceRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)
	f.ambulanceRepo.EXPECT().UpdateStatus(ctx, stored.ID, models.AmbulanceBusy, &hospital.ID).Return(nil).Times(1)

	updated, err := f.svc.UpdateAmbulanceStatus(ctx, owner, stored.ID, models.AmbulanceBusy, &hospital.ID)

	require.NoError(t, err)
	assert.Equal(t, models.AmbulanceBusy, updated.Status)
	indexed, _ := f.ambulances.Get(stored.ID.String())
	assert.Equal(t, models.AmbulanceBusy, indexed.Status)
	assert.Equal(t, hospital.ID, *indexed.AssignedHospitalID)
}

func TestUpdateAmbulanceStatus_InvalidStatus(t *testing.T) {
	f := newTestFleetService(t)

	_, err := f.svc.UpdateAmbulanceStatus(context.Background(), owner, uuid.New(), "flying", nil)

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestDeleteAmbulance_Forbidden(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: center, OwnerID: owner}

	f.ambulanceRepo.EXPECT().GetByID(ctx, stored.ID).Return(&stored, nil).Times(1)

	err := f.svc.DeleteAmbulance(ctx, "intruder", stored.ID)

	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestApplyPositionUpdate_MovesIndexedAmbulance(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: near(4000)}
	require.NoError(t, f.ambulances.Upsert(stored))
	target := near(50)

	// Ожидания
	f.ambulanceRepo.EXPECT().UpdateLocation(ctx, stored.ID, target).Return(nil).Times(1)

	// Действие
	err := f.svc.ApplyPositionUpdate(ctx, models.PositionUpdate{AmbulanceID: stored.ID, Location: target})

	// Проверки: сразу видно в радиусном запросе
	require.NoError(t, err)
	matches, err := f.ambulances.QueryRadius(center, 1000, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, stored.ID, matches[0].Item.ID)
}

func TestApplyPositionUpdate_ReloadsMissingAmbulance(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	stored := &models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: near(4000)}

	f.ambulanceRepo.EXPECT().UpdateLocation(ctx, stored.ID, center).Return(nil).Times(1)
	f.ambulanceRepo.EXPECT().GetByID(ctx, stored.ID).Return(stored, nil).Times(1)

	err := f.svc.ApplyPositionUpdate(ctx, models.PositionUpdate{AmbulanceID: stored.ID, Location: center})

	require.NoError(t, err)
	got, ok := f.ambulances.Get(stored.ID.String())
	require.True(t, ok)
	assert.Equal(t, center, got.Location)
}

func TestApplyPositionUpdate_SkipsOlderPing(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	lastPing := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stored := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: near(50), LastPingAt: lastPing}
	require.NoError(t, f.ambulances.Upsert(stored))

	// Действие: повторно доставленная старая отметка; репозиторий не должен вызываться
	err := f.svc.ApplyPositionUpdate(ctx, models.PositionUpdate{
		AmbulanceID: stored.ID,
		Location:    near(4000),
		RecordedAt:  lastPing.Add(-time.Minute),
	})

	// Проверки
	require.NoError(t, err)
	got, ok := f.ambulances.Get(stored.ID.String())
	require.True(t, ok)
	assert.Equal(t, near(50), got.Location)
	assert.Equal(t, lastPing, got.LastPingAt)
}

func TestApplyPositionUpdate_NewerPingAdvancesLastPing(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	lastPing := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stored := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: near(4000), LastPingAt: lastPing}
	require.NoError(t, f.ambulances.Upsert(stored))
	newer := lastPing.Add(30 * time.Second)

	f.ambulanceRepo.EXPECT().UpdateLocation(ctx, stored.ID, near(50)).Return(nil).Times(1)

	err := f.svc.ApplyPositionUpdate(ctx, models.PositionUpdate{AmbulanceID: stored.ID, Location: near(50), RecordedAt: newer})

	require.NoError(t, err)
	got, ok := f.ambulances.Get(stored.ID.String())
	require.True(t, ok)
	assert.Equal(t, near(50), got.Location)
	assert.Equal(t, newer, got.LastPingAt)

	// Ручное перемещение не сбрасывает время последней отметки
	f.ambulanceRepo.EXPECT().UpdateLocation(ctx, stored.ID, center).Return(nil).Times(1)
	_, err = f.svc.moveAmbulance(ctx, stored.ID, center, time.Time{})
	require.NoError(t, err)
	got, _ = f.ambulances.Get(stored.ID.String())
	assert.Equal(t, newer, got.LastPingAt)
}

func TestApplyPositionUpdate_InvalidCoordinate(t *testing.T) {
	f := newTestFleetService(t)

	err := f.svc.ApplyPositionUpdate(context.Background(), models.PositionUpdate{
		AmbulanceID: uuid.New(),
		Location:    models.Point{Longitude: 10, Latitude: 95},
	})

	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestApplyPositionUpdate_UnknownAmbulance(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()
	id := uuid.New()

	f.ambulanceRepo.EXPECT().UpdateLocation(ctx, id, center).Return(models.ErrNotFound).Times(1)

	err := f.svc.ApplyPositionUpdate(ctx, models.PositionUpdate{AmbulanceID: id, Location: center})

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLoadIndex_SkipsInvalidRows(t *testing.T) {
	// Подготовка
	f := newTestFleetService(t)
	ctx := context.Background()
	good := ownedHospital()
	bad := hospitalAt("bad", models.Point{Longitude: 500, Latitude: 0}, 1, 1)
	ambulance := &models.Ambulance{ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceBusy, Location: center}

	// Ожидания
	f.hospitalRepo.EXPECT().ListAll(ctx).Return([]*models.Hospital{&good, &bad}, nil).Times(1)
	f.ambulanceRepo.EXPECT().ListAll(ctx).Return([]*models.Ambulance{ambulance}, nil).Times(1)

	// Действие
	err := f.svc.LoadIndex(ctx)

	// Проверки
	require.NoError(t, err)
	stats := f.svc.Stats(ctx)
	assert.Equal(t, Stats{Hospitals: 1, Ambulances: 1, Available: 0}, stats)
}

func TestLoadIndex_RepositoryError(t *testing.T) {
	f := newTestFleetService(t)
	ctx := context.Background()

	f.hospitalRepo.EXPECT().ListAll(ctx).Return(nil, errors.New("db down")).Times(1)

	err := f.svc.LoadIndex(ctx)

	assert.ErrorContains(t, err, "could not load hospitals")
}
