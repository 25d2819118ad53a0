package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/emergency_dispatch_system/internal/eta"
	"github.com/shenikar/emergency_dispatch_system/internal/geoindex"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/severity"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var center = models.Point{Longitude: 37.6173, Latitude: 55.7558}

// near возвращает точку примерно в meters к северу от center
func near(meters float64) models.Point {
	return models.Point{Longitude: center.Longitude, Latitude: center.Latitude + meters/111195.0}
}

// newTestDispatchService - сервис поверх настоящих индексов
func newTestDispatchService(t *testing.T, mode severity.Mode) (*dispatchService, *geoindex.Index[models.Hospital], *geoindex.Index[models.Ambulance]) {
	t.Helper()
	hospitals := geoindex.New[models.Hospital](geoindex.DefaultCellLevel)
	ambulances := geoindex.New[models.Ambulance](geoindex.DefaultCellLevel)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewDispatchService(hospitals, ambulances, severity.NewAssessor(mode), logger)
	return svc.(*dispatchService), hospitals, ambulances
}

func hospitalAt(name string, p models.Point, total, available int) models.Hospital {
	return models.Hospital{
		ID:            uuid.New(),
		Name:          name,
		Location:      p,
		TotalBeds:     total,
		AvailableBeds: available,
	}
}

func TestNearestHospitals_FiltersByBedsAndOrdersByDistance(t *testing.T) {
	// Подготовка
	svc, hospitals, _ := newTestDispatchService(t, severity.ModeStrict)
	far := hospitalAt("far", near(3000), 50, 5)
	nearby := hospitalAt("nearby", near(500), 50, 5)
	full := hospitalAt("full", near(200), 50, 0)
	outside := hospitalAt("outside", near(9000), 50, 5)
	for _, h := range []models.Hospital{far, nearby, full, outside} {
		require.NoError(t, hospitals.Upsert(h))
	}
	minBeds := 1

	// Действие
	matches, err := svc.NearestHospitals(context.Background(), HospitalQuery{
		Location:          center,
		MaxDistanceMeters: 5000,
		MinAvailableBeds:  &minBeds,
	})

	// Проверки
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "nearby", matches[0].Hospital.Name)
	assert.Equal(t, "far", matches[1].Hospital.Name)
	assert.InDelta(t, 500, matches[0].DistanceMeters, 5)
}

func TestNearestHospitals_WithoutMinBedsKeepsFullHospitals(t *testing.T) {
	svc, hospitals, _ := newTestDispatchService(t, severity.ModeStrict)
	require.NoError(t, hospitals.Upsert(hospitalAt("full", near(200), 50, 0)))

	matches, err := svc.NearestHospitals(context.Background(), HospitalQuery{Location: center})

	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestNearestHospitals_InvalidInput(t *testing.T) {
	svc, _, _ := newTestDispatchService(t, severity.ModeStrict)
	ctx := context.Background()
	negative := -1

	_, err := svc.NearestHospitals(ctx, HospitalQuery{Location: center, MinAvailableBeds: &negative})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.NearestHospitals(ctx, HospitalQuery{Location: center, MaxDistanceMeters: -10})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.NearestHospitals(ctx, HospitalQuery{Location: models.Point{Longitude: 200, Latitude: 0}})
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestHospitalsWithBeds_DefaultsToOneBed(t *testing.T) {
	svc, hospitals, _ := newTestDispatchService(t, severity.ModeStrict)
	require.NoError(t, hospitals.Upsert(hospitalAt("full", near(200), 50, 0)))
	require.NoError(t, hospitals.Upsert(hospitalAt("free", near(800), 50, 1)))

	matches, err := svc.HospitalsWithBeds(context.Background(), HospitalQuery{Location: center})

	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "free", matches[0].Hospital.Name)
}

func TestNearestAvailableAmbulances(t *testing.T) {
	// Подготовка
	svc, hospitals, ambulances := newTestDispatchService(t, severity.ModeStrict)
	hospital := hospitalAt("base", near(100), 10, 5)
	require.NoError(t, hospitals.Upsert(hospital))

	free := models.Ambulance{
		ID:                 uuid.New(),
		VehicleNumber:      "A-1",
		Status:             models.AmbulanceAvailable,
		Location:           near(1000),
		AssignedHospitalID: &hospital.ID,
	}
	busy := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-2", Status: models.AmbulanceBusy, Location: near(300)}
	repair := models.Ambulance{ID: uuid.New(), VehicleNumber: "A-3", Status: models.AmbulanceMaintenance, Location: near(400)}
	for _, a := range []models.Ambulance{free, busy, repair} {
		require.NoError(t, ambulances.Upsert(a))
	}

	// Действие
	matches, err := svc.NearestAvailableAmbulances(context.Background(), AmbulanceQuery{Location: center})

	// Проверки
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, free.ID, matches[0].Ambulance.ID)
	require.NotNil(t, matches[0].AssignedHospital)
	assert.Equal(t, hospital.ID, matches[0].AssignedHospital.ID)
	assert.InDelta(t, eta.FreeFlowMinutes(matches[0].DistanceMeters), matches[0].ETAMinutes, 1e-9)
}

func TestRankByProjectedCapacity(t *testing.T) {
	// 1h: big = 10 + 8 = 18, mid = 10 + 4 = 14, empty = 0
	big := hospitalAt("big", near(3000), 100, 10)
	mid := hospitalAt("mid", near(1000), 50, 10)
	empty := hospitalAt("empty", near(10), 0, 0)

	ranked, err := RankByProjectedCapacity([]models.Hospital{empty, mid, big}, 1, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "big", ranked[0].Hospital.Name)
	assert.Equal(t, 18, ranked[0].ProjectedAvailable)
	assert.Equal(t, "mid", ranked[1].Hospital.Name)
	assert.Equal(t, "empty", ranked[2].Hospital.Name)
	assert.Nil(t, ranked[0].DistanceMeters)

	ranked, err = RankByProjectedCapacity([]models.Hospital{mid, big}, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, 34, ranked[0].ProjectedAvailable)
	assert.Equal(t, 22, ranked[1].ProjectedAvailable)
}

func TestRankByProjectedCapacity_Ties(t *testing.T) {
	a := hospitalAt("a", near(100), 10, 2)
	b := hospitalAt("b", near(100), 10, 2)
	c := hospitalAt("c", near(100), 10, 2)

	// Без расстояний сохраняется исходный порядок
	ranked, err := RankByProjectedCapacity([]models.Hospital{c, a, b}, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, rankedNames(ranked))

	// С расстояниями - ближние первыми, без расстояния - в конце
	distances := map[uuid.UUID]float64{a.ID: 900, b.ID: 100}
	ranked, err = RankByProjectedCapacity([]models.Hospital{c, a, b}, 1, distances)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, rankedNames(ranked))
	require.NotNil(t, ranked[0].DistanceMeters)
	assert.Equal(t, 100.0, *ranked[0].DistanceMeters)
	assert.Nil(t, ranked[2].DistanceMeters)
}

func TestRankByProjectedCapacity_InvalidHorizon(t *testing.T) {
	_, err := RankByProjectedCapacity(nil, 2, nil)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestRankedHospitals_UsesQueryDistances(t *testing.T) {
	svc, hospitals, _ := newTestDispatchService(t, severity.ModeStrict)
	farther := hospitalAt("farther", near(2000), 10, 2)
	closer := hospitalAt("closer", near(700), 10, 2)
	require.NoError(t, hospitals.Upsert(farther))
	require.NoError(t, hospitals.Upsert(closer))

	ranked, err := svc.RankedHospitals(context.Background(), HospitalQuery{Location: center}, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"closer", "farther"}, rankedNames(ranked))
	assert.Equal(t, 3, ranked[0].HorizonHours)
}

func TestProjectCapacity(t *testing.T) {
	svc, hospitals, _ := newTestDispatchService(t, severity.ModeStrict)
	h := models.Hospital{
		ID:                uuid.New(),
		Location:          center,
		TotalBeds:         100,
		AvailableBeds:     5,
		ERCapacityPercent: 80,
		AmbulancesEnRoute: 3,
	}
	require.NoError(t, hospitals.Upsert(h))

	report, err := svc.ProjectCapacity(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID, report.Hospital.ID)
	// 8 - 0.24 - 0.8 = 6.96 -> 7
	assert.Equal(t, 7, report.Projection.HourlyNetChange)
	assert.Equal(t, 12, report.Projection.AvailableIn1Hour)
	assert.Equal(t, 26, report.Projection.AvailableIn3Hours)

	_, err = svc.ProjectCapacity(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAssessSeverity_Modes(t *testing.T) {
	bad := severity.Input{Symptoms: []string{" "}}

	strict, _, _ := newTestDispatchService(t, severity.ModeStrict)
	_, err := strict.AssessSeverity(context.Background(), bad)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	degraded, _, _ := newTestDispatchService(t, severity.ModeDegraded)
	assessment, err := degraded.AssessSeverity(context.Background(), bad)
	require.NoError(t, err)
	assert.True(t, assessment.Degraded)
	assert.Equal(t, severity.TierModerate, assessment.Tier)
}

func TestEstimateArrival_WrapsInvalidTraffic(t *testing.T) {
	svc, _, _ := newTestDispatchService(t, severity.ModeStrict)

	_, err := svc.EstimateArrival(context.Background(), center, near(1000), eta.Traffic{CongestionLevel: 2})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
	assert.ErrorContains(t, err, "could not estimate arrival")
}

func TestTriage_HorizonFollowsTier(t *testing.T) {
	// Подготовка
	svc, hospitals, ambulances := newTestDispatchService(t, severity.ModeStrict)
	require.NoError(t, hospitals.Upsert(hospitalAt("free", near(600), 100, 10)))
	require.NoError(t, hospitals.Upsert(hospitalAt("full", near(300), 100, 0)))
	require.NoError(t, ambulances.Upsert(models.Ambulance{
		ID: uuid.New(), VehicleNumber: "A-1", Status: models.AmbulanceAvailable, Location: near(900),
	}))

	// Действие
	critical, err := svc.Triage(context.Background(), TriageRequest{
		Location: center,
		Severity: severity.Input{Symptoms: []string{"Cardiac arrest", "possible stroke"}},
	})
	require.NoError(t, err)
	low, err := svc.Triage(context.Background(), TriageRequest{
		Location: center,
		Severity: severity.Input{Symptoms: []string{"headache"}},
	})
	require.NoError(t, err)

	// Проверки
	assert.Equal(t, severity.TierCritical, critical.Assessment.Tier)
	assert.Equal(t, 1, critical.HorizonHours)
	assert.Len(t, critical.Ambulances, 1)
	require.Len(t, critical.Hospitals, 1)
	assert.Equal(t, "free", critical.Hospitals[0].Hospital.Name)

	assert.Equal(t, severity.TierLow, low.Assessment.Tier)
	assert.Equal(t, 3, low.HorizonHours)
}

func TestTriage_StrictRejectsInvalidVitals(t *testing.T) {
	svc, _, _ := newTestDispatchService(t, severity.ModeStrict)
	hr := -5.0

	_, err := svc.Triage(context.Background(), TriageRequest{
		Location: center,
		Severity: severity.Input{VitalSigns: severity.VitalSigns{HeartRate: &hr}},
	})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func rankedNames(ranked []RankedHospital) []string {
	names := make([]string, len(ranked))
	for i, r := range ranked {
		names[i] = r.Hospital.Name
	}
	return names
}
