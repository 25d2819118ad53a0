package severity

import (
	"errors"
	"math"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestAssess_CriticalCardiac(t *testing.T) {
	a := NewAssessor(ModeStrict)

	got, err := a.Assess(Input{
		Symptoms: []string{"cardiac"},
		VitalSigns: VitalSigns{
			HeartRate:        f(130),
			BloodPressure:    &BloodPressure{Systolic: 190, Diastolic: 100},
			OxygenSaturation: f(88),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 105, got.Score)
	assert.Equal(t, TierCritical, got.Tier)
	assert.Equal(t, []string{ResourceALS, ResourceTrauma, ResourceEquipment}, got.RecommendedResources)
	assert.Equal(t, []string{"cardiac"}, got.MatchedKeywords)
	assert.False(t, got.Degraded)
}

func TestAssess_KeywordsCaseInsensitiveAndCountedOnce(t *testing.T) {
	a := NewAssessor(ModeStrict)

	got, err := a.Assess(Input{Symptoms: []string{"Suspected STROKE", "stroke symptoms", "minor burns on arm"}})

	require.NoError(t, err)
	assert.Equal(t, 45+25, got.Score)
	assert.Equal(t, TierSevere, got.Tier)
	assert.Equal(t, []string{"stroke", "burn"}, got.MatchedKeywords)
}

func TestAssess_Tiers(t *testing.T) {
	a := NewAssessor(ModeStrict)
	cases := []struct {
		name     string
		in       Input
		score    int
		tier     Tier
		resource []string
	}{
		{"no findings", Input{}, 0, TierLow, []string{ResourceBLS}},
		{"burn only", Input{Symptoms: []string{"burn"}}, 25, TierLow, []string{ResourceBLS}},
		{"respiratory boundary", Input{Symptoms: []string{"respiratory distress"}}, 30, TierLow, []string{ResourceBLS}},
		{"trauma", Input{Symptoms: []string{"head trauma"}}, 35, TierModerate, []string{ResourceBLS, ResourceDoctor}},
		{"trauma and low spo2", Input{Symptoms: []string{"trauma"}, VitalSigns: VitalSigns{OxygenSaturation: f(85)}}, 60, TierSevere, []string{ResourceALS, ResourceTrauma}},
		{"exactly 80", Input{Symptoms: []string{"cardiac"}, VitalSigns: VitalSigns{HeartRate: f(40), RespiratoryRate: f(35)}}, 80, TierSevere, []string{ResourceALS, ResourceTrauma}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.Assess(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.score, got.Score)
			assert.Equal(t, tc.tier, got.Tier)
			assert.Equal(t, tc.resource, got.RecommendedResources)
		})
	}
}

func TestAssess_VitalThresholds(t *testing.T) {
	a := NewAssessor(ModeStrict)
	cases := []struct {
		name  string
		v     VitalSigns
		score int
	}{
		{"heart rate 120 normal", VitalSigns{HeartRate: f(120)}, 0},
		{"heart rate 121", VitalSigns{HeartRate: f(121)}, 20},
		{"heart rate 49", VitalSigns{HeartRate: f(49)}, 20},
		{"systolic 90 normal", VitalSigns{BloodPressure: &BloodPressure{Systolic: 90, Diastolic: 60}}, 0},
		{"systolic 89", VitalSigns{BloodPressure: &BloodPressure{Systolic: 89, Diastolic: 60}}, 20},
		{"systolic 181", VitalSigns{BloodPressure: &BloodPressure{Systolic: 181, Diastolic: 95}}, 20},
		{"spo2 90 normal", VitalSigns{OxygenSaturation: f(90)}, 0},
		{"respiratory 9", VitalSigns{RespiratoryRate: f(9)}, 20},
		{"respiratory 31", VitalSigns{RespiratoryRate: f(31)}, 20},
		{"all abnormal", VitalSigns{HeartRate: f(150), BloodPressure: &BloodPressure{Systolic: 70}, OxygenSaturation: f(80), RespiratoryRate: f(40)}, 85},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := a.Assess(Input{VitalSigns: tc.v})
			require.NoError(t, err)
			assert.Equal(t, tc.score, got.Score)
		})
	}
}

func TestAssess_StrictRejectsMalformed(t *testing.T) {
	a := NewAssessor(ModeStrict)

	_, err := a.Assess(Input{VitalSigns: VitalSigns{HeartRate: f(math.NaN())}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
	assert.ErrorContains(t, err, "heart_rate")

	_, err = a.Assess(Input{Symptoms: []string{"cardiac", "  "}})
	assert.ErrorContains(t, err, "symptoms[1]")

	_, err = a.Assess(Input{VitalSigns: VitalSigns{OxygenSaturation: f(120)}})
	assert.ErrorContains(t, err, "oxygen_saturation")

	_, err = a.Assess(Input{VitalSigns: VitalSigns{BloodPressure: &BloodPressure{Systolic: -5}}})
	assert.ErrorContains(t, err, "blood_pressure.systolic")
}

func TestAssess_DegradedFallback(t *testing.T) {
	a := NewAssessor(ModeDegraded)

	got, err := a.Assess(Input{VitalSigns: VitalSigns{RespiratoryRate: f(math.Inf(1))}})

	require.NoError(t, err)
	assert.True(t, got.Degraded)
	assert.Equal(t, TierModerate, got.Tier)
	assert.Equal(t, 40, got.Score)
	assert.Equal(t, []string{ResourceBLS, ResourceDoctor}, got.RecommendedResources)
	assert.Contains(t, got.DegradedReason, "respiratory_rate")
}

func TestAssess_DegradedModeScoresValidInputNormally(t *testing.T) {
	a := NewAssessor(ModeDegraded)

	got, err := a.Assess(Input{Symptoms: []string{"cardiac arrest"}})

	require.NoError(t, err)
	assert.False(t, got.Degraded)
	assert.Equal(t, 40, got.Score)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeStrict, m)

	m, err = ParseMode(" Degraded ")
	require.NoError(t, err)
	assert.Equal(t, ModeDegraded, m)

	_, err = ParseMode("lenient")
	assert.True(t, errors.Is(err, models.ErrInvalidInput))
}

func TestResourcesFor_ReturnsCopy(t *testing.T) {
	r := ResourcesFor(TierLow)
	r[0] = "changed"
	assert.Equal(t, []string{ResourceBLS}, ResourcesFor(TierLow))
}
