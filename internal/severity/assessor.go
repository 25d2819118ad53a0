package severity

import (
	"fmt"
	"math"
	"strings"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

type Tier string

const (
	TierLow      Tier = "Low"
	TierModerate Tier = "Moderate"
	TierSevere   Tier = "Severe"
	TierCritical Tier = "Critical"
)

const (
	ResourceALS       = "Advanced Life Support"
	ResourceBLS       = "Basic Life Support"
	ResourceTrauma    = "Trauma Team"
	ResourceEquipment = "Specialized Equipment"
	ResourceDoctor    = "Medical Doctor"
)

// Mode определяет реакцию на некорректный ввод
type Mode string

const (
	// ModeStrict возвращает ErrInvalidInput
	ModeStrict Mode = "strict"
	// ModeDegraded возвращает резервную оценку Moderate с флагом Degraded
	ModeDegraded Mode = "degraded"
)

// ParseMode разбирает режим из конфигурации; пустая строка - strict
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "", ModeStrict:
		return ModeStrict, nil
	case ModeDegraded:
		return ModeDegraded, nil
	}
	return "", fmt.Errorf("%w: severity mode %q must be strict or degraded", models.ErrInvalidInput, s)
}

type keywordWeight struct {
	keyword string
	weight  int
}

// Порядок таблицы фиксирован, чтобы MatchedKeywords был детерминирован
var keywordTable = []keywordWeight{
	{"cardiac", 40},
	{"stroke", 45},
	{"trauma", 35},
	{"respiratory", 30},
	{"burn", 25},
}

var resourcesByTier = map[Tier][]string{
	TierCritical: {ResourceALS, ResourceTrauma, ResourceEquipment},
	TierSevere:   {ResourceALS, ResourceTrauma},
	TierModerate: {ResourceBLS, ResourceDoctor},
	TierLow:      {ResourceBLS},
}

const fallbackScore = 40

type BloodPressure struct {
	Systolic  float64 `json:"systolic"`
	Diastolic float64 `json:"diastolic"`
}

// VitalSigns - отсутствующее поле (nil) не влияет на оценку
type VitalSigns struct {
	HeartRate        *float64       `json:"heart_rate,omitempty"`
	BloodPressure    *BloodPressure `json:"blood_pressure,omitempty"`
	OxygenSaturation *float64       `json:"oxygen_saturation,omitempty"`
	RespiratoryRate  *float64       `json:"respiratory_rate,omitempty"`
}

type Input struct {
	Symptoms   []string
	VitalSigns VitalSigns
}

type Assessment struct {
	Tier                 Tier     `json:"level"`
	Score                int      `json:"score"`
	RecommendedResources []string `json:"recommended_resources"`
	MatchedKeywords      []string `json:"matched_keywords"`
	Degraded             bool     `json:"degraded"`
	DegradedReason       string   `json:"degraded_reason,omitempty"`
}

// Assessor - детерминированная таблица правил
type Assessor struct {
	mode Mode
}

func NewAssessor(mode Mode) *Assessor {
	if mode != ModeDegraded {
		mode = ModeStrict
	}
	return &Assessor{mode: mode}
}

func (a *Assessor) Mode() Mode {
	return a.mode
}

// Assess вычисляет балл, уровень и рекомендуемые ресурсы.
// В режиме degraded некорректный ввод дает резервную оценку Moderate с Degraded=true вместо ошибки.
func (a *Assessor) Assess(in Input) (Assessment, error) {
	if err := in.Validate(); err != nil {
		if a.mode == ModeDegraded {
			return fallback(err), nil
		}
		return Assessment{}, err
	}

	score := 0
	matched := make([]string, 0)
	for _, kw := range keywordTable {
		if containsKeyword(in.Symptoms, kw.keyword) {
			score += kw.weight
			matched = append(matched, kw.keyword)
		}
	}
	score += vitalsScore(in.VitalSigns)

	tier := TierFor(score)
	return Assessment{
		Tier:                 tier,
		Score:                score,
		RecommendedResources: ResourcesFor(tier),
		MatchedKeywords:      matched,
	}, nil
}

// Validate проверяет, что витальные показатели - конечные неотрицательные числа
func (in Input) Validate() error {
	for i, s := range in.Symptoms {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: symptoms[%d] is empty", models.ErrInvalidInput, i)
		}
	}
	v := in.VitalSigns
	if v.HeartRate != nil && !validReading(*v.HeartRate) {
		return fmt.Errorf("%w: heart_rate must be a non-negative number", models.ErrInvalidInput)
	}
	if v.BloodPressure != nil {
		if !validReading(v.BloodPressure.Systolic) {
			return fmt.Errorf("%w: blood_pressure.systolic must be a non-negative number", models.ErrInvalidInput)
		}
		if !validReading(v.BloodPressure.Diastolic) {
			return fmt.Errorf("%w: blood_pressure.diastolic must be a non-negative number", models.ErrInvalidInput)
		}
	}
	if v.OxygenSaturation != nil && (!validReading(*v.OxygenSaturation) || *v.OxygenSaturation > 100) {
		return fmt.Errorf("%w: oxygen_saturation must be within [0, 100]", models.ErrInvalidInput)
	}
	if v.RespiratoryRate != nil && !validReading(*v.RespiratoryRate) {
		return fmt.Errorf("%w: respiratory_rate must be a non-negative number", models.ErrInvalidInput)
	}
	return nil
}

// TierFor отображает балл в уровень тяжести
func TierFor(score int) Tier {
	switch {
	case score > 80:
		return TierCritical
	case score > 50:
		return TierSevere
	case score > 30:
		return TierModerate
	}
	return TierLow
}

// ResourcesFor возвращает копию списка ресурсов для уровня
func ResourcesFor(tier Tier) []string {
	return append([]string(nil), resourcesByTier[tier]...)
}

func vitalsScore(v VitalSigns) int {
	score := 0
	if v.HeartRate != nil && (*v.HeartRate > 120 || *v.HeartRate < 50) {
		score += 20
	}
	if v.BloodPressure != nil && (v.BloodPressure.Systolic > 180 || v.BloodPressure.Systolic < 90) {
		score += 20
	}
	if v.OxygenSaturation != nil && *v.OxygenSaturation < 90 {
		score += 25
	}
	if v.RespiratoryRate != nil && (*v.RespiratoryRate > 30 || *v.RespiratoryRate < 10) {
		score += 20
	}
	return score
}

func containsKeyword(symptoms []string, keyword string) bool {
	for _, s := range symptoms {
		if strings.Contains(strings.ToLower(s), keyword) {
			return true
		}
	}
	return false
}

func validReading(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func fallback(reason error) Assessment {
	return Assessment{
		Tier:                 TierModerate,
		Score:                fallbackScore,
		RecommendedResources: ResourcesFor(TierModerate),
		MatchedKeywords:      []string{},
		Degraded:             true,
		DegradedReason:       reason.Error(),
	}
}
