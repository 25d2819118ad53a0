// Package capacity прогнозирует число свободных коек больницы по фиксированной линейной эвристике.
// Это не статистическая модель: все коэффициенты заданы константами ниже.
package capacity

import (
	"fmt"
	"math"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	admissionShare    = 0.3  // доля нагрузки приемного отделения, переходящая в госпитализации за час
	dischargeShare    = 0.08 // оборот коек в час
	enRouteBedShare   = 0.8  // доля едущих скорых, которым понадобится койка
	enRouteHorizonHrs = 3.0  // горизонт, на который распределяется поток скорых

	baseConfidence = 0.9
	minConfidence  = 0.6
	maxConfidence  = 0.95
)

// Snapshot - срез показателей больницы, нужный для прогноза
type Snapshot struct {
	TotalBeds         int
	AvailableBeds     int
	ERCapacityPercent float64
	AmbulancesEnRoute int
}

// SnapshotOf строит срез из модели больницы
func SnapshotOf(h models.Hospital) Snapshot {
	return Snapshot{
		TotalBeds:         h.TotalBeds,
		AvailableBeds:     h.AvailableBeds,
		ERCapacityPercent: h.ERCapacityPercent,
		AmbulancesEnRoute: h.AmbulancesEnRoute,
	}
}

type Projection struct {
	AvailableIn1Hour  int     `json:"available_in_1_hour"`
	AvailableIn3Hours int     `json:"available_in_3_hours"`
	HourlyNetChange   int     `json:"hourly_net_change"`
	AdmissionRate     float64 `json:"admission_rate"`
	DischargeRate     float64 `json:"discharge_rate"`
	Confidence        float64 `json:"confidence"`
}

// Estimate - чистая функция среза. math.Round округляет половины от нуля.
func Estimate(s Snapshot) Projection {
	admissionRate := s.ERCapacityPercent / 100 * admissionShare
	dischargeRate := float64(s.TotalBeds) * dischargeShare
	incomingLoad := float64(s.AmbulancesEnRoute) * enRouteBedShare / enRouteHorizonHrs

	hourlyNetChange := int(math.Round(dischargeRate - admissionRate - incomingLoad))
	in1Hour := max(0, s.AvailableBeds+hourlyNetChange)
	in3Hours := max(0, in1Hour+hourlyNetChange*2)

	confidence := baseConfidence - s.ERCapacityPercent/200 - float64(s.AmbulancesEnRoute)*0.03

	return Projection{
		AvailableIn1Hour:  in1Hour,
		AvailableIn3Hours: in3Hours,
		HourlyNetChange:   hourlyNetChange,
		AdmissionRate:     roundTenth(admissionRate),
		DischargeRate:     roundTenth(dischargeRate),
		Confidence:        math.Max(minConfidence, math.Min(maxConfidence, confidence)),
	}
}

// At возвращает прогноз на горизонт 1 или 3 часа
func (p Projection) At(horizonHours int) (int, error) {
	switch horizonHours {
	case 1:
		return p.AvailableIn1Hour, nil
	case 3:
		return p.AvailableIn3Hours, nil
	}
	return 0, fmt.Errorf("%w: horizon must be 1 or 3 hours, got %d", models.ErrInvalidInput, horizonHours)
}

// ValidHorizon сообщает, поддерживается ли горизонт прогноза
func ValidHorizon(horizonHours int) bool {
	return horizonHours == 1 || horizonHours == 3
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
