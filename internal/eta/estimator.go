package eta

import (
	"fmt"
	"math"

	"github.com/shenikar/emergency_dispatch_system/internal/geoindex"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

type RouteAdvice string

const (
	RoutePrimary   RouteAdvice = "primary"
	RouteAlternate RouteAdvice = "alternate"
	RouteDetour    RouteAdvice = "detour"
)

const (
	minutesPerKm         = 2.0 // 30 км/ч в среднем по городу
	congestionMultiplier = 1.5
	closurePenaltyMins   = 2.0
	heavyCongestion      = 0.7
)

type Accident struct {
	Location string  `json:"location"`
	Severity float64 `json:"severity"`
}

// Traffic - дорожная обстановка; нулевое значение означает свободные дороги
type Traffic struct {
	CongestionLevel float64    `json:"congestion_level"`
	RoadClosures    []string   `json:"road_closures"`
	Accidents       []Accident `json:"accidents"`
}

func (t Traffic) Validate() error {
	if math.IsNaN(t.CongestionLevel) || t.CongestionLevel < 0 || t.CongestionLevel > 1 {
		return fmt.Errorf("%w: congestion_level must be within [0, 1]", models.ErrInvalidInput)
	}
	for i, a := range t.Accidents {
		if math.IsNaN(a.Severity) || math.IsInf(a.Severity, 0) || a.Severity < 0 {
			return fmt.Errorf("%w: accidents[%d].severity must be a non-negative number", models.ErrInvalidInput, i)
		}
	}
	return nil
}

type Estimate struct {
	DistanceMeters float64     `json:"distance_meters"`
	Minutes        float64     `json:"estimated_minutes"`
	Route          RouteAdvice `json:"route"`
	Confidence     float64     `json:"confidence"`
}

// EstimateArrival оценивает время в пути от from до to с поправкой на трафик
func EstimateArrival(from, to models.Point, traffic Traffic) (Estimate, error) {
	if err := from.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("eta: origin: %w", err)
	}
	if err := to.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("eta: destination: %w", err)
	}
	if err := traffic.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("eta: %w", err)
	}

	meters := geoindex.Distance(from, to)
	closures := float64(len(traffic.RoadClosures))

	incidentFactor := closures * closurePenaltyMins
	for _, a := range traffic.Accidents {
		incidentFactor += a.Severity
	}
	minutes := meters/1000*minutesPerKm*(1+traffic.CongestionLevel*congestionMultiplier) + incidentFactor

	route := RoutePrimary
	if traffic.CongestionLevel > heavyCongestion {
		route = RouteAlternate
	}
	if len(traffic.RoadClosures) > 0 {
		route = RouteDetour
	}

	confidence := 0.9 - traffic.CongestionLevel*0.2 - closures*0.05

	return Estimate{
		DistanceMeters: meters,
		Minutes:        minutes,
		Route:          route,
		Confidence:     math.Max(0.6, math.Min(0.95, confidence)),
	}, nil
}

// FreeFlowMinutes - время в пути без учета трафика для уже посчитанного расстояния
func FreeFlowMinutes(distanceMeters float64) float64 {
	return distanceMeters / 1000 * minutesPerKm
}
