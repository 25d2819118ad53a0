package models

import (
	"fmt"
	"math"
)

// Point - географическая точка (долгота, широта) в градусах
type Point struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// NewPoint создает точку из пары [longitude, latitude] и проверяет ее
func NewPoint(coordinates []float64) (Point, error) {
	if len(coordinates) != 2 {
		return Point{}, fmt.Errorf("%w: coordinates must be [longitude, latitude], got %d values", ErrInvalidCoordinate, len(coordinates))
	}
	p := Point{Longitude: coordinates[0], Latitude: coordinates[1]}
	if err := p.Validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

// Validate проверяет диапазоны координат
func (p Point) Validate() error {
	if math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v must be within [-180, 180]", ErrInvalidCoordinate, p.Longitude)
	}
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) || p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v must be within [-90, 90]", ErrInvalidCoordinate, p.Latitude)
	}
	return nil
}

// Coordinates возвращает точку в порядке GeoJSON
func (p Point) Coordinates() []float64 {
	return []float64{p.Longitude, p.Latitude}
}
