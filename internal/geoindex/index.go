package geoindex

import (
	"fmt"
	"sort"
	"sync"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

const (
	// DefaultRadiusMeters используется, когда радиус поиска не задан
	DefaultRadiusMeters = 5000.0

	// DefaultCellLevel - уровень S2-ячеек для бакетов (~1.2 км по стороне)
	DefaultCellLevel = 13

	// maxCoverCells ограничивает размер покрытия; больше - дешевле просмотреть бакеты
	maxCoverCells = 4096

	// capMarginMeters расширяет покрытие, чтобы точки на границе не терялись из-за округления
	capMarginMeters = 1.0
)

// Located - сущность, которую можно положить в индекс
type Located interface {
	Key() string
	Position() models.Point
}

// Match - результат радиусного запроса
type Match[T Located] struct {
	Item           T
	DistanceMeters float64
}

type entry[T Located] struct {
	item T
	cell s2.CellID
}

// Index хранит сущности, разложенные по S2-ячейкам фиксированного уровня.
// Upsert/Remove берут эксклюзивную блокировку, запросы читают под RLock.
type Index[T Located] struct {
	mu      sync.RWMutex
	level   int
	entries map[string]entry[T]
	buckets map[s2.CellID]map[string]struct{}
}

// New создает пустой индекс. Уровень вне [1, s2.MaxLevel] заменяется на DefaultCellLevel.
func New[T Located](level int) *Index[T] {
	if level < 1 || level > s2.MaxLevel {
		level = DefaultCellLevel
	}
	return &Index[T]{
		level:   level,
		entries: make(map[string]entry[T]),
		buckets: make(map[s2.CellID]map[string]struct{}),
	}
}

// Upsert вставляет или заменяет сущность
func (idx *Index[T]) Upsert(item T) error {
	p := item.Position()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("geoindex: upsert %s: %w", item.Key(), err)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.put(item)
	return nil
}

// Remove удаляет сущность; отсутствие ключа не ошибка
func (idx *Index[T]) Remove(key string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.drop(key)
}

// Get возвращает сущность по ключу
func (idx *Index[T]) Get(key string) (T, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.entries[key]
	return e.item, ok
}

// Modify атомарно изменяет существующую сущность. Если fn вернула ошибку
// или новая позиция невалидна, индекс не меняется.
func (idx *Index[T]) Modify(key string, fn func(T) (T, error)) (T, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	var zero T
	e, ok := idx.entries[key]
	if !ok {
		return zero, fmt.Errorf("geoindex: entity %s: %w", key, models.ErrNotFound)
	}
	updated, err := fn(e.item)
	if err != nil {
		return zero, err
	}
	if updated.Key() != key {
		return zero, fmt.Errorf("geoindex: modify cannot change key %s to %s: %w", key, updated.Key(), models.ErrInvalidInput)
	}
	p := updated.Position()
	if err := p.Validate(); err != nil {
		return zero, fmt.Errorf("geoindex: modify %s: %w", key, err)
	}
	idx.put(updated)
	return updated, nil
}

// Len возвращает число сущностей в индексе
func (idx *Index[T]) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Snapshot возвращает копию всех сущностей в порядке ключей
func (idx *Index[T]) Snapshot() []T {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	items := make([]T, 0, len(idx.entries))
	for _, e := range idx.entries {
		items = append(items, e.item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key() < items[j].Key() })
	return items
}

// QueryRadius возвращает сущности в пределах maxDistanceMeters от center, удовлетворяющие predicate,
// по возрастанию расстояния; при равенстве - по ключу. maxDistanceMeters <= 0 означает DefaultRadiusMeters.
func (idx *Index[T]) QueryRadius(center models.Point, maxDistanceMeters float64, predicate func(T) bool) ([]Match[T], error) {
	if err := center.Validate(); err != nil {
		return nil, fmt.Errorf("geoindex: query center: %w", err)
	}
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultRadiusMeters
	}

	centerLL := s2.LatLngFromDegrees(center.Latitude, center.Longitude)
	searchCap := s2.CapFromCenterAngle(
		s2.PointFromLatLng(centerLL),
		s1.Angle((maxDistanceMeters+capMarginMeters)/EarthRadiusMeters),
	)

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	matches := make([]Match[T], 0)
	visit := func(keys map[string]struct{}) {
		for key := range keys {
			item := idx.entries[key].item
			d := Distance(center, item.Position())
			if d > maxDistanceMeters {
				continue
			}
			if predicate != nil && !predicate(item) {
				continue
			}
			matches = append(matches, Match[T]{Item: item, DistanceMeters: d})
		}
	}

	estimated := searchCap.Area() / s2.AvgAreaMetric.Value(idx.level)
	if estimated > float64(len(idx.buckets)) || estimated > maxCoverCells {
		// Покрытие больше, чем непустых бакетов: дешевле пройти их все
		for _, keys := range idx.buckets {
			visit(keys)
		}
	} else {
		coverer := &s2.RegionCoverer{MinLevel: idx.level, MaxLevel: idx.level, MaxCells: maxCoverCells}
		for _, cell := range coverer.Covering(searchCap) {
			if cell.Level() == idx.level {
				visit(idx.buckets[cell])
				continue
			}
			for c := cell.ChildBeginAtLevel(idx.level); c != cell.ChildEndAtLevel(idx.level); c = c.Next() {
				visit(idx.buckets[c])
			}
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceMeters == matches[j].DistanceMeters {
			return matches[i].Item.Key() < matches[j].Item.Key()
		}
		return matches[i].DistanceMeters < matches[j].DistanceMeters
	})
	return matches, nil
}

func (idx *Index[T]) put(item T) {
	key := item.Key()
	idx.drop(key)

	p := item.Position()
	cell := s2.CellIDFromLatLng(s2.LatLngFromDegrees(p.Latitude, p.Longitude)).Parent(idx.level)
	idx.entries[key] = entry[T]{item: item, cell: cell}
	bucket, ok := idx.buckets[cell]
	if !ok {
		bucket = make(map[string]struct{})
		idx.buckets[cell] = bucket
	}
	bucket[key] = struct{}{}
}

func (idx *Index[T]) drop(key string) {
	e, ok := idx.entries[key]
	if !ok {
		return
	}
	delete(idx.entries, key)
	if bucket, ok := idx.buckets[e.cell]; ok {
		delete(bucket, key)
		if len(bucket) == 0 {
			delete(idx.buckets, e.cell)
		}
	}
}
