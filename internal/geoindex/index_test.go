package geoindex

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type site struct {
	id     string
	point  models.Point
	status string
}

func (s site) Key() string             { return s.id }
func (s site) Position() models.Point { return s.point }

var center = models.Point{Longitude: 37.6173, Latitude: 55.7558}

// offset сдвигает точку на север примерно на meters метров
func offset(p models.Point, meters float64) models.Point {
	return models.Point{Longitude: p.Longitude, Latitude: p.Latitude + meters/111195.0}
}

func keys[T Located](matches []Match[T]) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Item.Key()
	}
	return out
}

func TestQueryRadius_EmptyIndex(t *testing.T) {
	idx := New[site](DefaultCellLevel)

	matches, err := idx.QueryRadius(center, 1000, nil)

	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestQueryRadius_OrderedByDistanceThenKey(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "far", point: offset(center, 3000)}))
	require.NoError(t, idx.Upsert(site{id: "b-near", point: offset(center, 500)}))
	require.NoError(t, idx.Upsert(site{id: "a-near", point: offset(center, 500)}))
	require.NoError(t, idx.Upsert(site{id: "outside", point: offset(center, 9000)}))
	require.NoError(t, idx.Upsert(site{id: "here", point: center}))

	matches, err := idx.QueryRadius(center, 5000, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"here", "a-near", "b-near", "far"}, keys(matches))
	assert.Zero(t, matches[0].DistanceMeters)
	assert.InDelta(t, 3000, matches[3].DistanceMeters, 5)
}

func TestQueryRadius_DefaultRadius(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "in", point: offset(center, 4900)}))
	require.NoError(t, idx.Upsert(site{id: "out", point: offset(center, 5200)}))

	matches, err := idx.QueryRadius(center, 0, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"in"}, keys(matches))
}

func TestQueryRadius_Predicate(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "1", point: offset(center, 100), status: "busy"}))
	require.NoError(t, idx.Upsert(site{id: "2", point: offset(center, 200), status: "available"}))

	matches, err := idx.QueryRadius(center, 1000, func(s site) bool { return s.status == "available" })

	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, keys(matches))
}

func TestQueryRadius_InvalidCenter(t *testing.T) {
	idx := New[site](DefaultCellLevel)

	_, err := idx.QueryRadius(models.Point{Longitude: 200, Latitude: 0}, 1000, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidCoordinate))
}

func TestQueryRadius_Monotonic(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	for i := 0; i < 60; i++ {
		p := models.Point{
			Longitude: center.Longitude + float64(i%10-5)*0.01,
			Latitude:  center.Latitude + float64(i/10-3)*0.01,
		}
		require.NoError(t, idx.Upsert(site{id: fmt.Sprintf("s%02d", i), point: p}))
	}

	prev := map[string]bool{}
	for _, radius := range []float64{100, 500, 1000, 2000, 5000, 20000, 100000, 5000000} {
		matches, err := idx.QueryRadius(center, radius, nil)
		require.NoError(t, err)
		found := map[string]bool{}
		for _, m := range matches {
			found[m.Item.Key()] = true
			assert.LessOrEqual(t, m.DistanceMeters, radius)
		}
		for k := range prev {
			assert.True(t, found[k], "radius %v lost %s", radius, k)
		}
		prev = found
	}
	assert.Len(t, prev, 60)
}

func TestQueryRadius_CoveringMatchesScan(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	for i := 0; i < 400; i++ {
		p := models.Point{
			Longitude: center.Longitude + float64(i%20-10)*0.004,
			Latitude:  center.Latitude + float64(i/20-10)*0.003,
		}
		require.NoError(t, idx.Upsert(site{id: fmt.Sprintf("s%03d", i), point: p}))
	}

	matches, err := idx.QueryRadius(center, 1500, nil)
	require.NoError(t, err)

	expected := 0
	for _, e := range idx.entries {
		if Distance(center, e.item.point) <= 1500 {
			expected++
		}
	}
	assert.Len(t, matches, expected)
	assert.NotZero(t, expected)
}

func TestQueryRadius_AcrossAntimeridian(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "west", point: models.Point{Longitude: -179.995, Latitude: 10}}))

	matches, err := idx.QueryRadius(models.Point{Longitude: 179.995, Latitude: 10}, 2000, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"west"}, keys(matches))
}

func TestUpsert_ReadAfterWrite(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	p := models.Point{Longitude: -0.1276, Latitude: 51.5072}
	require.NoError(t, idx.Upsert(site{id: "x", point: p}))

	matches, err := idx.QueryRadius(p, 1, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, keys(matches))
}

func TestUpsert_ReplacesPosition(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "amb", point: center}))
	moved := offset(center, 20000)
	require.NoError(t, idx.Upsert(site{id: "amb", point: moved}))

	old, err := idx.QueryRadius(center, 1000, nil)
	require.NoError(t, err)
	assert.Empty(t, old)

	now, err := idx.QueryRadius(moved, 1000, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"amb"}, keys(now))
	assert.Equal(t, 1, idx.Len())
}

func TestUpsert_InvalidCoordinateLeavesIndexIntact(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "a", point: center}))

	err := idx.Upsert(site{id: "a", point: models.Point{Longitude: 0, Latitude: 95}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidCoordinate))
	got, ok := idx.Get("a")
	require.True(t, ok)
	assert.Equal(t, center, got.point)
}

func TestRemove_Idempotent(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "a", point: center}))

	idx.Remove("a")
	idx.Remove("a")
	idx.Remove("never-existed")

	_, ok := idx.Get("a")
	assert.False(t, ok)
	assert.Zero(t, idx.Len())
	assert.Empty(t, idx.buckets)
}

func TestModify(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "a", point: center, status: "available"}))

	updated, err := idx.Modify("a", func(s site) (site, error) {
		s.point = offset(center, 10000)
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "available", updated.status)

	matches, err := idx.QueryRadius(offset(center, 10000), 10, nil)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	_, err = idx.Modify("missing", func(s site) (site, error) { return s, nil })
	assert.True(t, errors.Is(err, models.ErrNotFound))

	_, err = idx.Modify("a", func(s site) (site, error) {
		s.point = models.Point{Longitude: 500}
		return s, nil
	})
	assert.True(t, errors.Is(err, models.ErrInvalidCoordinate))
}

func TestIndex_ConcurrentReadersAndWriters(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	var wg sync.WaitGroup

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				id := fmt.Sprintf("w%d-%d", w, i%20)
				_ = idx.Upsert(site{id: id, point: offset(center, float64(i*10))})
				if i%7 == 0 {
					idx.Remove(id)
				}
			}
		}(w)
	}
	for r := 0; r < 8; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				matches, err := idx.QueryRadius(center, 3000, nil)
				assert.NoError(t, err)
				for j := 1; j < len(matches); j++ {
					assert.LessOrEqual(t, matches[j-1].DistanceMeters, matches[j].DistanceMeters)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, idx.Len(), 8*20)
}

func TestSnapshot_SortedCopy(t *testing.T) {
	idx := New[site](DefaultCellLevel)
	require.NoError(t, idx.Upsert(site{id: "b", point: center}))
	require.NoError(t, idx.Upsert(site{id: "a", point: offset(center, 100)}))

	items := idx.Snapshot()

	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].id)
	assert.Equal(t, "b", items[1].id)
}
