package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestPolygon_Age(t *testing.T) {
	p := Polygon{CreatedAt: 300, StartAngle: 10}
	assert.Equal(t, int64(0), p.Age(300))
	assert.Equal(t, int64(1200), p.Age(1500))
	// A clock that reads earlier than the spawn time doesn't produce a
	// negative age.
	assert.Equal(t, int64(0), p.Age(100))
}

func TestPool_AddKeepsSpawnOrder(t *testing.T) {
	var pool Pool
	for i := range 6 {
		pool.Add(Polygon{CreatedAt: int64(i * 300), StartAngle: float64(i * 10)})
	}
	assert.Equal(t, 6, pool.Len())
	for i, pg := range pool.Polygons {
		assert.Equal(t, int64(i*300), pg.CreatedAt)
		assert.Equal(t, float64(i*10), pg.StartAngle)
	}
}

func TestPool_Retain(t *testing.T) {
	var pool Pool
	for i := range 6 {
		pool.Add(Polygon{CreatedAt: int64(i), StartAngle: float64(i)})
	}

	// Every polygon is visited once, in order.
	var visited []int64
	pool.Retain(func(pg Polygon) bool {
		visited = append(visited, pg.CreatedAt)
		return pg.CreatedAt%2 == 1
	})
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, visited)
	assert.Equal(t, []Polygon{{1, 1}, {3, 3}, {5, 5}}, pool.Polygons)

	pool.Retain(func(pg Polygon) bool { return false })
	assert.Equal(t, 0, pool.Len())
}

func TestPool_Clear(t *testing.T) {
	var pool Pool
	pool.Add(Polygon{})
	pool.Add(Polygon{CreatedAt: 1})
	pool.Clear()
	assert.Equal(t, 0, pool.Len())
	pool.Add(Polygon{CreatedAt: 7})
	assert.Equal(t, []Polygon{{CreatedAt: 7}}, pool.Polygons)
}
