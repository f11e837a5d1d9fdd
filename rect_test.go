package kdtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	r := Rect{Min: Point{X: 1, Y: 1}, Max: Point{X: 3, Y: 3}}
	require.True(t, r.Contains(Point{X: 2, Y: 2}))
	// all four sides are inclusive
	require.True(t, r.Contains(Point{X: 1, Y: 1}))
	require.True(t, r.Contains(Point{X: 3, Y: 3}))
	require.True(t, r.Contains(Point{X: 1, Y: 3}))
	require.True(t, r.Contains(Point{X: 3, Y: 1}))
	require.True(t, r.Contains(Point{X: 2, Y: 1}))

	require.False(t, r.Contains(Point{X: 0.5, Y: 2}))
	require.False(t, r.Contains(Point{X: 3.5, Y: 2}))
	require.False(t, r.Contains(Point{X: 2, Y: 0.5}))
	require.False(t, r.Contains(Point{X: 2, Y: 3.5}))

	// corners remain inclusive when the corner coordinate's ULP
	// exceeds 2*eps and offset arithmetic like Max.X+eps degenerates
	wide := Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 3, Y: 3}}
	require.True(t, wide.Contains(Point{X: 3, Y: 3}))
	require.True(t, wide.Contains(Point{X: 0, Y: 3}))
	require.True(t, wide.Contains(Point{X: 3, Y: 0}))
	require.Equal(t, 0.0, wide.Distance(Point{X: 3, Y: 3}))

	huge := Rect{Min: Point{X: -1000, Y: -1000}, Max: Point{X: 1000, Y: 1000}}
	require.True(t, huge.Contains(Point{X: 1000, Y: 1000}))
	require.True(t, huge.Contains(Point{X: -1000, Y: 1000}))
}

func TestRectDistance(t *testing.T) {
	r := Rect{Min: Point{X: 1, Y: 1}, Max: Point{X: 3, Y: 3}}

	require.Equal(t, 0.0, r.Distance(Point{X: 2, Y: 2}))
	require.Equal(t, 0.0, r.Distance(Point{X: 1, Y: 3}))

	// edge regions: perpendicular distance
	require.Equal(t, 2.0, r.Distance(Point{X: 5, Y: 2}))
	require.Equal(t, 2.0, r.Distance(Point{X: -1, Y: 2}))
	require.Equal(t, 2.0, r.Distance(Point{X: 2, Y: 5}))
	require.Equal(t, 2.0, r.Distance(Point{X: 2, Y: -1}))

	// corner regions: distance to the nearest corner
	require.InDelta(t, math.Sqrt(8), r.Distance(Point{X: 5, Y: 5}), 1e-12)
	require.InDelta(t, math.Sqrt(2), r.Distance(Point{X: 0, Y: 0}), 1e-12)
	require.InDelta(t, math.Sqrt(5), r.Distance(Point{X: 5, Y: 0}), 1e-12)
	require.InDelta(t, math.Sqrt(5), r.Distance(Point{X: 0, Y: 5}), 1e-12)
}

// Distance must agree with the distance to the clamped projection of
// the query point onto the rectangle.
func TestRectDistanceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		min := Point{X: rng.Float64()*100 - 50, Y: rng.Float64()*100 - 50}
		r := Rect{
			Min: min,
			Max: Point{X: min.X + rng.Float64()*40, Y: min.Y + rng.Float64()*40},
		}
		p := Point{X: rng.Float64()*240 - 120, Y: rng.Float64()*240 - 120}
		nearest := Point{
			X: math.Min(math.Max(p.X, r.Min.X), r.Max.X),
			Y: math.Min(math.Max(p.Y, r.Min.Y), r.Max.Y),
		}
		require.InDelta(t, p.Distance(nearest), r.Distance(p), 1e-9, "rect %v point %v", r, p)
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{Min: Point{X: 1, Y: 1}, Max: Point{X: 3, Y: 3}}

	require.True(t, r.Intersects(Rect{Min: Point{X: 2, Y: 2}, Max: Point{X: 4, Y: 4}}))
	require.True(t, r.Intersects(r))
	// nested
	require.True(t, r.Intersects(Rect{Min: Point{X: 0, Y: 0}, Max: Point{X: 5, Y: 5}}))
	// touching edges still intersect
	require.True(t, r.Intersects(Rect{Min: Point{X: 3, Y: 1}, Max: Point{X: 5, Y: 3}}))
	require.True(t, r.Intersects(Rect{Min: Point{X: 1, Y: 3}, Max: Point{X: 3, Y: 5}}))

	// fully separated on one axis
	require.False(t, r.Intersects(Rect{Min: Point{X: 4, Y: 1}, Max: Point{X: 5, Y: 3}}))
	require.False(t, r.Intersects(Rect{Min: Point{X: 1, Y: 4}, Max: Point{X: 3, Y: 5}}))
	require.False(t, r.Intersects(Rect{Min: Point{X: -2, Y: -2}, Max: Point{X: 0, Y: 0}}))
}
