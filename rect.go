package kdtree

import "math"

// Rect is an axis-aligned rectangle given by its lower-left and
// upper-right corners.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether p lies inside r. All four sides are
// inclusive, within eps.
func (r Rect) Contains(p Point) bool {
	return r.Min.InQuadrant(p, QuadrantFirst) && r.Max.InQuadrant(p, QuadrantThird)
}

// Distance returns 0 when p is inside r, otherwise the Euclidean
// distance from p to the nearest point of r. The plane splits into
// nine regions around r: the four corner regions measure to the
// nearest corner, the four edge regions measure perpendicular to the
// nearest edge.
func (r Rect) Distance(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	if r.Max.InQuadrant(p, QuadrantFirst) {
		return r.Max.Distance(p)
	}
	if r.Min.InQuadrant(p, QuadrantThird) {
		return r.Min.Distance(p)
	}
	if r.Max.InQuadrant(p, QuadrantFourth) {
		// right of r, or below-right corner
		if p.Y > r.Min.Y {
			return p.X - r.Max.X
		}
		return p.Distance(Point{X: r.Max.X, Y: r.Min.Y})
	}
	if r.Min.InQuadrant(p, QuadrantSecond) {
		// left of r, or above-left corner
		if p.Y > r.Max.Y {
			return p.Distance(Point{X: r.Min.X, Y: r.Max.Y})
		}
		return r.Min.X - p.X
	}
	if p.Y > r.Max.Y {
		return p.Y - r.Max.Y
	}
	return r.Min.Y - p.Y
}

// Intersects reports whether r and other overlap. Rectangles that only
// touch edges still intersect.
func (r Rect) Intersects(other Rect) bool {
	return !(other.Min.Y > r.Max.Y || other.Max.Y < r.Min.Y ||
		other.Min.X > r.Max.X || other.Max.X < r.Min.X)
}

// union returns the tightest rectangle covering both r and other.
func (r Rect) union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}
