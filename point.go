// Package kdtree is an in-memory index over a set of unique 2D points,
// backed by a weight-balanced alternating-axis kd-tree.
package kdtree

import (
	"fmt"
	"math"
)

// eps is the machine epsilon for float64. Coordinates whose absolute
// difference is below eps compare as equal.
var eps = math.Nextafter(1, 2) - 1

// Point is an immutable pair of 2D coordinates.
type Point struct {
	X float64
	Y float64
}

// Quadrant identifies one of the four closed quadrants around a point,
// counter-clockwise from the upper right.
type Quadrant int

const (
	QuadrantFirst Quadrant = iota
	QuadrantSecond
	QuadrantThird
	QuadrantFourth
)

// Distance returns the Euclidean distance between p and other.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// InQuadrant reports whether other lies in the given quadrant relative
// to p. Quadrants are closed: points on the boundary axes (within eps)
// belong to both adjacent quadrants. The tolerance is applied to the
// coordinate difference, not to an offset coordinate: p.X+eps rounds
// back to p.X once the ULP of p.X exceeds 2*eps, which would silently
// turn the closed boundary into an open one.
func (p Point) InQuadrant(other Point, quad Quadrant) bool {
	switch quad {
	case QuadrantFirst:
		return other.X-p.X > -eps && other.Y-p.Y > -eps
	case QuadrantSecond:
		return other.X-p.X < eps && other.Y-p.Y > -eps
	case QuadrantThird:
		return other.X-p.X < eps && other.Y-p.Y < eps
	case QuadrantFourth:
		return other.X-p.X > -eps && other.Y-p.Y < eps
	}
	return false
}

// Equal reports whether both coordinates match within eps.
func (p Point) Equal(other Point) bool {
	return math.Abs(p.X-other.X) < eps && math.Abs(p.Y-other.Y) < eps
}

// Less orders points lexicographically on (X, Y); X values within eps
// of each other count as tied and fall through to Y.
func (p Point) Less(other Point) bool {
	return p.X < other.X || (math.Abs(p.X-other.X) < eps && p.Y < other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%g; %g)", p.X, p.Y)
}
