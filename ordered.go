package kdtree

import (
	"math"

	"github.com/google/btree"
	"github.com/tidwall/tinyqueue"
)

// OrderedPointSet is the same point-set contract implemented over an
// ordered B-tree instead of a kd-tree. Range and nearest queries scan
// the whole set, so it is the slow sibling; its value is simplicity,
// which makes it the reference the kd-tree is checked against. Both
// types answer every query with identical point sets.
type OrderedPointSet struct {
	tree *btree.BTreeG[Point]
}

// NewOrdered returns an empty OrderedPointSet.
func NewOrdered() *OrderedPointSet {
	return &OrderedPointSet{tree: btree.NewG[Point](btreeDegree, Point.Less)}
}

// NewOrderedFromPoints bulk-loads an OrderedPointSet, silently
// dropping duplicates under the eps-aware ordering.
func NewOrderedFromPoints(points []Point) *OrderedPointSet {
	s := NewOrdered()
	for _, p := range points {
		s.Put(p)
	}
	return s
}

// Empty reports whether the set holds no points.
func (s *OrderedPointSet) Empty() bool {
	return s.tree.Len() == 0
}

// Len returns the number of points in the set.
func (s *OrderedPointSet) Len() int {
	return s.tree.Len()
}

// Put adds p to the set; adding an already present point is a no-op.
func (s *OrderedPointSet) Put(p Point) {
	if !s.tree.Has(p) {
		s.tree.ReplaceOrInsert(p)
	}
}

// Contains reports whether p is in the set.
func (s *OrderedPointSet) Contains(p Point) bool {
	return s.tree.Has(p)
}

// Iter returns an iterator over the whole set in ascending order.
func (s *OrderedPointSet) Iter() *Iterator {
	// List-mode iterators consume from the back, so fill descending to
	// hand points out ascending.
	points := make([]Point, 0, s.tree.Len())
	s.tree.Descend(func(p Point) bool {
		points = append(points, p)
		return true
	})
	return newListIterator(points)
}

// Points returns all points of the set in ascending order.
func (s *OrderedPointSet) Points() []Point {
	points := make([]Point, 0, s.tree.Len())
	s.tree.Ascend(func(p Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// Range returns an iterator over the points contained in r.
func (s *OrderedPointSet) Range(r Rect) *Iterator {
	var points []Point
	s.tree.Descend(func(p Point) bool {
		if r.Contains(p) {
			points = append(points, p)
		}
		return true
	})
	return newListIterator(points)
}

// Nearest returns the point of the set closest to p. ok is false iff
// the set is empty.
func (s *OrderedPointSet) Nearest(p Point) (_ Point, ok bool) {
	bestDist := math.Inf(1)
	var best Point
	found := false
	s.tree.Ascend(func(cand Point) bool {
		if d := p.Distance(cand); d < bestDist || !found {
			bestDist = d
			best = cand
			found = true
		}
		return true
	})
	if !found {
		return Point{}, false
	}
	return best, true
}

// NearestK returns an iterator over the k points of the set closest to
// p, in unspecified order. k <= 0 yields an exhausted iterator; k >=
// Len() yields the full set.
func (s *OrderedPointSet) NearestK(p Point, k int) *Iterator {
	if k <= 0 {
		return newListIterator(nil)
	}
	if k >= s.Len() {
		return s.Iter()
	}
	q := tinyqueue.New(nil)
	s.tree.Ascend(func(cand Point) bool {
		d := p.Distance(cand)
		if q.Len() < k {
			q.Push(&knnItem{point: cand, dist: d})
		} else if d < q.Peek().(*knnItem).dist {
			q.Pop()
			q.Push(&knnItem{point: cand, dist: d})
		}
		return true
	})
	return newListIterator(drainKnnQueue(q))
}

// Clone returns a copy of the set. The underlying B-tree clones lazily
// with copy-on-write, so this is cheap even for large sets.
func (s *OrderedPointSet) Clone() *OrderedPointSet {
	return &OrderedPointSet{tree: s.tree.Clone()}
}
