package kdtree

import (
	"math"

	"github.com/tidwall/tinyqueue"
)

// rangeSearch collects every point of the subtree contained in r,
// pruning subtrees whose cached rectangle does not intersect r.
func rangeSearch(n *node, r Rect, out []Point) []Point {
	if n == nil || !n.rect.Intersects(r) {
		return out
	}
	if r.Contains(n.point) {
		out = append(out, n.point)
	}
	out = rangeSearch(n.left, r, out)
	out = rangeSearch(n.right, r, out)
	return out
}

// Range returns an iterator over the points contained in r, in
// unspecified order.
func (s *PointSet) Range(r Rect) *Iterator {
	return newListIterator(rangeSearch(s.root, r, nil))
}

// nearestSearch updates best and bestDist with the closest point of
// the subtree, skipping subtrees whose rectangle cannot beat the
// current best.
func nearestSearch(n *node, p Point, bestDist *float64, best **node) {
	if n == nil || n.rect.Distance(p) >= *bestDist {
		return
	}
	if d := p.Distance(n.point); d < *bestDist {
		*bestDist = d
		*best = n
	}
	nearestSearch(n.left, p, bestDist, best)
	nearestSearch(n.right, p, bestDist, best)
}

// Nearest returns the point of the set closest to p. ok is false iff
// the set is empty. Ties are broken arbitrarily.
func (s *PointSet) Nearest(p Point) (_ Point, ok bool) {
	bestDist := math.Inf(1)
	var best *node
	nearestSearch(s.root, p, &bestDist, &best)
	if best == nil {
		return Point{}, false
	}
	return best.point, true
}

// knnItem is a candidate in the bounded k-nearest heap. Less is
// inverted on distance so the queue surfaces the farthest of the
// current k candidates for replacement.
type knnItem struct {
	point Point
	dist  float64
}

func (a *knnItem) Less(b tinyqueue.Item) bool {
	return a.dist > b.(*knnItem).dist
}

func drainKnnQueue(q *tinyqueue.Queue) []Point {
	out := make([]Point, 0, q.Len())
	for q.Len() > 0 {
		out = append(out, q.Pop().(*knnItem).point)
	}
	return out
}

// NearestK returns an iterator over the k points of the set closest to
// p, in unspecified order. k <= 0 yields an exhausted iterator; k >=
// Len() yields the full set.
func (s *PointSet) NearestK(p Point, k int) *Iterator {
	if k <= 0 {
		return newListIterator(nil)
	}
	if k >= s.Len() {
		return s.Iter()
	}
	// Seed the heap with the first k nodes in in-order sequence, then
	// walk the rest via the successor links, replacing the farthest
	// candidate whenever a closer point shows up.
	q := tinyqueue.New(nil)
	cur := leftmost(s.root)
	for i := 0; i < k; i++ {
		q.Push(&knnItem{point: cur.point, dist: p.Distance(cur.point)})
		cur = successor(cur)
	}
	for ; cur != nil; cur = successor(cur) {
		d := p.Distance(cur.point)
		if d < q.Peek().(*knnItem).dist {
			q.Pop()
			q.Push(&knnItem{point: cur.point, dist: d})
		}
	}
	return newListIterator(drainKnnQueue(q))
}
