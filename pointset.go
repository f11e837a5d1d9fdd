package kdtree

import "github.com/google/btree"

// alpha is the weight-balance bound: neither child of a node may hold
// more than alpha of the node's subtree. A violation triggers a
// rebuild of the offending subtree.
const alpha = 0.65

// btreeDegree is the branching factor used for the ordered B-trees
// backing deduplication and OrderedPointSet.
const btreeDegree = 32

// PointSet is a set of unique 2D points indexed by a weight-balanced
// alternating-axis kd-tree. Membership, rectangle range queries and
// (k-)nearest-neighbor queries run in amortized logarithmic time.
//
// A PointSet is not safe for concurrent use while a Put is in flight:
// an insertion may rebuild whole subtrees, invalidating any tree-mode
// Iterator obtained earlier.
type PointSet struct {
	root *node
}

// New returns an empty PointSet.
func New() *PointSet {
	return &PointSet{}
}

// NewFromPoints bulk-loads a PointSet from a collection of points and
// builds a balanced tree in one pass. Duplicates under the eps-aware
// ordering are dropped silently, keeping the earliest occurrence.
func NewFromPoints(points []Point) *PointSet {
	seen := btree.NewG[Point](btreeDegree, Point.Less)
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		if seen.Has(p) {
			continue
		}
		seen.ReplaceOrInsert(p)
		unique = append(unique, p)
	}
	return &PointSet{root: buildTree(unique, true)}
}

// Empty reports whether the set holds no points.
func (s *PointSet) Empty() bool {
	return s.root == nil
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int {
	return subtreeSize(s.root)
}

// balanced reports whether both children of n respect the weight
// bound.
func balanced(n *node) bool {
	limit := alpha * float64(n.size)
	return float64(subtreeSize(n.left)) <= limit && float64(subtreeSize(n.right)) <= limit
}

// insert descends to the slot for p, attaches a fresh leaf there, and
// refreshes cached size and rectangle on the way back up. It returns
// the child slot of the highest ancestor whose weight balance the
// insertion broke, together with that ancestor's discriminator axis;
// the slot is nil when the tree stayed balanced or p was already
// present. A single insertion can break several ancestors at once, and
// every broken node lies on the insertion path, so rebuilding the
// highest one restores the balance invariant everywhere.
func insert(slot **node, parent *node, p Point, checkX bool) (**node, bool) {
	n := *slot
	if n == nil {
		fresh := newNode(p)
		fresh.parent = parent
		*slot = fresh
		return nil, false
	}
	if n.point.Equal(p) {
		return nil, false
	}
	child := &n.right
	if axisLess(p, n.point, checkX) {
		child = &n.left
	}
	broken, brokenAxis := insert(child, n, p, !checkX)
	n.update()
	if !balanced(n) {
		return slot, checkX
	}
	return broken, brokenAxis
}

// Put adds p to the set. Adding a point eps-equal to an existing one
// is a no-op. If the insertion breaks the weight balance anywhere, the
// offending subtree is flattened and rebuilt in place.
func (s *PointSet) Put(p Point) {
	slot, checkX := insert(&s.root, nil, p, true)
	if slot == nil {
		return
	}
	old := *slot
	fresh := rebuildTree(old, checkX)
	fresh.parent = old.parent
	*slot = fresh
}

// Contains reports whether a point eps-equal to p is in the set.
func (s *PointSet) Contains(p Point) bool {
	checkX := true
	for n := s.root; n != nil; {
		if n.point.Equal(p) {
			return true
		}
		if axisLess(p, n.point, checkX) {
			n = n.left
		} else {
			n = n.right
		}
		checkX = !checkX
	}
	return false
}

// Iter returns an iterator over the whole set in in-order sequence.
func (s *PointSet) Iter() *Iterator {
	return newTreeIterator(leftmost(s.root))
}

// Points returns all points of the set in in-order sequence.
func (s *PointSet) Points() []Point {
	return flattenPoints(s.root, make([]Point, 0, s.Len()))
}

// Clone returns a deep copy of the set. The copy shares no nodes with
// the original.
func (s *PointSet) Clone() *PointSet {
	root := s.root.clone()
	setParents(root)
	return &PointSet{root: root}
}
