package kdtree

// node is a single element of the kd-tree. It caches the size of its
// subtree and the minimal rectangle covering it. Children belong to
// their parent; the parent pointer is only ever followed upward by the
// in-order successor walk and is never used to decide lifetimes.
type node struct {
	point Point
	rect  Rect
	size  int

	left   *node
	right  *node
	parent *node
}

func newNode(p Point) *node {
	return &node{point: p, rect: Rect{Min: p, Max: p}, size: 1}
}

// update recomputes the cached size and the tight bounding rectangle
// from the node's point and its children. Children must already be
// up to date.
func (n *node) update() {
	n.size = 1
	n.rect = Rect{Min: n.point, Max: n.point}
	if n.left != nil {
		n.size += n.left.size
		n.rect = n.rect.union(n.left.rect)
	}
	if n.right != nil {
		n.size += n.right.size
		n.rect = n.rect.union(n.right.rect)
	}
}

func subtreeSize(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

// clone deep-copies the subtree. Parent links in the copy are left nil;
// the caller runs setParents over the result.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		point: n.point,
		rect:  n.rect,
		size:  n.size,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// setParents rebuilds the parent back-references of every descendant.
func setParents(n *node) {
	if n == nil {
		return
	}
	if n.left != nil {
		n.left.parent = n
		setParents(n.left)
	}
	if n.right != nil {
		n.right.parent = n
		setParents(n.right)
	}
}

// leftmost returns the first node of the subtree in in-order sequence,
// or nil for an empty subtree.
func leftmost(n *node) *node {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// successor returns the in-order successor of n without a traversal
// stack: the leftmost node of the right subtree if there is one,
// otherwise the nearest ancestor reached from its left side. Returns
// nil past the last node.
func successor(n *node) *node {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.parent != nil {
		if n.parent.left == n {
			return n.parent
		}
		n = n.parent
	}
	return nil
}
