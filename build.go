package kdtree

import "sort"

// axisLess compares two points on a single discriminator axis. Unlike
// Point.Less this is a raw comparison with no eps tolerance, so points
// sharing an axis value still route deterministically.
func axisLess(a, b Point, checkX bool) bool {
	if checkX {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// buildTree constructs a balanced subtree over points, discriminating
// on x when checkX is true and alternating below. The slice is
// reordered in place. The median is walked left past predecessors with
// an equal axis value, so the left partition never holds a point equal
// to the root on the discriminator axis.
func buildTree(points []Point, checkX bool) *node {
	if len(points) == 0 {
		return nil
	}
	sort.Slice(points, func(i, j int) bool {
		return axisLess(points[i], points[j], checkX)
	})
	median := len(points) / 2
	for median > 0 && !axisLess(points[median-1], points[median], checkX) {
		median--
	}
	n := newNode(points[median])
	n.left = buildTree(points[:median], !checkX)
	n.right = buildTree(points[median+1:], !checkX)
	if n.left != nil {
		n.left.parent = n
	}
	if n.right != nil {
		n.right.parent = n
	}
	n.update()
	return n
}

// flattenPoints appends the subtree's points to out in in-order
// sequence.
func flattenPoints(n *node, out []Point) []Point {
	if n == nil {
		return out
	}
	out = flattenPoints(n.left, out)
	out = append(out, n.point)
	return flattenPoints(n.right, out)
}

// rebuildTree replaces the subtree rooted at n with a freshly built
// balanced one over the same points, discriminating on checkX at the
// new root. The old nodes are dropped; only their points survive. The
// caller splices the result in and fixes its parent link.
func rebuildTree(n *node, checkX bool) *node {
	return buildTree(flattenPoints(n, make([]Point, 0, n.size)), checkX)
}
