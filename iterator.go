package kdtree

import "errors"

// ErrExhausted is returned by Iterator.Next when the iterator already
// stands past its last point.
var ErrExhausted = errors.New("kdtree: iterator exhausted")

type iterMode uint8

const (
	modeTree iterMode = iota
	modeList
)

// Iterator walks a sequence of points. It is one of two things, fixed
// at construction: a live tree position advanced through in-order
// successor links, or a materialized result list consumed from the
// back. Each mode carries its own terminal state; callers only ever
// observe it through Done.
//
// A tree-mode iterator is invalidated by any Put on the set that
// produced it.
type Iterator struct {
	mode iterMode
	cur  *node
	list []Point
}

func newTreeIterator(n *node) *Iterator {
	return &Iterator{mode: modeTree, cur: n}
}

func newListIterator(points []Point) *Iterator {
	return &Iterator{mode: modeList, list: points}
}

// Done reports whether the iterator has moved past its last point.
func (it *Iterator) Done() bool {
	if it.mode == modeTree {
		return it.cur == nil
	}
	return len(it.list) == 0
}

// At returns the current point. It must not be called once Done
// reports true.
func (it *Iterator) At() Point {
	if it.mode == modeTree {
		return it.cur.point
	}
	return it.list[len(it.list)-1]
}

// Next advances the iterator by one point. Advancing an exhausted
// iterator returns ErrExhausted and changes nothing.
func (it *Iterator) Next() error {
	if it.Done() {
		return ErrExhausted
	}
	if it.mode == modeTree {
		it.cur = successor(it.cur)
	} else {
		it.list = it.list[:len(it.list)-1]
	}
	return nil
}

// Points drains the iterator, returning the remaining points in
// iteration order.
func (it *Iterator) Points() []Point {
	var out []Point
	for !it.Done() {
		out = append(out, it.At())
		it.Next()
	}
	return out
}
