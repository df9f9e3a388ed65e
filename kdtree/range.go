package kdtree

import (
	"github.com/cenkalti/planar/geom"
)

// Range returns the points inside r, boundary included. The order of points is unspecified.
func (t *Tree) Range(r geom.Rect) []geom.Point {
	return t.RangeTrace(r, nil)
}

// RangeTrace is like Range but also records traversal counters in tr, which may be nil.
func (t *Tree) RangeTrace(r geom.Rect, tr *Trace) []geom.Point {
	var points []geom.Point
	t.rangeFunc(r, tr, func(p geom.Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// RangeFunc calls iter for every point inside r until iter returns false.
func (t *Tree) RangeFunc(r geom.Rect, iter func(p geom.Point) bool) {
	t.rangeFunc(r, nil, iter)
}

func (t *Tree) rangeFunc(r geom.Rect, tr *Trace, iter func(p geom.Point) bool) {
	if len(t.nodes) == 0 {
		return
	}
	if !r.Intersects(t.universe) {
		tr.prune()
		return
	}
	stack := []frame{{id: 0, region: t.universe}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.id]
		tr.visit()
		if r.Contains(n.point) && !iter(n.point) {
			return
		}

		low, high := n.split(f.region)
		// Push high first so the low side is explored first.
		if n.high != none {
			if r.Intersects(high) {
				stack = append(stack, frame{id: n.high, region: high})
			} else {
				tr.prune()
			}
		}
		if n.low != none {
			if r.Intersects(low) {
				stack = append(stack, frame{id: n.low, region: low})
			} else {
				tr.prune()
			}
		}
	}
}
