package kdtree

import (
	"math"

	"github.com/cenkalti/planar/geom"
)

// Nearest returns the point in the tree closest to q.
// ok is false if the tree is empty.
// When several points are equally close, which one is returned depends on the shape of the tree.
func (t *Tree) Nearest(q geom.Point) (p geom.Point, ok bool) {
	p, _, ok = t.nearest(q, nil)
	return
}

// NearestDistance is like Nearest but also returns the distance between q and the result.
func (t *Tree) NearestDistance(q geom.Point) (p geom.Point, dist float64, ok bool) {
	p, d2, ok := t.nearest(q, nil)
	if !ok {
		return p, math.Inf(1), false
	}
	return p, math.Sqrt(d2), true
}

// NearestTrace is like Nearest but also records traversal counters in tr, which may be nil.
func (t *Tree) NearestTrace(q geom.Point, tr *Trace) (p geom.Point, ok bool) {
	p, _, ok = t.nearest(q, tr)
	return
}

// nearest is a depth-first branch and bound search.
// The child on the same side of the split as q is explored before its sibling,
// so by the time the sibling is popped the best distance is usually small enough
// to discard it without looking at its point.
func (t *Tree) nearest(q geom.Point, tr *Trace) (best geom.Point, bestDist float64, found bool) {
	if len(t.nodes) == 0 {
		return
	}
	stack := []frame{{id: 0, region: t.universe}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if found && f.region.DistanceSquaredTo(q) >= bestDist {
			tr.prune()
			continue
		}

		n := &t.nodes[f.id]
		tr.visit()
		if d := n.point.DistanceSquaredTo(q); !found || d < bestDist {
			best, bestDist, found = n.point, d, true
		}

		low, high := n.split(f.region)
		near := frame{id: n.low, region: low}
		far := frame{id: n.high, region: high}
		if !n.routesLow(q) {
			near, far = far, near
		}
		if far.id != none {
			stack = append(stack, far)
		}
		if near.id != none {
			stack = append(stack, near)
		}
	}
	return
}
