package kdtree

import (
	"github.com/cenkalti/planar/geom"
)

// NodeInfo describes a node visited by Walk.
type NodeInfo struct {
	Point       geom.Point
	Orientation Orientation
	// Depth of the root is 0.
	Depth int
	// Region owned by the node: every point in its subtree lies inside.
	Region geom.Rect
}

// Split returns the end points of the line that divides the node's region.
func (n NodeInfo) Split() (a, b geom.Point) {
	if n.Orientation == Vertical {
		return geom.Pt(n.Point.X, n.Region.YMin()), geom.Pt(n.Point.X, n.Region.YMax())
	}
	return geom.Pt(n.Region.XMin(), n.Point.Y), geom.Pt(n.Region.XMax(), n.Point.Y)
}

// Walk calls fn for each node in pre-order, low side before high side, until fn returns false.
func (t *Tree) Walk(fn func(n NodeInfo) bool) {
	if len(t.nodes) == 0 {
		return
	}
	stack := []frame{{id: 0, region: t.universe}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := &t.nodes[f.id]
		if !fn(NodeInfo{Point: n.point, Orientation: n.orientation, Depth: f.depth, Region: f.region}) {
			return
		}
		low, high := n.split(f.region)
		if n.high != none {
			stack = append(stack, frame{id: n.high, region: high, depth: f.depth + 1})
		}
		if n.low != none {
			stack = append(stack, frame{id: n.low, region: low, depth: f.depth + 1})
		}
	}
}

// Points returns every point in the tree in pre-order.
func (t *Tree) Points() []geom.Point {
	points := make([]geom.Point, 0, len(t.nodes))
	t.Walk(func(n NodeInfo) bool {
		points = append(points, n.Point)
		return true
	})
	return points
}

// Height returns the number of nodes on the longest path from the root to a leaf.
func (t *Tree) Height() int {
	var h int
	t.Walk(func(n NodeInfo) bool {
		if n.Depth+1 > h {
			h = n.Depth + 1
		}
		return true
	})
	return h
}
