// Package kdtree implements a 2-d tree: a binary search tree over points in the plane
// whose levels alternate between splitting by x and splitting by y.
//
// Nodes are kept in a slice and refer to their children by index. Every descent and
// traversal is an explicit loop, so a degenerate tree (for example one built from points
// inserted in sorted order, whose height equals the number of points) does not grow the
// goroutine stack. The tree is never rebalanced.
//
// A Tree is not safe for concurrent use when one of the goroutines calls Insert.
// Concurrent calls to the read-only methods are safe.
package kdtree

import (
	"github.com/cenkalti/planar/geom"
)

// none marks an empty child slot.
const none = -1

// Orientation tells which coordinate a node compares to route points to its children.
type Orientation uint8

const (
	// Vertical nodes split the plane with a vertical line and compare X.
	Vertical Orientation = iota
	// Horizontal nodes split the plane with a horizontal line and compare Y.
	Horizontal
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

func (o Orientation) flip() Orientation {
	return 1 - o
}

type node struct {
	point       geom.Point
	orientation Orientation
	low, high   int32
}

// routesLow returns true if p belongs to the low side of n.
// Points equal to n on the splitting coordinate go to the high side.
func (n *node) routesLow(p geom.Point) bool {
	if n.orientation == Vertical {
		return p.X < n.point.X
	}
	return p.Y < n.point.Y
}

// split divides region, the area owned by n, into the areas owned by n's children.
func (n *node) split(region geom.Rect) (low, high geom.Rect) {
	if n.orientation == Vertical {
		return region.SplitX(n.point.X)
	}
	return region.SplitY(n.point.Y)
}

// Tree is a set of distinct points organized as a 2-d tree.
// The zero value is an empty tree whose universe grows to fit inserted points.
type Tree struct {
	// nodes[0] is the root.
	nodes []node
	// Region owned by the root. Always contains every stored point.
	universe geom.Rect
}

// New returns an empty tree covering the whole plane.
func New() *Tree {
	return NewBounded(geom.Plane)
}

// NewBounded returns an empty tree whose root owns universe, e.g. geom.UnitSquare.
// Tighter bounds let Range and Nearest prune earlier.
// Inserting a point outside of universe grows it to include the point.
func NewBounded(universe geom.Rect) *Tree {
	return &Tree{universe: universe}
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsEmpty returns true if the tree has no points.
func (t *Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Bounds returns the region owned by the root.
func (t *Tree) Bounds() geom.Rect {
	return t.universe
}

// Insert adds p to the tree. It returns false if an equal point is already in the tree,
// in which case the tree is left unchanged.
func (t *Tree) Insert(p geom.Point) bool {
	if len(t.nodes) == 0 {
		t.add(p, Vertical)
		return true
	}
	i := int32(0)
	for {
		n := &t.nodes[i]
		if n.point == p {
			return false
		}
		low := n.routesLow(p)
		next := n.high
		if low {
			next = n.low
		}
		if next != none {
			i = next
			continue
		}
		// add may reallocate t.nodes; n is stale after this call.
		id := t.add(p, n.orientation.flip())
		if low {
			t.nodes[i].low = id
		} else {
			t.nodes[i].high = id
		}
		return true
	}
}

func (t *Tree) add(p geom.Point, o Orientation) int32 {
	if !t.universe.Contains(p) {
		t.universe = t.universe.Extend(p)
	}
	t.nodes = append(t.nodes, node{point: p, orientation: o, low: none, high: none})
	return int32(len(t.nodes) - 1)
}

// Contains returns true if a point equal to p is in the tree.
func (t *Tree) Contains(p geom.Point) bool {
	if len(t.nodes) == 0 {
		return false
	}
	i := int32(0)
	for i != none {
		n := &t.nodes[i]
		if n.point == p {
			return true
		}
		if n.routesLow(p) {
			i = n.low
		} else {
			i = n.high
		}
	}
	return false
}

// Trace collects traversal counters from Range and Nearest queries.
type Trace struct {
	// Nodes whose point was examined.
	Visited int
	// Subtrees skipped because their region could not contribute to the result.
	Pruned int
}

func (tr *Trace) visit() {
	if tr != nil {
		tr.Visited++
	}
}

func (tr *Trace) prune() {
	if tr != nil {
		tr.Pruned++
	}
}

// frame is a pending node in a traversal together with the region it owns.
type frame struct {
	id     int32
	region geom.Rect
	depth  int
}
