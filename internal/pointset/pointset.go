// Package pointset implements a point set kept in a B-tree ordered by x, then y.
// Range and Nearest examine points one by one, so results are easy to trust;
// it serves as the reference the 2-d tree is checked against.
package pointset

import (
	"math"

	"github.com/cenkalti/planar/geom"
	"github.com/google/btree"
)

const degree = 32

type Set struct {
	tree *btree.BTreeG[geom.Point]
}

func New() *Set {
	return &Set{tree: btree.NewG(degree, geom.Point.Less)}
}

// Insert adds p and returns false if it was already in the set.
func (s *Set) Insert(p geom.Point) bool {
	_, replaced := s.tree.ReplaceOrInsert(p)
	return !replaced
}

func (s *Set) Contains(p geom.Point) bool {
	return s.tree.Has(p)
}

func (s *Set) Len() int {
	return s.tree.Len()
}

func (s *Set) IsEmpty() bool {
	return s.tree.Len() == 0
}

// Points returns all points sorted by x, then y.
func (s *Set) Points() []geom.Point {
	points := make([]geom.Point, 0, s.tree.Len())
	s.tree.Ascend(func(p geom.Point) bool {
		points = append(points, p)
		return true
	})
	return points
}

// Range returns the points inside r sorted by x, then y.
// Only the x-slice of the set between r's left and right edges is scanned.
func (s *Set) Range(r geom.Rect) []geom.Point {
	var points []geom.Point
	s.tree.AscendGreaterOrEqual(geom.Pt(r.XMin(), math.Inf(-1)), func(p geom.Point) bool {
		if p.X > r.XMax() {
			return false
		}
		if r.Contains(p) {
			points = append(points, p)
		}
		return true
	})
	return points
}

// Nearest returns the point closest to q. ok is false if the set is empty.
// Among equally close points the smallest one is returned.
func (s *Set) Nearest(q geom.Point) (p geom.Point, ok bool) {
	best := math.Inf(1)
	s.tree.Ascend(func(c geom.Point) bool {
		if d := c.DistanceSquaredTo(q); !ok || d < best {
			p, best, ok = c, d, true
		}
		return true
	})
	return
}
