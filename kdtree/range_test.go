package kdtree

import (
	"testing"

	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/pointset"
	"github.com/cenkalti/planar/internal/randpoint"
	"github.com/stretchr/testify/assert"
)

func TestRangeAll(t *testing.T) {
	k := newTree(samplePoints())
	assert.ElementsMatch(t, samplePoints(), k.Range(geom.MustRect(0, 0, 1, 1)))
}

func TestRangeSingle(t *testing.T) {
	k := New()
	k.Insert(geom.Pt(1, 1))
	assert.Equal(t, []geom.Point{geom.Pt(1, 1)}, k.Range(geom.MustRect(0, 0, 1, 1)))
}

func TestRangeSelected(t *testing.T) {
	points := selectedPoints()
	k := newTree(points)
	assert.Equal(t, 5, k.Len())
	assert.Equal(t, []geom.Point{points[1]}, k.Range(geom.MustRect(0.6, 0.6, 0.8, 0.8)))
	assert.ElementsMatch(t, []geom.Point{points[0], points[2]}, k.Range(geom.MustRect(0, 0, 0.6, 0.6)))
}

func TestRangeNoMatch(t *testing.T) {
	k := newTree(samplePoints())
	assert.Empty(t, k.Range(geom.MustRect(0.4, 0.4, 1, 1)))
	assert.Empty(t, k.Range(geom.MustRect(5, 5, 6, 6)))
}

func TestRangeBoundary(t *testing.T) {
	k := newTree(samplePoints())
	// Degenerate rectangle on a stored point and edges through stored points.
	assert.Equal(t, []geom.Point{geom.Pt(0.2, 0.1)}, k.Range(geom.MustRect(0.2, 0.1, 0.2, 0.1)))
	assert.ElementsMatch(t,
		[]geom.Point{geom.Pt(0.3, 0.2), geom.Pt(0.3, 0.3)},
		k.Range(geom.MustRect(0.3, 0, 1, 1)))
}

func TestRangePrunesSubtrees(t *testing.T) {
	k := New()
	k.Insert(geom.Pt(0.5, 0.5))
	k.Insert(geom.Pt(0.25, 0.5))
	k.Insert(geom.Pt(0.75, 0.5))

	var tr Trace
	got := k.RangeTrace(geom.MustRect(0.6, 0, 1, 1), &tr)
	assert.Equal(t, []geom.Point{geom.Pt(0.75, 0.5)}, got)
	assert.Equal(t, 2, tr.Visited)
	assert.Equal(t, 1, tr.Pruned)
}

func TestRangeFuncStop(t *testing.T) {
	k := newTree(samplePoints())
	var n int
	k.RangeFunc(geom.UnitSquare, func(geom.Point) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n)
}

func TestRangeMatchesPointSet(t *testing.T) {
	g := randpoint.New(1)
	for _, tc := range []struct {
		name   string
		points []geom.Point
	}{
		{"uniform", g.Points(2000, geom.UnitSquare)},
		{"grid", g.GridPoints(2000, 16, geom.UnitSquare)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			k := NewBounded(geom.UnitSquare)
			s := pointset.New()
			for _, p := range tc.points {
				assert.Equal(t, s.Insert(p), k.Insert(p))
			}
			assert.Equal(t, s.Len(), k.Len())
			for _, p := range s.Points() {
				assert.True(t, k.Contains(p))
			}

			var visited, queries int
			for i := 0; i < 200; i++ {
				r := g.Rect(geom.UnitSquare)
				var tr Trace
				assert.ElementsMatch(t, s.Range(r), k.RangeTrace(r, &tr), r.String())
				visited += tr.Visited
				queries++
			}
			assert.Less(t, visited/queries, k.Len())
		})
	}
}
