// Package randpoint generates uniformly distributed points for tests, benchmarks and the gen command.
package randpoint

import (
	"math/rand"

	"github.com/cenkalti/planar/geom"
)

type Generator struct {
	rnd *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))} // nolint: gosec
}

// Point returns a point drawn uniformly from r. r must have finite bounds.
func (g *Generator) Point(r geom.Rect) geom.Point {
	return geom.Pt(
		r.XMin()+g.rnd.Float64()*r.Width(),
		r.YMin()+g.rnd.Float64()*r.Height(),
	)
}

// Points returns n points drawn uniformly from r. Duplicates are possible.
func (g *Generator) Points(n int, r geom.Rect) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = g.Point(r)
	}
	return points
}

// GridPoints returns n points drawn from a k x k lattice spanning r.
// Small k produces many duplicates and many ties on the splitting coordinates.
func (g *Generator) GridPoints(n, k int, r geom.Rect) []geom.Point {
	points := make([]geom.Point, n)
	step := func(extent float64) float64 {
		if k < 2 {
			return 0
		}
		return extent / float64(k-1)
	}
	dx, dy := step(r.Width()), step(r.Height())
	for i := range points {
		points[i] = geom.Pt(
			r.XMin()+float64(g.rnd.Intn(k))*dx,
			r.YMin()+float64(g.rnd.Intn(k))*dy,
		)
	}
	return points
}

// Rect returns a rectangle inside r whose corners are drawn uniformly from r.
func (g *Generator) Rect(r geom.Rect) geom.Rect {
	a, b := g.Point(r), g.Point(r)
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return geom.MustRect(a.X, a.Y, b.X, b.Y)
}
