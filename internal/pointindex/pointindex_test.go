package pointindex

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/pointio"
	"github.com/cenkalti/planar/internal/randpoint"
	"github.com/cenkalti/planar/kdtree"
	"github.com/fortytw2/leaktest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePoints = `# scenario
0.3 0.2
0.2 0.2
0.1 0.1
0.2 0.1
0.3 0.3
0.3 0.3
`

func TestLoad(t *testing.T) {
	x := New(geom.UnitSquare)
	n, err := x.Load(strings.NewReader(samplePoints))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 5, x.Len())
	assert.True(t, x.Contains(geom.Pt(0.2, 0.1)))
	assert.False(t, x.Contains(geom.Pt(0.5, 0.5)))
	assert.ElementsMatch(t, x.Points(), x.Range(geom.UnitSquare))

	p, ok := x.Nearest(geom.Pt(0.29, 0.31))
	assert.True(t, ok)
	assert.Equal(t, geom.Pt(0.3, 0.3), p)

	s := x.Stats()
	assert.Equal(t, x.ID(), s.ID)
	assert.Equal(t, 5, s.Points)
	assert.Equal(t, int64(5), s.Inserts)
	assert.Equal(t, int64(1), s.Duplicates)
	assert.Equal(t, int64(2), s.Contains)
	assert.Equal(t, int64(1), s.Ranges)
	assert.Equal(t, int64(1), s.Nearests)
	assert.True(t, s.NearestVisitedMax > 0)
	assert.Equal(t, "[0, 1] x [0, 1]", s.Bounds)
}

func TestLoadInvalid(t *testing.T) {
	x := New(geom.UnitSquare)
	_, err := x.Load(strings.NewReader("not a point\n"))
	assert.ErrorIs(t, err, pointio.ErrNoValidPoints)
	assert.Equal(t, 0, x.Len())
}

func TestReload(t *testing.T) {
	x := New(geom.UnitSquare)
	x.Insert(geom.Pt(0.9, 0.9))

	// A failed reload keeps the old content.
	_, err := x.Reload(strings.NewReader("garbage\n"))
	assert.Error(t, err)
	assert.True(t, x.Contains(geom.Pt(0.9, 0.9)))

	n, err := x.Reload(strings.NewReader(samplePoints))
	require.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, 5, x.Len())
	assert.False(t, x.Contains(geom.Pt(0.9, 0.9)))
}

func TestInsert(t *testing.T) {
	x := New(geom.Plane)
	assert.True(t, x.Insert(geom.Pt(1, 2)))
	assert.False(t, x.Insert(geom.Pt(1, 2)))
	assert.Equal(t, 1, x.Len())
	_, ok := New(geom.Plane).Nearest(geom.Pt(0, 0))
	assert.False(t, ok)

	var nodes int
	x.Walk(func(n kdtree.NodeInfo) bool {
		nodes++
		assert.Equal(t, kdtree.Vertical, n.Orientation)
		return true
	})
	assert.Equal(t, 1, nodes)
}

func TestMetricsRegistry(t *testing.T) {
	x := New(geom.UnitSquare)
	x.Insert(geom.Pt(0.1, 0.1))
	x.Insert(geom.Pt(0.2, 0.2))

	names := make(map[string]bool)
	x.Registry().Each(func(name string, _ any) {
		names[name] = true
	})
	for _, name := range []string{"points", "height", "inserts", "duplicates", "contains", "ranges", "nearests", "range_visited", "nearest_visited"} {
		assert.True(t, names[name], name)
	}
	assert.Equal(t, int64(2), x.metrics.Points.Value())
	assert.Equal(t, int64(2), x.metrics.Height.Value())
}

func TestConcurrentAccess(t *testing.T) {
	defer leaktest.CheckTimeout(t, 5*time.Second)()

	x := New(geom.UnitSquare)
	g := randpoint.New(3)
	points := g.Points(2000, geom.UnitSquare)
	queries := g.Points(200, geom.UnitSquare)
	rects := make([]geom.Rect, 50)
	for i := range rects {
		rects[i] = g.Rect(geom.UnitSquare)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for _, p := range points {
			x.Insert(p)
		}
	}()
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, q := range queries {
				x.Nearest(q)
				x.Contains(q)
			}
			for _, r := range rects {
				for _, p := range x.Range(r) {
					assert.True(t, r.Contains(p))
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(points), x.Len())
	for _, p := range points {
		assert.True(t, x.Contains(p))
	}
}
