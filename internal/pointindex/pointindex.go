// Package pointindex wraps a 2-d tree so it can be shared between goroutines.
package pointindex

import (
	"io"
	"sync"

	"github.com/cenkalti/planar/geom"
	"github.com/cenkalti/planar/internal/logger"
	"github.com/cenkalti/planar/internal/pointio"
	"github.com/cenkalti/planar/kdtree"
	"github.com/gofrs/uuid"
)

// Index holds points in a 2-d tree for faster lookups.
// Insert and Reload are serialized against every other call; queries run concurrently.
type Index struct {
	id       string
	log      logger.Logger
	universe geom.Rect
	metrics  *indexMetrics

	m    sync.RWMutex
	tree *kdtree.Tree
}

// New returns an empty Index whose tree starts with the given universe.
func New(universe geom.Rect) *Index {
	id := uuid.Must(uuid.NewV4()).String()
	idx := &Index{
		id:       id,
		log:      logger.New("index " + id[:8]),
		universe: universe,
		tree:     kdtree.NewBounded(universe),
	}
	idx.initMetrics()
	return idx
}

// ID returns the unique identifier of the index.
func (x *Index) ID() string {
	return x.id
}

// Insert adds p to the index. It returns false if p was already present.
func (x *Index) Insert(p geom.Point) bool {
	x.m.Lock()
	defer x.m.Unlock()
	return x.insertLocked(p)
}

// Contains returns true if p is in the index.
func (x *Index) Contains(p geom.Point) bool {
	x.m.RLock()
	defer x.m.RUnlock()
	x.metrics.Contains.Inc(1)
	return x.tree.Contains(p)
}

// Range returns the points inside r.
func (x *Index) Range(r geom.Rect) []geom.Point {
	var tr kdtree.Trace
	x.m.RLock()
	points := x.tree.RangeTrace(r, &tr)
	x.m.RUnlock()
	x.metrics.Ranges.Inc(1)
	x.metrics.RangeVisited.Update(int64(tr.Visited))
	x.log.Debugf("range %s: %d points, visited %d nodes, pruned %d subtrees", r, len(points), tr.Visited, tr.Pruned)
	return points
}

// Nearest returns the point closest to q. ok is false if the index is empty.
func (x *Index) Nearest(q geom.Point) (p geom.Point, ok bool) {
	var tr kdtree.Trace
	x.m.RLock()
	p, ok = x.tree.NearestTrace(q, &tr)
	x.m.RUnlock()
	x.metrics.Nearests.Inc(1)
	x.metrics.NearestVisited.Update(int64(tr.Visited))
	x.log.Debugf("nearest %s: %s, visited %d nodes, pruned %d subtrees", q, p, tr.Visited, tr.Pruned)
	return
}

// Len returns the number of points in the index.
func (x *Index) Len() int {
	x.m.RLock()
	defer x.m.RUnlock()
	return x.tree.Len()
}

// Points returns every point in the index.
func (x *Index) Points() []geom.Point {
	x.m.RLock()
	defer x.m.RUnlock()
	return x.tree.Points()
}

// Walk calls fn for each node of the tree while holding the read lock.
// fn must not call methods of x that take the write lock.
func (x *Index) Walk(fn func(n kdtree.NodeInfo) bool) {
	x.m.RLock()
	defer x.m.RUnlock()
	x.tree.Walk(fn)
}

// Load reads points from r and inserts them into the index.
// It returns the number of points read, including duplicates.
func (x *Index) Load(r io.Reader) (int, error) {
	points, err := pointio.Read(r, x.log.Warningf)
	if err != nil {
		return 0, err
	}
	x.m.Lock()
	for _, p := range points {
		x.insertLocked(p)
	}
	x.m.Unlock()
	x.log.Infof("Loaded %d points.", len(points))
	return len(points), nil
}

// Reload replaces the content of the index with points read from r.
// On error the index is left unchanged.
func (x *Index) Reload(r io.Reader) (int, error) {
	points, err := pointio.Read(r, x.log.Warningf)
	if err != nil {
		return 0, err
	}
	tree := kdtree.NewBounded(x.universe)
	for _, p := range points {
		tree.Insert(p)
	}

	x.m.Lock()
	x.tree = tree
	x.m.Unlock()

	x.log.Infof("Reloaded %d points.", len(points))
	return len(points), nil
}

func (x *Index) insertLocked(p geom.Point) bool {
	if !x.tree.Insert(p) {
		x.metrics.Duplicates.Inc(1)
		return false
	}
	x.metrics.Inserts.Inc(1)
	return true
}
