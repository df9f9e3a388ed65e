package pointindex

// Stats is a snapshot of the index and its query counters.
type Stats struct {
	ID     string
	Points int
	Height int
	Bounds string

	Inserts    int64
	Duplicates int64
	Contains   int64
	Ranges     int64
	Nearests   int64

	// Nodes examined per query.
	RangeVisitedMean   float64
	RangeVisitedMax    int64
	NearestVisitedMean float64
	NearestVisitedMax  int64
}

// Stats returns the current statistics of the index.
func (x *Index) Stats() Stats {
	x.m.RLock()
	s := Stats{
		ID:     x.id,
		Points: x.tree.Len(),
		Height: x.tree.Height(),
		Bounds: x.tree.Bounds().String(),
	}
	x.m.RUnlock()

	m := x.metrics
	s.Inserts = m.Inserts.Count()
	s.Duplicates = m.Duplicates.Count()
	s.Contains = m.Contains.Count()
	s.Ranges = m.Ranges.Count()
	s.Nearests = m.Nearests.Count()

	rv := m.RangeVisited.Snapshot()
	s.RangeVisitedMean = rv.Mean()
	s.RangeVisitedMax = rv.Max()
	nv := m.NearestVisited.Snapshot()
	s.NearestVisitedMean = nv.Mean()
	s.NearestVisitedMax = nv.Max()
	return s
}
