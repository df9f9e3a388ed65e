package pointindex

import (
	"github.com/rcrowley/go-metrics"
)

const sampleSize = 1028

type indexMetrics struct {
	registry metrics.Registry

	Points         metrics.Gauge
	Height         metrics.Gauge
	Inserts        metrics.Counter
	Duplicates     metrics.Counter
	Contains       metrics.Counter
	Ranges         metrics.Counter
	Nearests       metrics.Counter
	RangeVisited   metrics.Histogram
	NearestVisited metrics.Histogram
}

func (x *Index) initMetrics() {
	r := metrics.NewRegistry()
	x.metrics = &indexMetrics{
		registry: r,

		Points: metrics.NewRegisteredFunctionalGauge("points", r, func() int64 { return int64(x.Len()) }),
		Height: metrics.NewRegisteredFunctionalGauge("height", r, func() int64 {
			x.m.RLock()
			defer x.m.RUnlock()
			return int64(x.tree.Height())
		}),

		Inserts:    metrics.NewRegisteredCounter("inserts", r),
		Duplicates: metrics.NewRegisteredCounter("duplicates", r),
		Contains:   metrics.NewRegisteredCounter("contains", r),
		Ranges:     metrics.NewRegisteredCounter("ranges", r),
		Nearests:   metrics.NewRegisteredCounter("nearests", r),

		RangeVisited:   metrics.NewRegisteredHistogram("range_visited", r, metrics.NewUniformSample(sampleSize)),
		NearestVisited: metrics.NewRegisteredHistogram("nearest_visited", r, metrics.NewUniformSample(sampleSize)),
	}
}

// Registry returns the metrics registry of the index.
func (x *Index) Registry() metrics.Registry {
	return x.metrics.registry
}
