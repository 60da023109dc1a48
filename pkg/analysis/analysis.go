// Package analysis scans a collection of shapes once and reports, per
// metric, the shape with the largest value.
package analysis

import (
	"math"

	"github.com/chazu/solids/pkg/shape"
)

// Metric names one of the three ranking criteria.
type Metric int

const (
	MetricVolume Metric = iota
	MetricSurfaceArea
	MetricEfficiency
)

func (m Metric) String() string {
	switch m {
	case MetricVolume:
		return "volume"
	case MetricSurfaceArea:
		return "surface area"
	case MetricEfficiency:
		return "efficiency"
	default:
		return "unknown"
	}
}

// Metrics is what one shape measured during the scan.
type Metrics struct {
	Index       int // 1-based position in the input
	Shape       shape.Shape
	Volume      float64
	SurfaceArea float64
	Efficiency  float64 // Volume / SurfaceArea
}

// Best is the winner of one metric.
type Best struct {
	Shape shape.Shape
	Index int
	Value float64
}

// Result holds the three independent winners and the per-shape metrics
// they were chosen from, in input order.
type Result struct {
	Volume      Best
	SurfaceArea Best
	Efficiency  Best
	Shapes      []Metrics
}

// Winner returns the Best entry for m.
func (r *Result) Winner(m Metric) Best {
	switch m {
	case MetricSurfaceArea:
		return r.SurfaceArea
	case MetricEfficiency:
		return r.Efficiency
	default:
		return r.Volume
	}
}

// tracker keeps the running maximum of one metric.
type tracker struct {
	best Best
}

func newTracker() tracker {
	return tracker{best: Best{Value: math.Inf(-1)}}
}

// offer replaces the current best only on a strictly greater value, so the
// earliest shape wins ties. The first offer always lands and a NaN best
// yields to any number, so a non-empty scan always has a winner.
func (t *tracker) offer(m Metrics, v float64) {
	if t.best.Shape == nil || v > t.best.Value || (math.IsNaN(t.best.Value) && !math.IsNaN(v)) {
		t.best = Best{Shape: m.Shape, Index: m.Index, Value: v}
	}
}

// Analyze measures every shape once, in order, and picks the largest
// volume, largest surface area and largest volume-to-surface ratio.
// ok is false when shapes is empty; there are no winners in that case.
//
// Validated shapes always have a positive surface area, so the ratio is
// never a division by zero.
func Analyze(shapes []shape.Shape) (result Result, ok bool) {
	if len(shapes) == 0 {
		return Result{}, false
	}

	vol, area, eff := newTracker(), newTracker(), newTracker()
	measured := make([]Metrics, 0, len(shapes))

	for i, s := range shapes {
		m := Measure(i+1, s)
		measured = append(measured, m)

		vol.offer(m, m.Volume)
		area.offer(m, m.SurfaceArea)
		eff.offer(m, m.Efficiency)
	}

	return Result{
		Volume:      vol.best,
		SurfaceArea: area.best,
		Efficiency:  eff.best,
		Shapes:      measured,
	}, true
}

// Measure computes the metrics of a single shape.
func Measure(index int, s shape.Shape) Metrics {
	v := s.Volume()
	sa := s.SurfaceArea()
	return Metrics{
		Index:       index,
		Shape:       s,
		Volume:      v,
		SurfaceArea: sa,
		Efficiency:  v / sa,
	}
}
