// Package report turns analysis output into display records and renders
// them as text or JSON. Rounding happens here and only here; the
// analysis package always works at full precision.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/chazu/solids/pkg/analysis"
	"github.com/chazu/solids/pkg/shape"
)

// DefaultPrecision is the number of decimals shown for every metric.
const DefaultPrecision = 2

// ShapeRecord is the display form of one measured shape.
type ShapeRecord struct {
	Index       int     `json:"index"`
	Description string  `json:"description"`
	SurfaceArea float64 `json:"surfaceArea"`
	Volume      float64 `json:"volume"`
	Efficiency  float64 `json:"efficiency"`
}

// Summary is the display form of the three winners.
type Summary struct {
	BestVolumeShape      string  `json:"bestVolumeShape"`
	BestVolumeValue      float64 `json:"bestVolumeValue"`
	BestSurfaceAreaShape string  `json:"bestSurfaceAreaShape"`
	BestSurfaceAreaValue float64 `json:"bestSurfaceAreaValue"`
	BestEfficiencyShape  string  `json:"bestEfficiencyShape"`
	BestEfficiencyValue  float64 `json:"bestEfficiencyValue"`
}

// Report bundles everything a front-end prints for one analysis run.
type Report struct {
	Shapes  []ShapeRecord `json:"shapes"`
	Summary *Summary      `json:"summary,omitempty"` // nil for an empty collection
}

// Formatter projects metrics into records at a fixed display precision.
type Formatter struct {
	Precision int
}

// NewFormatter returns a Formatter using DefaultPrecision.
func NewFormatter() *Formatter {
	return &Formatter{Precision: DefaultPrecision}
}

// round rounds v to f.Precision decimals. Magnitudes from 2^53 up carry no
// fraction and are returned as is, since scaling them could overflow.
func (f *Formatter) round(v float64) float64 {
	if math.Abs(v) >= 1<<53 {
		return v
	}
	p := math.Pow(10, float64(f.Precision))
	return math.Round(v*p) / p
}

// Record builds the display record of one measured shape.
func (f *Formatter) Record(m analysis.Metrics) ShapeRecord {
	return ShapeRecord{
		Index:       m.Index,
		Description: shape.Describe(m.Shape),
		SurfaceArea: f.round(m.SurfaceArea),
		Volume:      f.round(m.Volume),
		Efficiency:  f.round(m.Efficiency),
	}
}

// Summarize builds the summary record of an analysis result.
func (f *Formatter) Summarize(r analysis.Result) Summary {
	return Summary{
		BestVolumeShape:      r.Volume.Shape.Name(),
		BestVolumeValue:      f.round(r.Volume.Value),
		BestSurfaceAreaShape: r.SurfaceArea.Shape.Name(),
		BestSurfaceAreaValue: f.round(r.SurfaceArea.Value),
		BestEfficiencyShape:  r.Efficiency.Shape.Name(),
		BestEfficiencyValue:  f.round(r.Efficiency.Value),
	}
}

// Build analyzes shapes and returns the full report. An empty input
// yields a report with no records and a nil summary.
func (f *Formatter) Build(shapes []shape.Shape) Report {
	res, ok := analysis.Analyze(shapes)
	if !ok {
		return Report{Shapes: []ShapeRecord{}}
	}
	rep := Report{Shapes: make([]ShapeRecord, 0, len(res.Shapes))}
	for _, m := range res.Shapes {
		rep.Shapes = append(rep.Shapes, f.Record(m))
	}
	sum := f.Summarize(res)
	rep.Summary = &sum
	return rep
}

// WriteText renders rep in the console layout.
func (f *Formatter) WriteText(w io.Writer, rep Report) error {
	ew := &errWriter{w: w}
	if rep.Summary == nil {
		ew.printf("No shapes to display.\n")
		return ew.err
	}
	for _, r := range rep.Shapes {
		ew.printf("%d. %s\n", r.Index, r.Description)
		ew.printf("   - Surface Area: %s square units\n", f.num(r.SurfaceArea))
		ew.printf("   - Volume: %s cubic units\n", f.num(r.Volume))
		ew.printf("   - Efficiency (V/SA): %s\n", f.num(r.Efficiency))
		ew.printf("\n")
	}
	s := rep.Summary
	ew.printf("Analysis Results:\n")
	ew.printf("- Largest Volume: %s (%s)\n", s.BestVolumeShape, f.num(s.BestVolumeValue))
	ew.printf("- Largest Surface Area: %s (%s)\n", s.BestSurfaceAreaShape, f.num(s.BestSurfaceAreaValue))
	ew.printf("- Most Efficient (Volume/Surface): %s (%s)\n", s.BestEfficiencyShape, f.num(s.BestEfficiencyValue))
	return ew.err
}

// WriteCreated renders the confirmation shown after a shape is added.
func (f *Formatter) WriteCreated(w io.Writer, s shape.Shape) error {
	m := analysis.Measure(0, s)
	ew := &errWriter{w: w}
	ew.printf("Shape created successfully!\n")
	ew.printf("  %s\n", shape.Describe(s))
	ew.printf("  - Surface Area: %s square units\n", f.num(f.round(m.SurfaceArea)))
	ew.printf("  - Volume: %s cubic units\n", f.num(f.round(m.Volume)))
	return ew.err
}

// WriteJSON renders rep as indented JSON.
func (f *Formatter) WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("report: encode json: %w", err)
	}
	return nil
}

func (f *Formatter) num(v float64) string {
	return fmt.Sprintf("%.*f", f.Precision, v)
}

// errWriter remembers the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
