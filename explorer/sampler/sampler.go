// Package sampler turns a family, a variant selector and an assignment into
// the point sequence a line chart draws.
package sampler

import (
	"math"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"

	"funcexplorer.com/explorer/catalog"
)

// The plotted domain is fixed: [-10, 10] every 0.2
const (
	DomainMin = -10.0
	DomainMax = 10.0
	Step      = 0.2
	NumPoints = 101
)

// Point is one sample. Y is nil where the chart must break the line.
type Point struct {
	X float64  `json:"x"`
	Y *float64 `json:"y"`
}

// Gap reports whether the point has no value
func (p Point) Gap() bool {
	return p.Y == nil
}

// Options tunes one call site. Defined values with |y| > Clamp are dropped;
// Clamp <= 0 keeps every finite value.
type Options struct {
	Clamp float64
}

// Abscissas returns the 101 sample positions, rounded to one decimal so
// that the nominal 0.6 is exactly 0.6.
func Abscissas() []float64 {
	xs := floats.Span(make([]float64, NumPoints), DomainMin, DomainMax)
	for i, x := range xs {
		xs[i] = roundTo(x, 1)
	}
	return xs
}

// Sample evaluates the active rule of f over the domain. The result depends
// only on its arguments; it is recomputed in full on every call.
func Sample(f *catalog.Family, variantID string, p catalog.Assignment, opts Options) []Point {
	return SampleRule(catalog.ActiveRule(f, variantID), p, opts)
}

// SampleRule is Sample for an already resolved rule
func SampleRule(r catalog.Rule, p catalog.Assignment, opts Options) []Point {
	xs := Abscissas()
	points := make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Y: filter(r, x, p, opts.Clamp)}
	}
	return points
}

// SampleProblem samples a practice problem's graph with its own parameters,
// which may lie outside the slider bounds.
func SampleProblem(f *catalog.Family, pr catalog.Problem, opts Options) []Point {
	p, variantID := pr.Plot()
	return Sample(f, variantID, p, opts)
}

// Tabulate evaluates r at explicit abscissas without any clamp, for
// value tables. NaN and infinite results still come back as gaps.
func Tabulate(r catalog.Rule, p catalog.Assignment, xs []float64) []Point {
	rows := make([]Point, len(xs))
	for i, x := range xs {
		rows[i] = Point{X: x, Y: filter(r, x, p, 0)}
	}
	return rows
}

// filter returns nil for a domain gap, a non-finite value or a value past clamp
func filter(r catalog.Rule, x float64, p catalog.Assignment, clamp float64) *float64 {
	y, ok := r.Evaluate(x, p)
	if !ok || math.IsNaN(y) || math.IsInf(y, 0) {
		return nil
	}
	if clamp > 0 && math.Abs(y) > clamp {
		return nil
	}
	return &y
}

// Values returns the ordinates with NaN in place of gaps
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		if p.Y == nil {
			out[i] = math.NaN()
			continue
		}
		out[i] = *p.Y
	}
	return out
}

func roundTo[T constraints.Float](v T, places int) T {
	scale := math.Pow(10, float64(places))
	r := math.Round(float64(v)*scale) / scale
	if r == 0 {
		return 0 // no negative zero
	}
	return T(r)
}
