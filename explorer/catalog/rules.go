package catalog

import "math"

// Rule evaluates a function at x for a parameter assignment.
// ok is false when x lies outside the function's domain (a gap in the plot);
// that is data, not an error. Rules are pure and never panic.
type Rule interface {
	Evaluate(x float64, p Assignment) (y float64, ok bool)
}

// RuleFunc adapts a plain function to Rule
type RuleFunc func(x float64, p Assignment) (float64, bool)

func (f RuleFunc) Evaluate(x float64, p Assignment) (float64, bool) {
	return f(x, p)
}

// Each family reads its parameters into a fixed-shape record before
// evaluating. A missing value reads as NaN and propagates to the result,
// where the sampler drops it.

type slopeIntercept struct{ m, b float64 }

func slopeInterceptOf(p Assignment) slopeIntercept {
	return slopeIntercept{m: p.Value("m"), b: p.Value("b")}
}

type polynomial struct{ a, b, c, d float64 }

func polynomialOf(p Assignment) polynomial {
	return polynomial{a: p.Value("a"), b: p.Value("b"), c: p.Value("c"), d: p.Value("d")}
}

type shifted struct{ a, h, k float64 }

func shiftedOf(p Assignment) shifted {
	return shifted{a: p.Value("a"), h: p.Value("h"), k: p.Value("k")}
}

type coefPair struct{ a, b float64 }

func coefPairOf(p Assignment) coefPair {
	return coefPair{a: p.Value("a"), b: p.Value("b")}
}

type amplitudeFrequency struct{ A, B float64 }

func amplitudeFrequencyOf(p Assignment) amplitudeFrequency {
	return amplitudeFrequency{A: p.Value("A"), B: p.Value("B")}
}

// f(x) = mx + b
func linear(x float64, p Assignment) (float64, bool) {
	q := slopeInterceptOf(p)
	return q.m*x + q.b, true
}

// f(x) = ax² + bx + c
func quadratic(x float64, p Assignment) (float64, bool) {
	q := polynomialOf(p)
	return q.a*x*x + q.b*x + q.c, true
}

// f(x) = ax³ + bx² + cx + d
func cubic(x float64, p Assignment) (float64, bool) {
	q := polynomialOf(p)
	return q.a*math.Pow(x, 3) + q.b*math.Pow(x, 2) + q.c*x + q.d, true
}

// f(x) = a√(x - h) + k, defined for x ≥ h
func radical(x float64, p Assignment) (float64, bool) {
	q := shiftedOf(p)
	if x < q.h {
		return 0, false
	}
	return q.a*math.Sqrt(x-q.h) + q.k, true
}

// f(x) = a · b^x
func exponential(x float64, p Assignment) (float64, bool) {
	q := coefPairOf(p)
	return q.a * math.Pow(q.b, x), true
}

// f(x) = log_b(x), defined for x > 0
func logarithmic(x float64, p Assignment) (float64, bool) {
	if x <= 0 {
		return 0, false
	}
	return math.Log(x) / math.Log(p.Value("b")), true
}

// f(x) = x + a for x < 0, x² + b otherwise
func piecewise(x float64, p Assignment) (float64, bool) {
	q := coefPairOf(p)
	if x < 0 {
		return x + q.a, true
	}
	return x*x + q.b, true
}
