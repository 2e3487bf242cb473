package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Renderer substitutes an assignment into a family's formula
type Renderer func(p Assignment) string

// formatNumber prints v the way the slider labels show it: shortest
// representation, no trailing zeros, no negative zero.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// plusMinus renders "+ |v|" or "- |v|" so that negative terms read as
// subtractions instead of "+ -3".
func plusMinus(v float64) string {
	if v >= 0 {
		return "+ " + formatNumber(math.Abs(v))
	}
	return "- " + formatNumber(math.Abs(v))
}

func renderLinear(p Assignment) string {
	q := slopeInterceptOf(p)
	return fmt.Sprintf("f(x) = %sx %s", formatNumber(q.m), plusMinus(q.b))
}

func renderQuadratic(p Assignment) string {
	q := polynomialOf(p)
	return fmt.Sprintf("f(x) = %sx² %sx %s", formatNumber(q.a), plusMinus(q.b), plusMinus(q.c))
}

func renderCubic(p Assignment) string {
	q := polynomialOf(p)
	return fmt.Sprintf("f(x) = %sx³ %sx² %sx %s",
		formatNumber(q.a), plusMinus(q.b), plusMinus(q.c), plusMinus(q.d))
}

func renderRadical(p Assignment) string {
	q := shiftedOf(p)
	// inside the root the shift is subtracted: x - h
	inner := "- " + formatNumber(math.Abs(q.h))
	if !(q.h >= 0) {
		inner = "+ " + formatNumber(math.Abs(q.h))
	}
	return fmt.Sprintf("f(x) = %s√(x %s) %s", formatNumber(q.a), inner, plusMinus(q.k))
}

func renderExponential(p Assignment) string {
	q := coefPairOf(p)
	return fmt.Sprintf("f(x) = %s · %s^x", formatNumber(q.a), formatNumber(q.b))
}

func renderLogarithmic(p Assignment) string {
	return fmt.Sprintf("f(x) = log_%s(x)", formatNumber(p.Value("b")))
}

func renderTrigonometric(p Assignment) string {
	q := amplitudeFrequencyOf(p)
	return fmt.Sprintf("f(x) = %s · sin(%sx)", formatNumber(q.A), formatNumber(q.B))
}

func renderPiecewise(p Assignment) string {
	q := coefPairOf(p)
	return fmt.Sprintf("f(x) = { x < 0: x %s ; x ≥ 0: x² %s }", plusMinus(q.a), plusMinus(q.b))
}

// renderVariant is shared by every variant. It assumes the owning family
// names its parameters A (amplitude) and B (frequency), which only holds for
// the trigonometric family. A family with variants over other parameter
// names needs its own renderer per variant.
func renderVariant(v *Variant, p Assignment) string {
	return fmt.Sprintf("f(x) = %s · %s(%sx)",
		formatNumber(p.Value("A")), strings.ToLower(v.Name), formatNumber(p.Value("B")))
}
