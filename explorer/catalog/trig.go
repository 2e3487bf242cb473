package catalog

import "math"

// reciprocalClamp hides the branches of tan, cot, sec and csc near their
// asymptotes. It applies inside the rule, before any sampler threshold.
const reciprocalClamp = 10.0

// trig is the evaluation rule of one trigonometric variant
type trig string

const (
	trigSin  trig = "sin"
	trigCos  trig = "cos"
	trigTan  trig = "tan"
	trigCot  trig = "cot"
	trigSec  trig = "sec"
	trigCsc  trig = "csc"
	trigAsin trig = "asin"
	trigAcos trig = "acos"
	trigAtan trig = "atan"
)

func (t trig) Evaluate(x float64, p Assignment) (float64, bool) {
	q := amplitudeFrequencyOf(p)
	switch t {
	case trigSin:
		return q.A * math.Sin(q.B*x), true
	case trigCos:
		return q.A * math.Cos(q.B*x), true
	case trigTan:
		return clampReciprocal(q.A * math.Tan(q.B*x))
	case trigCot:
		return clampReciprocal(q.A * (1 / math.Tan(q.B*x)))
	case trigSec:
		return clampReciprocal(q.A * (1 / math.Cos(q.B*x)))
	case trigCsc:
		return clampReciprocal(q.A * (1 / math.Sin(q.B*x)))
	case trigAsin:
		// arcsin and arccos take x directly; B does not apply
		if x < -1 || x > 1 {
			return 0, false
		}
		return q.A * math.Asin(x), true
	case trigAcos:
		if x < -1 || x > 1 {
			return 0, false
		}
		return q.A * math.Acos(x), true
	case trigAtan:
		return q.A * math.Atan(q.B*x), true
	}
	return 0, false
}

func clampReciprocal(v float64) (float64, bool) {
	if math.Abs(v) > reciprocalClamp {
		return 0, false
	}
	return v, true
}
