package catalog_test

import (
	"encoding/json"
	"testing"

	"funcexplorer.com/explorer/catalog"
)

func TestRenderFormula(t *testing.T) {
	tests := []struct {
		family  string
		variant string
		params  map[string]float64
		want    string
	}{
		{"linear", "", map[string]float64{"m": 2, "b": -3}, "f(x) = 2x - 3"},
		{"linear", "", map[string]float64{"m": -1.5, "b": 0}, "f(x) = -1.5x + 0"},
		{"quadratic", "", map[string]float64{"a": 1, "b": -4, "c": 3}, "f(x) = 1x² - 4x + 3"},
		{"cubic", "", map[string]float64{"a": 0.5, "b": 1, "c": -2, "d": -0.5}, "f(x) = 0.5x³ + 1x² - 2x - 0.5"},
		{"radical", "", map[string]float64{"a": 1, "h": -2, "k": -1}, "f(x) = 1√(x + 2) - 1"},
		{"radical", "", map[string]float64{"a": 2, "h": 3, "k": 0}, "f(x) = 2√(x - 3) + 0"},
		{"exponential", "", map[string]float64{"a": 1, "b": 0.5}, "f(x) = 1 · 0.5^x"},
		{"logarithmic", "", map[string]float64{"b": 10}, "f(x) = log_10(x)"},
		{"trigonometric", "", map[string]float64{"A": 2, "B": 1}, "f(x) = 2 · sin(1x)"},
		{"piecewise", "", map[string]float64{"a": 2, "b": -1}, "f(x) = { x < 0: x + 2 ; x ≥ 0: x² - 1 }"},
		{"trigonometric", "cos", map[string]float64{"A": 1.5, "B": 3}, "f(x) = 1.5 · coseno(3x)"},
		{"trigonometric", "atan", nil, "f(x) = 1 · arctangente(1x)"},
		// unknown variant renders the family's own formula
		{"trigonometric", "sinh", map[string]float64{"A": 2, "B": 1}, "f(x) = 2 · sin(1x)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			f := catalog.Default().MustGet(tt.family)
			p, err := f.Assign(tt.params)
			if err != nil {
				t.Fatal(err)
			}
			if got := catalog.RenderFormula(f, p, tt.variant); got != tt.want {
				t.Errorf("RenderFormula = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderFormulaNegativeZero(t *testing.T) {
	f := catalog.Default().MustGet("linear")
	p := catalog.AssignmentOf(map[string]float64{"m": negZero(), "b": negZero()})
	if got := catalog.RenderFormula(f, p, ""); got != "f(x) = 0x + 0" {
		t.Errorf("RenderFormula = %q, want %q", got, "f(x) = 0x + 0")
	}
}

func negZero() float64 {
	z := 0.0
	return -z
}

func TestAssignRejectsUndeclaredParameter(t *testing.T) {
	f := catalog.Default().MustGet("linear")
	_, err := f.Assign(map[string]float64{"m": 1, "q": 2})
	if !catalog.IsNotFound(err) {
		t.Fatalf("Assign with q: err = %v, want NotFoundError", err)
	}
	if got := err.Error(); got != `parameter "q" not found in function "linear"` {
		t.Errorf("error = %q", got)
	}
}

func TestAssignmentCloneIsIndependent(t *testing.T) {
	f := catalog.Default().MustGet("quadratic")
	a := f.NewAssignment()
	b := a.Clone()
	if err := b.Set("a", -2); err != nil {
		t.Fatal(err)
	}
	if got := a.Value("a"); got != 1 {
		t.Errorf("original a = %v after changing the clone, want 1", got)
	}
	if got := b.IDs(); len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("IDs() = %v, want [a b c]", got)
	}
}

func TestAssignmentJSON(t *testing.T) {
	p, err := catalog.Default().MustGet("linear").Assign(map[string]float64{"m": 2})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"b":0,"m":2}` {
		t.Errorf("json = %s", got)
	}
}

func TestCheckBounds(t *testing.T) {
	f := catalog.Default().MustGet("radical")
	p := catalog.AssignmentOf(f.SolvedProblem.GraphParams)
	out := f.CheckBounds(p)
	if len(out) != 1 || out[0] != "a" {
		t.Errorf("CheckBounds(solved problem) = %v, want [a]", out)
	}
	if out := f.CheckBounds(f.NewAssignment()); len(out) != 0 {
		t.Errorf("CheckBounds(defaults) = %v, want none", out)
	}
}
