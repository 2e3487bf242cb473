package sampler_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

var (
	interactive = sampler.Options{Clamp: 20}
	static      = sampler.Options{Clamp: 15}
)

func assign(t *testing.T, f *catalog.Family, params map[string]float64) catalog.Assignment {
	t.Helper()
	p, err := f.Assign(params)
	if err != nil {
		t.Fatalf("Assign(%v): %v", params, err)
	}
	return p
}

func pointAt(t *testing.T, points []sampler.Point, x float64) sampler.Point {
	t.Helper()
	for _, p := range points {
		if p.X == x {
			return p
		}
	}
	t.Fatalf("no sample at x = %v", x)
	return sampler.Point{}
}

func TestAbscissas(t *testing.T) {
	xs := sampler.Abscissas()
	if len(xs) != sampler.NumPoints {
		t.Fatalf("len = %d, want %d", len(xs), sampler.NumPoints)
	}
	if xs[0] != -10 || xs[len(xs)-1] != 10 {
		t.Errorf("range = [%v, %v], want [-10, 10]", xs[0], xs[len(xs)-1])
	}
	for i, x := range xs {
		want := float64(-100+2*i) / 10
		if x != want {
			t.Errorf("xs[%d] = %v, want %v", i, x, want)
		}
		if math.Signbit(x) && x == 0 {
			t.Errorf("xs[%d] is negative zero", i)
		}
	}
	if xs[53] != 0.6 {
		t.Errorf("xs[53] = %v, want exactly 0.6", xs[53])
	}
}

func TestSampleShapeForEveryFamily(t *testing.T) {
	for _, f := range catalog.Default().All() {
		variants := []string{""}
		for _, v := range f.Variants {
			variants = append(variants, v.ID)
		}
		for _, v := range variants {
			points := sampler.Sample(f, v, f.NewAssignment(), interactive)
			if len(points) != sampler.NumPoints {
				t.Errorf("%s/%s: %d points, want %d", f.ID, v, len(points), sampler.NumPoints)
				continue
			}
			for i := 1; i < len(points); i++ {
				if points[i].X <= points[i-1].X {
					t.Errorf("%s/%s: x not ascending at %d", f.ID, v, i)
				}
			}
		}
	}
}

func TestSampleIsIdempotent(t *testing.T) {
	trig := catalog.Default().MustGet("trigonometric")
	p := assign(t, trig, map[string]float64{"A": 2.5, "B": 1.5})

	first, err := json.Marshal(sampler.Sample(trig, "sec", p, interactive))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(sampler.Sample(trig, "sec", p, interactive))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two samples with the same inputs differ")
	}
}

func TestInteractiveClamp(t *testing.T) {
	f := catalog.Default().MustGet("exponential")
	p := assign(t, f, map[string]float64{"a": 3, "b": 4})
	points := sampler.Sample(f, "", p, interactive)

	var hidden int
	for _, pt := range points {
		raw, _ := f.Rule.Evaluate(pt.X, p)
		if math.Abs(raw) > 20 {
			hidden++
			if !pt.Gap() {
				t.Errorf("x=%v: raw %v shown as %v, want gap", pt.X, raw, *pt.Y)
			}
		} else if pt.Gap() || *pt.Y != raw {
			t.Errorf("x=%v: raw %v, got %+v", pt.X, raw, pt)
		}
	}
	if hidden == 0 {
		t.Error("expected some samples above the clamp")
	}
}

func TestStaticAndInteractiveThresholdsDiffer(t *testing.T) {
	f := catalog.Default().MustGet("quadratic")
	p := f.NewAssignment()

	live := pointAt(t, sampler.Sample(f, "", p, interactive), 4.2)
	if live.Gap() || math.Abs(*live.Y-17.64) > 1e-9 {
		t.Errorf("interactive x=4.2: %+v, want 17.64", live)
	}
	if still := pointAt(t, sampler.Sample(f, "", p, static), 4.2); !still.Gap() {
		t.Errorf("static x=4.2: %v, want gap", *still.Y)
	}
	if still := pointAt(t, sampler.Sample(f, "", p, static), 3.8); still.Gap() {
		t.Error("static x=3.8: gap, want 14.44")
	}
}

func TestSampleDomainGaps(t *testing.T) {
	radical := catalog.Default().MustGet("radical")
	points := sampler.Sample(radical, "", assign(t, radical, map[string]float64{"a": 1, "h": 0, "k": 0}), interactive)
	if pt := pointAt(t, points, -1); !pt.Gap() {
		t.Errorf("radical x=-1: %v, want gap", *pt.Y)
	}
	if pt := pointAt(t, points, 4); pt.Gap() || *pt.Y != 2 {
		t.Errorf("radical x=4: %+v, want 2", pt)
	}

	log := catalog.Default().MustGet("logarithmic")
	for _, pt := range sampler.Sample(log, "", log.NewAssignment(), interactive) {
		if pt.X <= 0 && !pt.Gap() {
			t.Errorf("log x=%v: %v, want gap", pt.X, *pt.Y)
		}
	}
}

func TestTanVariantGapsNearAsymptote(t *testing.T) {
	trig := catalog.Default().MustGet("trigonometric")
	p := assign(t, trig, map[string]float64{"A": 1, "B": 1})
	for _, opts := range []sampler.Options{interactive, static, {}} {
		if pt := pointAt(t, sampler.Sample(trig, "tan", p, opts), 1.6); !pt.Gap() {
			t.Errorf("clamp %v: tan(1.6) = %v, want gap", opts.Clamp, *pt.Y)
		}
	}
}

func TestMissingParameterBecomesGap(t *testing.T) {
	f := catalog.Default().MustGet("linear")
	points := sampler.Sample(f, "", catalog.AssignmentOf(map[string]float64{"m": 2}), interactive)
	for _, pt := range points {
		if !pt.Gap() {
			t.Fatalf("x=%v: %v, want gap for missing b", pt.X, *pt.Y)
		}
	}
}

func TestGapsEncodeAsNull(t *testing.T) {
	f := catalog.Default().MustGet("logarithmic")
	points := sampler.Sample(f, "", f.NewAssignment(), interactive)
	data, err := json.Marshal(points[0])
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != `{"x":-10,"y":null}` {
		t.Errorf("json = %s", got)
	}
}

func TestSampleProblem(t *testing.T) {
	radical := catalog.Default().MustGet("radical")
	points := sampler.SampleProblem(radical, radical.SolvedProblem, static)
	if pt := pointAt(t, points, 9); pt.Gap() || math.Abs(*pt.Y-13.26) > 1e-9 {
		t.Errorf("solved radical x=9: %+v, want 13.26", pt)
	}

	trig := catalog.Default().MustGet("trigonometric")
	points = sampler.SampleProblem(trig, trig.ProposedProblem, static)
	if pt := pointAt(t, points, 0); pt.Gap() || *pt.Y != 1 {
		t.Errorf("proposed cosine x=0: %+v, want 1", pt)
	}
}

func TestTabulate(t *testing.T) {
	f := catalog.Default().MustGet("linear")
	p := assign(t, f, map[string]float64{"m": 2, "b": -1})
	rows := sampler.Tabulate(f.Rule, p, []float64{-1, 0, 1, 2, 50})

	want := []float64{-3, -1, 1, 3, 99}
	got := sampler.Values(rows)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: f(%v) = %v, want %v", i, rows[i].X, got[i], want[i])
		}
	}
}
