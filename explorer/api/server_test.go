package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/charts"
	"funcexplorer.com/explorer/sampler"
	"funcexplorer.com/explorer/shared"
)

func newTestServer() http.Handler {
	c := catalog.Default()
	t := shared.Thresholds{
		Interactive: sampler.Options{Clamp: 20},
		Static:      sampler.Options{Clamp: 15},
	}
	return NewServer(c, charts.NewBoard(c, t.Interactive), t).Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestFunctionsByCategory(t *testing.T) {
	h := newTestServer()

	tests := []struct {
		query string
		code  int
		count int
	}{
		{"", http.StatusOK, 8},
		{"?category=algebraic", http.StatusOK, 4},
		{"?category=transcendental", http.StatusOK, 4},
		{"?category=geometric", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, h, http.MethodGet, "/functions"+tt.query, "")
			if w.Code != tt.code {
				t.Fatalf("code = %d, want %d", w.Code, tt.code)
			}
			if tt.code != http.StatusOK {
				return
			}
			var resp struct {
				Count     int                   `json:"count"`
				Functions []shared.FunctionInfo `json:"functions"`
			}
			decode(t, w, &resp)
			if resp.Count != tt.count || len(resp.Functions) != tt.count {
				t.Errorf("count = %d, want %d", resp.Count, tt.count)
			}
		})
	}
}

func TestFunctionDetail(t *testing.T) {
	h := newTestServer()

	w := do(t, h, http.MethodGet, "/functions/trigonometric", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var f struct {
		ID       string `json:"id"`
		Variants []struct {
			ID string `json:"id"`
		} `json:"variants"`
		Quiz struct {
			CorrectAnswer int `json:"correct_answer"`
		} `json:"quiz"`
	}
	decode(t, w, &f)
	if f.ID != "trigonometric" || len(f.Variants) != 9 || f.Quiz.CorrectAnswer != 1 {
		t.Errorf("got %+v", f)
	}

	if w := do(t, h, http.MethodGet, "/functions/hyperbolic", ""); w.Code != http.StatusNotFound {
		t.Errorf("unknown id code = %d, want 404", w.Code)
	}
}

func TestSampleViews(t *testing.T) {
	h := newTestServer()

	body := `{"function":"quadratic","params":{"a":1,"b":0,"c":0},"view":"%s"}`
	sample := func(view string) SampleResponse {
		w := do(t, h, http.MethodPost, "/sample", strings.Replace(body, "%s", view, 1))
		if w.Code != http.StatusOK {
			t.Fatalf("view %q code = %d: %s", view, w.Code, w.Body)
		}
		var resp SampleResponse
		decode(t, w, &resp)
		return resp
	}

	live := sample("interactive")
	static := sample("static")
	if len(live.Points) != sampler.NumPoints {
		t.Fatalf("len = %d", len(live.Points))
	}
	// x = 4.2, y = 17.64: kept live, dropped on problem graphs
	if p := live.Points[71]; p.X != 4.2 || p.Gap() {
		t.Errorf("interactive x=4.2 = %+v", p)
	}
	if p := static.Points[71]; !p.Gap() {
		t.Errorf("static x=4.2 = %+v, want gap", p)
	}
	if live.Formula != "f(x) = 1x² + 0x + 0" {
		t.Errorf("formula = %q", live.Formula)
	}

	if w := do(t, h, http.MethodPost, "/sample", `{"function":"linear","view":"sideways"}`); w.Code != http.StatusBadRequest {
		t.Errorf("bad view code = %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/sample", `{"function":"linear"`); w.Code != http.StatusBadRequest {
		t.Errorf("bad json code = %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, "/sample", `{"function":"linear","params":{"m":99}}`); w.Code != http.StatusBadRequest {
		t.Errorf("out of range code = %d", w.Code)
	}
}

func TestSampleGapsEncodeAsNull(t *testing.T) {
	h := newTestServer()
	w := do(t, h, http.MethodPost, "/sample", `{"function":"logarithmic"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `{"x":-10,"y":null}`) {
		t.Errorf("body has no null gap: %.200s", w.Body.String())
	}
}

func TestFormulaAndTabulate(t *testing.T) {
	h := newTestServer()

	w := do(t, h, http.MethodPost, "/formula", `{"function":"linear","params":{"m":-2,"b":-3}}`)
	var f FormulaResponse
	decode(t, w, &f)
	if f.Formula != "f(x) = -2x - 3" {
		t.Errorf("formula = %q", f.Formula)
	}

	w = do(t, h, http.MethodPost, "/tabulate", `{"function":"quadratic","params":{"a":1,"b":0,"c":0},"xs":[5,-1]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("tabulate code = %d", w.Code)
	}
	var tab SampleResponse
	decode(t, w, &tab)
	if len(tab.Points) != 2 || *tab.Points[0].Y != 25 || *tab.Points[1].Y != 1 {
		t.Errorf("tabulate = %+v", tab.Points)
	}

	if w := do(t, h, http.MethodPost, "/tabulate", `{"function":"linear"}`); w.Code != http.StatusBadRequest {
		t.Errorf("empty xs code = %d", w.Code)
	}
}

func TestProblemSamples(t *testing.T) {
	h := newTestServer()

	w := do(t, h, http.MethodGet, "/functions/trigonometric/problems/proposed/samples", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	var resp SampleResponse
	decode(t, w, &resp)
	if resp.Variant != "cos" || *resp.Points[50].Y != 1 {
		t.Errorf("proposed = %q, y(0) = %v", resp.Variant, resp.Points[50].Y)
	}

	if w := do(t, h, http.MethodGet, "/functions/linear/problems/homework/samples", ""); w.Code != http.StatusNotFound {
		t.Errorf("bad kind code = %d", w.Code)
	}
}

func TestChartLifecycle(t *testing.T) {
	h := newTestServer()

	w := do(t, h, http.MethodPost, "/charts", `{"function":"linear"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create code = %d: %s", w.Code, w.Body)
	}
	var c ChartResponse
	decode(t, w, &c)
	if c.ID == "" || c.Function != "linear" || len(c.Points) != sampler.NumPoints {
		t.Fatalf("created %+v", c.Chart)
	}
	base := "/charts/" + c.ID

	w = do(t, h, http.MethodPost, base+"/params", `{"param":"m","value":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("set param code = %d: %s", w.Code, w.Body)
	}
	decode(t, w, &c)
	if c.Formula != "f(x) = 2x + 0" {
		t.Errorf("formula = %q", c.Formula)
	}

	if w := do(t, h, http.MethodPost, base+"/params", `{"param":"m","value":6}`); w.Code != http.StatusBadRequest {
		t.Errorf("out of range code = %d", w.Code)
	}
	if w := do(t, h, http.MethodPost, base+"/params", `{"param":"q","value":1}`); w.Code != http.StatusNotFound {
		t.Errorf("unknown param code = %d", w.Code)
	}

	w = do(t, h, http.MethodPost, base+"/function", `{"function":"trigonometric"}`)
	decode(t, w, &c)
	if c.Function != "trigonometric" || c.Variant != "sin" {
		t.Errorf("switched to %s/%s", c.Function, c.Variant)
	}

	w = do(t, h, http.MethodPost, base+"/variant", `{"variant":"cos"}`)
	decode(t, w, &c)
	if *c.Points[50].Y != 1 {
		t.Errorf("cos(0) = %v", c.Points[50].Y)
	}

	w = do(t, h, http.MethodGet, "/charts", "")
	var list struct {
		Count int `json:"count"`
	}
	decode(t, w, &list)
	if list.Count != 1 {
		t.Errorf("count = %d", list.Count)
	}

	if w := do(t, h, http.MethodDelete, base, ""); w.Code != http.StatusNoContent {
		t.Errorf("delete code = %d", w.Code)
	}
	if w := do(t, h, http.MethodGet, base, ""); w.Code != http.StatusNotFound {
		t.Errorf("get after delete code = %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer()
	w := do(t, h, http.MethodOptions, "/sample", "")
	if w.Code != http.StatusOK {
		t.Errorf("code = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin = %q", got)
	}
}
