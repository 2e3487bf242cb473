package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/charts"
	"funcexplorer.com/explorer/sampler"
	"funcexplorer.com/explorer/shared"
)

type Server struct {
	catalog    *catalog.Catalog
	board      *charts.Board
	thresholds shared.Thresholds
}

func NewServer(c *catalog.Catalog, board *charts.Board, t shared.Thresholds) *Server {
	return &Server{catalog: c, board: board, thresholds: t}
}

// SampleRequest asks for the points of one family
type SampleRequest struct {
	Function string             `json:"function"`
	Variant  string             `json:"variant,omitempty"`
	Params   map[string]float64 `json:"params,omitempty"`
	View     string             `json:"view,omitempty"` // "interactive" (default) or "static"
}

// TabulateRequest evaluates a family at arbitrary abscissas, unclamped
type TabulateRequest struct {
	SampleRequest
	Xs []float64 `json:"xs"`
}

type CreateChartRequest struct {
	Function string `json:"function"`
}

type SetParamRequest struct {
	Param string  `json:"param"`
	Value float64 `json:"value"`
}

type SelectVariantRequest struct {
	Variant string `json:"variant"`
}

// Response structures
type SampleResponse struct {
	Function string          `json:"function"`
	Variant  string          `json:"variant,omitempty"`
	Formula  string          `json:"formula"`
	Points   []sampler.Point `json:"points"`
}

type FormulaResponse struct {
	Formula string `json:"formula"`
}

type ChartResponse struct {
	charts.Chart
	Formula string          `json:"formula"`
	Points  []sampler.Point `json:"points"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler returns the routed API wrapped in CORS handling
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Endpoints
	mux.HandleFunc("GET /functions", s.handleFunctions)
	mux.HandleFunc("GET /functions/{id}", s.handleFunction)
	mux.HandleFunc("GET /functions/{id}/problems/{kind}/samples", s.handleProblemSamples)
	mux.HandleFunc("POST /sample", s.handleSample)
	mux.HandleFunc("POST /formula", s.handleFormula)
	mux.HandleFunc("POST /tabulate", s.handleTabulate)
	mux.HandleFunc("GET /charts", s.handleListCharts)
	mux.HandleFunc("POST /charts", s.handleCreateChart)
	mux.HandleFunc("GET /charts/{id}", s.handleGetChart)
	mux.HandleFunc("DELETE /charts/{id}", s.handleDeleteChart)
	mux.HandleFunc("POST /charts/{id}/params", s.handleSetParam)
	mux.HandleFunc("POST /charts/{id}/variant", s.handleSelectVariant)
	mux.HandleFunc("POST /charts/{id}/function", s.handleSelectFunction)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.enableCORS(mux)
}

func (s *Server) Start(addr string) error {
	log.Printf("API Server listening on %s", addr)
	log.Println("Available endpoints:")
	log.Println("  GET    /functions                              - List families (?category=algebraic|transcendental)")
	log.Println("  GET    /functions/{id}                         - Family with its learning material")
	log.Println("  GET    /functions/{id}/problems/{kind}/samples - Graph of the solved or proposed problem")
	log.Println("  POST   /sample                                 - Sample a family over [-10, 10]")
	log.Println("  POST   /formula                                - Render a formula")
	log.Println("  POST   /tabulate                               - Evaluate at given x values")
	log.Println("  GET    /charts                                 - List live charts")
	log.Println("  POST   /charts                                 - Open a chart")
	log.Println("  GET    /charts/{id}                            - Chart with its samples")
	log.Println("  DELETE /charts/{id}                            - Close a chart")
	log.Println("  POST   /charts/{id}/params                     - Move a slider")
	log.Println("  POST   /charts/{id}/variant                    - Select a variant")
	log.Println("  POST   /charts/{id}/function                   - Switch family")
	log.Println("  GET    /health                                 - Health check")

	return http.ListenAndServe(addr, s.Handler())
}

// GET /functions - List families, optionally by category
func (s *Server) handleFunctions(w http.ResponseWriter, r *http.Request) {
	fams := s.catalog.All()
	if c := r.URL.Query().Get("category"); c != "" {
		cat := catalog.Category(c)
		if !cat.Valid() {
			s.sendError(w, "unknown category "+c, http.StatusBadRequest)
			return
		}
		fams = s.catalog.ListByCategory(cat)
	}

	infos := make([]shared.FunctionInfo, 0, len(fams))
	for _, f := range fams {
		infos = append(infos, shared.Info(f))
	}
	s.sendJSON(w, map[string]interface{}{
		"count":     len(infos),
		"functions": infos,
	})
}

// GET /functions/{id} - Full family record
func (s *Server) handleFunction(w http.ResponseWriter, r *http.Request) {
	f, err := s.catalog.Get(r.PathValue("id"))
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, f)
}

// GET /functions/{id}/problems/{kind}/samples - Problem graph at the static threshold
func (s *Server) handleProblemSamples(w http.ResponseWriter, r *http.Request) {
	f, err := s.catalog.Get(r.PathValue("id"))
	if err != nil {
		s.sendErr(w, err)
		return
	}

	var pr catalog.Problem
	switch r.PathValue("kind") {
	case "solved":
		pr = f.SolvedProblem
	case "proposed":
		pr = f.ProposedProblem
	default:
		s.sendError(w, "problem kind must be solved or proposed", http.StatusNotFound)
		return
	}

	p, variant := pr.Plot()
	s.sendJSON(w, SampleResponse{
		Function: f.ID,
		Variant:  variant,
		Formula:  catalog.RenderFormula(f, p, variant),
		Points:   sampler.SampleProblem(f, pr, s.thresholds.Static),
	})
}

// POST /sample - Sample a family
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	static, ok := parseView(req.View)
	if !ok {
		s.sendError(w, "view must be interactive or static", http.StatusBadRequest)
		return
	}

	f, p, err := shared.Resolve(s.catalog, req.Function, req.Params, static)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, SampleResponse{
		Function: f.ID,
		Variant:  req.Variant,
		Formula:  catalog.RenderFormula(f, p, req.Variant),
		Points:   sampler.Sample(f, req.Variant, p, s.thresholds.For(static)),
	})
}

// POST /formula - Render the formula for an assignment
func (s *Server) handleFormula(w http.ResponseWriter, r *http.Request) {
	var req SampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	f, p, err := shared.Resolve(s.catalog, req.Function, req.Params, true)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, FormulaResponse{Formula: catalog.RenderFormula(f, p, req.Variant)})
}

// POST /tabulate - Evaluate at explicit x values
func (s *Server) handleTabulate(w http.ResponseWriter, r *http.Request) {
	var req TabulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Xs) == 0 {
		s.sendError(w, "xs cannot be empty", http.StatusBadRequest)
		return
	}

	f, p, err := shared.Resolve(s.catalog, req.Function, req.Params, true)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, SampleResponse{
		Function: f.ID,
		Variant:  req.Variant,
		Formula:  catalog.RenderFormula(f, p, req.Variant),
		Points:   sampler.Tabulate(catalog.ActiveRule(f, req.Variant), p, req.Xs),
	})
}

// GET /charts - List live charts
func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	list := s.board.List()
	s.sendJSON(w, map[string]interface{}{
		"count":  len(list),
		"charts": list,
	})
}

// POST /charts - Open a chart on a family
func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	var req CreateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Function == "" {
		s.sendError(w, "function is required", http.StatusBadRequest)
		return
	}

	c, err := s.board.Create(req.Function)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s.chartResponse(c))
}

// GET /charts/{id} - Chart with its samples
func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.board.Get(r.PathValue("id"))
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, s.chartResponse(c))
}

// DELETE /charts/{id} - Close a chart
func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.board.Delete(r.PathValue("id")); err != nil {
		s.sendErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// POST /charts/{id}/params - Move one slider
func (s *Server) handleSetParam(w http.ResponseWriter, r *http.Request) {
	var req SetParamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Param == "" {
		s.sendError(w, "param is required", http.StatusBadRequest)
		return
	}

	c, err := s.board.SetParam(r.PathValue("id"), req.Param, req.Value)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, s.chartResponse(c))
}

// POST /charts/{id}/variant - Select a variant
func (s *Server) handleSelectVariant(w http.ResponseWriter, r *http.Request) {
	var req SelectVariantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.board.SelectVariant(r.PathValue("id"), req.Variant)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, s.chartResponse(c))
}

// POST /charts/{id}/function - Switch the chart to another family
func (s *Server) handleSelectFunction(w http.ResponseWriter, r *http.Request) {
	var req CreateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	c, err := s.board.SelectFamily(r.PathValue("id"), req.Function)
	if err != nil {
		s.sendErr(w, err)
		return
	}
	s.sendJSON(w, s.chartResponse(c))
}

// GET /health - Health check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, map[string]string{
		"status": "ok",
	})
}

func (s *Server) chartResponse(c charts.Chart) ChartResponse {
	f := s.catalog.MustGet(c.Function)
	return ChartResponse{
		Chart:   c,
		Formula: catalog.RenderFormula(f, c.Params, c.Variant),
		Points:  sampler.Sample(f, c.Variant, c.Params, s.board.Options()),
	}
}

func parseView(view string) (static bool, ok bool) {
	switch view {
	case "", "interactive":
		return false, true
	case "static":
		return true, true
	}
	return false, false
}

func (s *Server) sendJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// sendErr maps domain errors to status codes
func (s *Server) sendErr(w http.ResponseWriter, err error) {
	var (
		chartErr  *charts.ChartNotFoundError
		boundsErr *charts.OutOfBoundsError
		rangeErr  *shared.BoundsError
	)
	switch {
	case catalog.IsNotFound(err), errors.As(err, &chartErr):
		s.sendError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &boundsErr), errors.As(err, &rangeErr):
		s.sendError(w, err.Error(), http.StatusBadRequest)
	default:
		s.sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) sendError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func (s *Server) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
