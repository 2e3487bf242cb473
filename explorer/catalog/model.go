// Package catalog holds the fixed set of function families the explorer can plot,
// their evaluation rules and their formula renderers.
package catalog

import (
	"golang.org/x/exp/slices"
)

// Category groups families for the "types" view
type Category string

const (
	Algebraic      Category = "algebraic"
	Transcendental Category = "transcendental"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{Algebraic, Transcendental}
}

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	return c == Algebraic || c == Transcendental
}

// ParameterSpec describes one slider of a family
type ParameterSpec struct {
	ID      string  `json:"id"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
	Label   string  `json:"label"`
}

// Contains reports whether v lies within [Min, Max]
func (p ParameterSpec) Contains(v float64) bool {
	return v >= p.Min && v <= p.Max
}

// Variant is an alternative rule that shares the family's parameters
type Variant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Formula string `json:"formula"`
	Rule    Rule   `json:"-"`
}

// Example is the short worked example shown on the learn tab
type Example struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

// Quiz is a single multiple-choice question
type Quiz struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"` // index into Options
}

// IsCorrect reports whether choice is the index of the correct option
func (q Quiz) IsCorrect(choice int) bool {
	return choice == q.CorrectAnswer
}

// SolvedProblem is a fully worked problem with its own graph
type SolvedProblem struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Steps       []string           `json:"steps"`
	GraphParams map[string]float64 `json:"graph_params"`
	VariantID   string             `json:"variant_id,omitempty"`
}

// ProposedProblem is left to the student, with hidden solution steps
type ProposedProblem struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	SolutionSteps []string           `json:"solution_steps"`
	GraphParams   map[string]float64 `json:"graph_params"`
	VariantID     string             `json:"variant_id,omitempty"`
}

// Problem is a practice problem drawn with fixed parameters
type Problem interface {
	Plot() (Assignment, string)
}

// Plot returns the assignment and variant the problem's graph uses
func (s SolvedProblem) Plot() (Assignment, string) {
	return AssignmentOf(s.GraphParams), s.VariantID
}

// Plot returns the assignment and variant the problem's graph uses
func (s ProposedProblem) Plot() (Assignment, string) {
	return AssignmentOf(s.GraphParams), s.VariantID
}

// Family is one parameterised function type, e.g. "quadratic"
type Family struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	Formula     string          `json:"formula"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	HexColor    string          `json:"hex_color"`
	Params      []ParameterSpec `json:"params"` // display order
	Variants    []Variant       `json:"variants,omitempty"`

	Example         Example         `json:"example"`
	Quiz            Quiz            `json:"quiz"`
	SolvedProblem   SolvedProblem   `json:"solved_problem"`
	ProposedProblem ProposedProblem `json:"proposed_problem"`

	Rule    Rule     `json:"-"`
	Display Renderer `json:"-"`
}

// Param returns the spec for the parameter with the given id
func (f *Family) Param(id string) (ParameterSpec, bool) {
	i := slices.IndexFunc(f.Params, func(p ParameterSpec) bool { return p.ID == id })
	if i < 0 {
		return ParameterSpec{}, false
	}
	return f.Params[i], true
}

// Variant returns the variant with the given id
func (f *Family) Variant(id string) (*Variant, bool) {
	i := slices.IndexFunc(f.Variants, func(v Variant) bool { return v.ID == id })
	if i < 0 {
		return nil, false
	}
	return &f.Variants[i], true
}

// HasVariants reports whether the family declares any variant
func (f *Family) HasVariants() bool {
	return len(f.Variants) > 0
}

// DefaultVariant is the variant selected when the family becomes active,
// the first declared one, or "" when the family has none.
func (f *Family) DefaultVariant() string {
	if len(f.Variants) == 0 {
		return ""
	}
	return f.Variants[0].ID
}

// ParamIDs returns the declared parameter ids in display order
func (f *Family) ParamIDs() []string {
	ids := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		ids = append(ids, p.ID)
	}
	return ids
}

// NewAssignment seeds an assignment with every parameter's default value
func (f *Family) NewAssignment() Assignment {
	a := Assignment{values: make(map[string]float64, len(f.Params)), declared: f.ParamIDs()}
	for _, p := range f.Params {
		a.values[p.ID] = p.Default
	}
	return a
}

// CheckBounds returns the ids of the parameters whose value in a lies outside
// the declared [min, max] range. Missing values are ignored.
func (f *Family) CheckBounds(a Assignment) []string {
	var out []string
	for _, p := range f.Params {
		v, ok := a.Lookup(p.ID)
		if ok && !p.Contains(v) {
			out = append(out, p.ID)
		}
	}
	return out
}
