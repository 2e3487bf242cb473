package catalog

import (
	"encoding/json"
	"math"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Assignment maps parameter ids to their current values.
//
// Assignments created by Family.NewAssignment are total over the family's
// declared parameters and only accept those ids. Assignments built with
// AssignmentOf are ad-hoc (problem graphs) and may be partial.
// An assignment is owned by one chart; use Clone before handing it to another.
type Assignment struct {
	values   map[string]float64
	declared []string
}

// AssignmentOf builds an ad-hoc assignment from a plain map
func AssignmentOf(values map[string]float64) Assignment {
	return Assignment{values: maps.Clone(values)}
}

// Value returns the value for id, NaN when the id has no value
func (a Assignment) Value(id string) float64 {
	v, ok := a.values[id]
	if !ok {
		return math.NaN()
	}
	return v
}

// Lookup returns the value for id and whether it is set
func (a Assignment) Lookup(id string) (float64, bool) {
	v, ok := a.values[id]
	return v, ok
}

// Set updates one value in place
func (a *Assignment) Set(id string, v float64) error {
	if a.declared != nil && !slices.Contains(a.declared, id) {
		return &NotFoundError{Kind: KindParameter, ID: id}
	}
	if a.values == nil {
		a.values = make(map[string]float64)
	}
	a.values[id] = v
	return nil
}

// Len returns how many parameters have a value
func (a Assignment) Len() int {
	return len(a.values)
}

// IDs returns the ids with a value, declared ones first in display order
func (a Assignment) IDs() []string {
	ids := make([]string, 0, len(a.values))
	for _, id := range a.declared {
		if _, ok := a.values[id]; ok {
			ids = append(ids, id)
		}
	}
	var extra []string
	for id := range a.values {
		if !slices.Contains(a.declared, id) {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	return append(ids, extra...)
}

// Clone returns an independent copy
func (a Assignment) Clone() Assignment {
	return Assignment{values: maps.Clone(a.values), declared: slices.Clone(a.declared)}
}

// Map returns a copy of the values
func (a Assignment) Map() map[string]float64 {
	m := maps.Clone(a.values)
	if m == nil {
		m = map[string]float64{}
	}
	return m
}

func (a Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Map())
}
