package shared

import (
	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

// ListArgs are passed to the List method
type ListArgs struct {
	Category string // empty lists every family
}

// ListReply is returned from a List method call
type ListReply struct {
	Functions []FunctionInfo
}

// FunctionInfo is the summary of a family shown in menus
type FunctionInfo struct {
	ID       string                  `json:"id"`
	Name     string                  `json:"name"`
	Category string                  `json:"category"`
	Formula  string                  `json:"formula"`
	HexColor string                  `json:"hex_color"`
	Params   []catalog.ParameterSpec `json:"params"`
	Variants []string                `json:"variants,omitempty"`
}

// SampleArgs are passed to the Sample method
type SampleArgs struct {
	Function string
	Variant  string
	Params   map[string]float64 // overrides on top of the defaults
	Static   bool               // use the problem graph threshold
}

// SampleReply is returned from a Sample method call
type SampleReply struct {
	Points  []WirePoint
	Formula string
}

// WirePoint is a sample as sent over gob. Gob does not transmit a pointer
// to a zero value, so a *float64 of 0 would arrive as a gap.
type WirePoint struct {
	X       float64
	Y       float64
	Defined bool
}

// ToWire converts sampler points for transmission
func ToWire(points []sampler.Point) []WirePoint {
	out := make([]WirePoint, len(points))
	for i, p := range points {
		out[i].X = p.X
		if p.Y != nil {
			out[i].Y = *p.Y
			out[i].Defined = true
		}
	}
	return out
}

// FromWire converts received points back, restoring gaps
func FromWire(points []WirePoint) []sampler.Point {
	out := make([]sampler.Point, len(points))
	for i, p := range points {
		out[i].X = p.X
		if p.Defined {
			y := p.Y
			out[i].Y = &y
		}
	}
	return out
}

// FormulaArgs are passed to the Formula method
type FormulaArgs struct {
	Function string
	Variant  string
	Params   map[string]float64
}

// FormulaReply is returned from a Formula method call
type FormulaReply struct {
	Formula string
}

// Info summarises a family
func Info(f *catalog.Family) FunctionInfo {
	info := FunctionInfo{
		ID:       f.ID,
		Name:     f.Name,
		Category: string(f.Category),
		Formula:  f.Formula,
		HexColor: f.HexColor,
		Params:   f.Params,
	}
	for _, v := range f.Variants {
		info.Variants = append(info.Variants, v.ID)
	}
	return info
}
