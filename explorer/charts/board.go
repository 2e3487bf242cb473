// Package charts keeps the live charts of the explorer. Each chart owns its
// parameter assignment; the board hands out copies only.
package charts

import (
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

// Chart is one interactive graph: a family, the selected variant and the
// current slider values.
type Chart struct {
	ID        string             `json:"id"`
	Function  string             `json:"function"`
	Variant   string             `json:"variant,omitempty"`
	Params    catalog.Assignment `json:"params"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// OutOfBoundsError is returned when a slider value falls outside its range
type OutOfBoundsError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("parameter %q = %v outside [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// Board keeps track of charts by id
type Board struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	charts  map[string]*Chart // key is chart id
	opts    sampler.Options
	now     func() time.Time
}

// NewBoard creates an empty board. opts is applied on every resample.
func NewBoard(c *catalog.Catalog, opts sampler.Options) *Board {
	return &Board{
		catalog: c,
		charts:  make(map[string]*Chart),
		opts:    opts,
		now:     time.Now,
	}
}

// Create opens a chart on a family, seeded with the parameter defaults and
// the family's default variant.
func (b *Board) Create(functionID string) (Chart, error) {
	f, err := b.catalog.Get(functionID)
	if err != nil {
		return Chart{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	c := &Chart{
		ID:        uuid.New().String(),
		Function:  f.ID,
		Variant:   f.DefaultVariant(),
		Params:    f.NewAssignment(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.charts[c.ID] = c

	log.Printf("Chart %s created on %s", c.ID, f.ID)
	return c.snapshot(), nil
}

// Get returns a copy of the chart
func (b *Board) Get(id string) (Chart, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	c, ok := b.charts[id]
	if !ok {
		return Chart{}, chartNotFound(id)
	}
	return c.snapshot(), nil
}

// List returns copies of every chart, oldest first
func (b *Board) List() []Chart {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]Chart, 0, len(b.charts))
	for _, c := range b.charts {
		out = append(out, c.snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// SetParam moves one slider of the chart. The value must lie within the
// parameter's declared range.
func (b *Board) SetParam(id, param string, value float64) (Chart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.charts[id]
	if !ok {
		return Chart{}, chartNotFound(id)
	}
	f := b.catalog.MustGet(c.Function)
	spec, ok := f.Param(param)
	if !ok {
		return Chart{}, &catalog.NotFoundError{Kind: catalog.KindParameter, ID: param, Family: f.ID}
	}
	if !spec.Contains(value) {
		return Chart{}, &OutOfBoundsError{Param: param, Value: value, Min: spec.Min, Max: spec.Max}
	}
	if err := c.Params.Set(param, value); err != nil {
		return Chart{}, err
	}
	c.UpdatedAt = b.now()
	return c.snapshot(), nil
}

// SelectVariant switches the chart to another variant of its family. Unknown
// variant ids are stored as given; sampling then uses the family's own rule.
func (b *Board) SelectVariant(id, variantID string) (Chart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.charts[id]
	if !ok {
		return Chart{}, chartNotFound(id)
	}
	c.Variant = variantID
	c.UpdatedAt = b.now()

	log.Printf("Chart %s switched to variant %q", c.ID, variantID)
	return c.snapshot(), nil
}

// SelectFamily moves the chart to another family. The previous assignment is
// discarded and a fresh one is seeded from the new family's defaults.
func (b *Board) SelectFamily(id, functionID string) (Chart, error) {
	f, err := b.catalog.Get(functionID)
	if err != nil {
		return Chart{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.charts[id]
	if !ok {
		return Chart{}, chartNotFound(id)
	}
	c.Function = f.ID
	c.Variant = f.DefaultVariant()
	c.Params = f.NewAssignment()
	c.UpdatedAt = b.now()

	log.Printf("Chart %s moved to %s", c.ID, f.ID)
	return c.snapshot(), nil
}

// Samples resamples the chart in full
func (b *Board) Samples(id string) ([]sampler.Point, error) {
	c, err := b.Get(id)
	if err != nil {
		return nil, err
	}
	f := b.catalog.MustGet(c.Function)
	return sampler.Sample(f, c.Variant, c.Params, b.opts), nil
}

// Formula renders the chart's current formula
func (b *Board) Formula(id string) (string, error) {
	c, err := b.Get(id)
	if err != nil {
		return "", err
	}
	f := b.catalog.MustGet(c.Function)
	return catalog.RenderFormula(f, c.Params, c.Variant), nil
}

// Delete drops the chart and its assignment
func (b *Board) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.charts[id]; !ok {
		return chartNotFound(id)
	}
	delete(b.charts, id)

	log.Printf("Chart %s deleted", id)
	return nil
}

// Len returns how many charts are open
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.charts)
}

func (c *Chart) snapshot() Chart {
	out := *c
	out.Params = c.Params.Clone()
	return out
}

func chartNotFound(id string) error {
	return &ChartNotFoundError{ID: id}
}

// ChartNotFoundError is returned for ids the board does not hold
type ChartNotFoundError struct {
	ID string
}

func (e *ChartNotFoundError) Error() string {
	return fmt.Sprintf("chart %q not found", e.ID)
}

// Options returns the sampling options applied to every chart
func (b *Board) Options() sampler.Options {
	return b.opts
}
