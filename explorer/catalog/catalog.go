package catalog

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Catalog is an immutable, ordered set of families
type Catalog struct {
	families []*Family
	byID     map[string]*Family
}

var defaultCatalog = MustNew(families())

// Default returns the process-wide reference catalog
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog, checking that ids are unique and every parameter
// spec is well formed.
func New(defs []Family) (*Catalog, error) {
	c := &Catalog{
		families: make([]*Family, 0, len(defs)),
		byID:     make(map[string]*Family, len(defs)),
	}
	for i := range defs {
		f := &defs[i]
		if err := validate(f); err != nil {
			return nil, err
		}
		if _, dup := c.byID[f.ID]; dup {
			return nil, fmt.Errorf("duplicate function id %q", f.ID)
		}
		c.families = append(c.families, f)
		c.byID[f.ID] = f
	}
	return c, nil
}

// MustNew is New for compiled-in data
func MustNew(defs []Family) *Catalog {
	c, err := New(defs)
	if err != nil {
		panic(err)
	}
	return c
}

func validate(f *Family) error {
	if f.ID == "" {
		return fmt.Errorf("function without id")
	}
	if !f.Category.Valid() {
		return fmt.Errorf("function %q: unknown category %q", f.ID, f.Category)
	}
	if f.Rule == nil || f.Display == nil {
		return fmt.Errorf("function %q: missing rule or renderer", f.ID)
	}
	seen := map[string]bool{}
	for _, p := range f.Params {
		if seen[p.ID] {
			return fmt.Errorf("function %q: duplicate parameter %q", f.ID, p.ID)
		}
		seen[p.ID] = true
		if p.Step <= 0 {
			return fmt.Errorf("function %q: parameter %q has step %v", f.ID, p.ID, p.Step)
		}
		if !p.Contains(p.Default) {
			return fmt.Errorf("function %q: default %v of %q outside [%v, %v]", f.ID, p.Default, p.ID, p.Min, p.Max)
		}
	}
	variants := map[string]bool{}
	for _, v := range f.Variants {
		if variants[v.ID] {
			return fmt.Errorf("function %q: duplicate variant %q", f.ID, v.ID)
		}
		variants[v.ID] = true
		if v.Rule == nil {
			return fmt.Errorf("function %q: variant %q has no rule", f.ID, v.ID)
		}
	}
	return nil
}

// All returns every family in declaration order
func (c *Catalog) All() []*Family {
	return slices.Clone(c.families)
}

// ListByCategory returns the families of one category in declaration order
func (c *Catalog) ListByCategory(cat Category) []*Family {
	var out []*Family
	for _, f := range c.families {
		if f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}

// Get looks a family up by id
func (c *Catalog) Get(id string) (*Family, error) {
	f, ok := c.byID[id]
	if !ok {
		return nil, &NotFoundError{Kind: KindFamily, ID: id}
	}
	return f, nil
}

// MustGet is Get for ids known at build time; it panics on a miss
func (c *Catalog) MustGet(id string) *Family {
	f, err := c.Get(id)
	if err != nil {
		panic(err)
	}
	return f
}

// ActiveRule picks the rule to plot. An unknown variantID falls back to the
// family's own rule without error; callers rely on that.
func ActiveRule(f *Family, variantID string) Rule {
	if variantID != "" {
		if v, ok := f.Variant(variantID); ok {
			return v.Rule
		}
	}
	return f.Rule
}

// RenderFormula substitutes p into the family's formula, or into the generic
// variant formula when variantID names one of the family's variants.
func RenderFormula(f *Family, p Assignment, variantID string) string {
	if variantID != "" {
		if v, ok := f.Variant(variantID); ok {
			return renderVariant(v, p)
		}
	}
	return f.Display(p)
}

// Assign seeds an assignment from the defaults and applies overrides.
// Overrides naming an undeclared parameter are rejected.
func (f *Family) Assign(overrides map[string]float64) (Assignment, error) {
	a := f.NewAssignment()
	for _, id := range sortedKeys(overrides) {
		if err := a.Set(id, overrides[id]); err != nil {
			if nf, ok := err.(*NotFoundError); ok {
				nf.Family = f.ID
			}
			return Assignment{}, err
		}
	}
	return a, nil
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
