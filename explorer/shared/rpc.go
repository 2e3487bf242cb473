package shared

import (
	"fmt"
	"log"
	"net/rpc"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/sampler"
)

// Thresholds carries the clamp of each call site
type Thresholds struct {
	Interactive sampler.Options
	Static      sampler.Options
}

// For returns the options of the live chart or of the problem graphs
func (t Thresholds) For(static bool) sampler.Options {
	if static {
		return t.Static
	}
	return t.Interactive
}

// Resolve finds the family and builds its assignment from the defaults plus
// overrides. Interactive requests must keep every value within its slider
// range; static ones (problem graphs) may not.
func Resolve(c *catalog.Catalog, function string, params map[string]float64, static bool) (*catalog.Family, catalog.Assignment, error) {
	f, err := c.Get(function)
	if err != nil {
		return nil, catalog.Assignment{}, err
	}
	p, err := f.Assign(params)
	if err != nil {
		return nil, catalog.Assignment{}, err
	}
	if !static {
		if out := f.CheckBounds(p); len(out) > 0 {
			return nil, catalog.Assignment{}, &BoundsError{Function: f.ID, Params: out}
		}
	}
	return f, p, nil
}

// BoundsError lists parameters outside their slider range
type BoundsError struct {
	Function string
	Params   []string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("function %q: parameters %v outside their range", e.Function, e.Params)
}

// ExplorerRPC serves the catalog and the sampler over net/rpc
type ExplorerRPC struct {
	catalog    *catalog.Catalog
	thresholds Thresholds
}

// NewExplorerRPC creates a new ExplorerRPC instance
func NewExplorerRPC(c *catalog.Catalog, t Thresholds) *ExplorerRPC {
	return &ExplorerRPC{
		catalog:    c,
		thresholds: t,
	}
}

// List handles catalog listing requests
func (e *ExplorerRPC) List(args *ListArgs, reply *ListReply) error {
	fams := e.catalog.All()
	if args.Category != "" {
		cat := catalog.Category(args.Category)
		if !cat.Valid() {
			return fmt.Errorf("unknown category %q", args.Category)
		}
		fams = e.catalog.ListByCategory(cat)
	}
	reply.Functions = make([]FunctionInfo, 0, len(fams))
	for _, f := range fams {
		reply.Functions = append(reply.Functions, Info(f))
	}
	return nil
}

// Sample handles sampling requests
func (e *ExplorerRPC) Sample(args *SampleArgs, reply *SampleReply) error {
	f, p, err := Resolve(e.catalog, args.Function, args.Params, args.Static)
	if err != nil {
		return err
	}
	reply.Points = ToWire(sampler.Sample(f, args.Variant, p, e.thresholds.For(args.Static)))
	reply.Formula = catalog.RenderFormula(f, p, args.Variant)

	log.Printf("Sampled %s variant %q over %d points", f.ID, args.Variant, len(reply.Points))
	return nil
}

// Formula handles formula rendering requests
func (e *ExplorerRPC) Formula(args *FormulaArgs, reply *FormulaReply) error {
	f, p, err := Resolve(e.catalog, args.Function, args.Params, true)
	if err != nil {
		return err
	}
	reply.Formula = catalog.RenderFormula(f, p, args.Variant)
	return nil
}

// Client calls an ExplorerRPC service
type Client struct {
	rpc *rpc.Client
}

// NewClient wraps an established rpc client
func NewClient(c *rpc.Client) *Client {
	return &Client{rpc: c}
}

// Dial connects to an ExplorerRPC server over tcp
func Dial(addr string) (*Client, error) {
	c, err := rpc.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("unable to dial explorer at %s: %w", addr, err)
	}
	return NewClient(c), nil
}

func (c *Client) List(category string) ([]FunctionInfo, error) {
	var reply ListReply
	if err := c.rpc.Call("ExplorerRPC.List", &ListArgs{Category: category}, &reply); err != nil {
		return nil, fmt.Errorf("unable to call ExplorerRPC.List: %w", err)
	}
	return reply.Functions, nil
}

// Sample returns the points with gaps restored, and the rendered formula
func (c *Client) Sample(args SampleArgs) ([]sampler.Point, string, error) {
	var reply SampleReply
	if err := c.rpc.Call("ExplorerRPC.Sample", &args, &reply); err != nil {
		return nil, "", fmt.Errorf("unable to call ExplorerRPC.Sample: %w", err)
	}
	return FromWire(reply.Points), reply.Formula, nil
}

func (c *Client) Formula(args FormulaArgs) (string, error) {
	var reply FormulaReply
	if err := c.rpc.Call("ExplorerRPC.Formula", &args, &reply); err != nil {
		return "", fmt.Errorf("unable to call ExplorerRPC.Formula: %w", err)
	}
	return reply.Formula, nil
}

func (c *Client) Close() error {
	return c.rpc.Close()
}
