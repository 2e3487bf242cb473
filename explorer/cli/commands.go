package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/config"
	"funcexplorer.com/explorer/sampler"
	"funcexplorer.com/explorer/shared"
)

// thresholds builds the per call site options from the loaded config
func thresholds() shared.Thresholds {
	return shared.Thresholds{
		Interactive: sampler.Options{Clamp: config.InteractiveClamp},
		Static:      sampler.Options{Clamp: config.StaticClamp},
	}
}

// parseParams converts --param k=v pairs into numeric overrides
func parseParams(raw map[string]string) (map[string]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(raw))
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		v, err := strconv.ParseFloat(raw[k], 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %q is not a number", k, raw[k])
		}
		out[k] = v
	}
	return out, nil
}

// SampleResult is the output of the sample command
type SampleResult struct {
	Function string          `json:"function"`
	Variant  string          `json:"variant,omitempty"`
	View     string          `json:"view"`
	Formula  string          `json:"formula"`
	Points   []sampler.Point `json:"points"`
}

// sampleOptions carries the flags of the sample command
type sampleOptions struct {
	function string
	variant  string
	params   map[string]float64
	static   bool
	remote   string // RPC address; empty samples in process
}

func runSample(opts sampleOptions) (*SampleResult, error) {
	result := &SampleResult{Function: opts.function, Variant: opts.variant, View: "interactive"}
	if opts.static {
		result.View = "static"
	}

	if opts.remote != "" {
		client, err := shared.Dial(opts.remote)
		if err != nil {
			return nil, err
		}
		defer client.Close()

		points, formula, err := client.Sample(shared.SampleArgs{
			Function: opts.function,
			Variant:  opts.variant,
			Params:   opts.params,
			Static:   opts.static,
		})
		if err != nil {
			return nil, err
		}
		result.Points, result.Formula = points, formula
		return result, nil
	}

	f, p, err := shared.Resolve(catalog.Default(), opts.function, opts.params, opts.static)
	if err != nil {
		return nil, err
	}
	result.Points = sampler.Sample(f, opts.variant, p, thresholds().For(opts.static))
	result.Formula = catalog.RenderFormula(f, p, opts.variant)
	return result, nil
}

// listCmd lists the catalog
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List function families",
	Long: `List the function families of the catalog in display order.

Example:
  explorer list
  explorer list --category transcendental`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		fams := catalog.Default().All()
		if category != "" {
			cat := catalog.Category(category)
			if !cat.Valid() {
				return fmt.Errorf("unknown category %q (want one of %v)", category, catalog.Categories())
			}
			fams = catalog.Default().ListByCategory(cat)
		}

		if !outputText {
			infos := make([]shared.FunctionInfo, 0, len(fams))
			for _, f := range fams {
				infos = append(infos, shared.Info(f))
			}
			outputResult(map[string]interface{}{
				"count":     len(infos),
				"functions": infos,
			})
			return nil
		}
		for _, f := range fams {
			fmt.Fprintf(stdout, "%-14s %-16s %-15s %s\n", f.ID, f.Name, f.Category, f.Formula)
		}
		return nil
	},
}

// showCmd prints one family with its learning material
var showCmd = &cobra.Command{
	Use:   "show [function]",
	Short: "Show a function family",
	Long: `Show a family with its parameters, variants, example, quiz and problems.

Example:
  explorer show exponential`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := catalog.Default().Get(args[0])
		if err != nil {
			return err
		}

		if !outputText {
			outputResult(f)
			return nil
		}
		fmt.Fprintf(stdout, "%s (%s)\n  %s\n  %s\n\n", f.Name, f.Category, f.Formula, f.Description)
		fmt.Fprintln(stdout, "Parameters:")
		for _, p := range f.Params {
			fmt.Fprintf(stdout, "  %-3s %-32s [%g, %g] step %g default %g\n", p.ID, p.Label, p.Min, p.Max, p.Step, p.Default)
		}
		if f.HasVariants() {
			fmt.Fprintln(stdout, "Variants:")
			for _, v := range f.Variants {
				fmt.Fprintf(stdout, "  %-5s %-12s %s\n", v.ID, v.Name, v.Formula)
			}
		}
		fmt.Fprintf(stdout, "\nExample: %s\n  %s\n", f.Example.Problem, f.Example.Solution)
		fmt.Fprintf(stdout, "\nQuiz: %s\n", f.Quiz.Question)
		for i, o := range f.Quiz.Options {
			mark := " "
			if f.Quiz.IsCorrect(i) {
				mark = "*"
			}
			fmt.Fprintf(stdout, "  %s %d) %s\n", mark, i+1, o)
		}
		fmt.Fprintf(stdout, "\nSolved: %s\n  %s\n", f.SolvedProblem.Title, f.SolvedProblem.Description)
		for i, s := range f.SolvedProblem.Steps {
			fmt.Fprintf(stdout, "  %d. %s\n", i+1, s)
		}
		fmt.Fprintf(stdout, "\nProposed: %s\n  %s\n", f.ProposedProblem.Title, f.ProposedProblem.Description)
		return nil
	},
}

// sampleCmd samples a family over the plotted domain
var sampleCmd = &cobra.Command{
	Use:   "sample [function]",
	Short: "Sample a family over [-10, 10]",
	Long: `Sample a family at 101 points from -10 to 10 every 0.2.

Points outside the domain or beyond the clamp are gaps (null in JSON).
Use --static for the problem graph threshold, which also accepts parameter
values outside the slider ranges.

Example:
  explorer sample linear --param m=2 --param b=-1
  explorer sample trigonometric --variant tan --text
  explorer sample radical --param a=4.42 --static
  explorer sample cubic --remote localhost:3410`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		rawParams, _ := cmd.Flags().GetStringToString("param")
		static, _ := cmd.Flags().GetBool("static")
		remote, _ := cmd.Flags().GetString("remote")

		params, err := parseParams(rawParams)
		if err != nil {
			return err
		}
		result, err := runSample(sampleOptions{
			function: args[0],
			variant:  variant,
			params:   params,
			static:   static,
			remote:   remote,
		})
		if err != nil {
			return err
		}

		if !outputText {
			outputResult(result)
			return nil
		}
		fmt.Fprintln(stdout, result.Formula)
		for _, p := range result.Points {
			if p.Gap() {
				fmt.Fprintf(stdout, "%6.1f\t-\n", p.X)
				continue
			}
			fmt.Fprintf(stdout, "%6.1f\t%g\n", p.X, *p.Y)
		}
		return nil
	},
}

// formulaCmd renders a formula
var formulaCmd = &cobra.Command{
	Use:   "formula [function]",
	Short: "Render the formula of a family",
	Long: `Render a family's formula with the given parameter values substituted.

Example:
  explorer formula quadratic --param a=1 --param b=-4 --param c=3
  explorer formula trigonometric --variant sec --param A=2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		rawParams, _ := cmd.Flags().GetStringToString("param")

		params, err := parseParams(rawParams)
		if err != nil {
			return err
		}
		f, p, err := shared.Resolve(catalog.Default(), args[0], params, true)
		if err != nil {
			return err
		}
		formula := catalog.RenderFormula(f, p, variant)

		if !outputText {
			outputResult(map[string]interface{}{
				"function": f.ID,
				"variant":  variant,
				"params":   p,
				"formula":  formula,
			})
			return nil
		}
		fmt.Fprintln(stdout, formula)
		return nil
	},
}

func init() {
	listCmd.Flags().String("category", "", "Only list this category (algebraic, transcendental)")

	sampleCmd.Flags().String("variant", "", "Variant id (e.g. cos); unknown ids use the family rule")
	sampleCmd.Flags().StringToString("param", nil, "Parameter override as id=value (repeatable)")
	sampleCmd.Flags().Bool("static", false, "Use the problem graph threshold")
	sampleCmd.Flags().String("remote", "", "Sample through the RPC service at this address")

	formulaCmd.Flags().String("variant", "", "Variant id")
	formulaCmd.Flags().StringToString("param", nil, "Parameter override as id=value (repeatable)")

	rootCmd.AddCommand(
		listCmd,
		showCmd,
		sampleCmd,
		formulaCmd,
	)
}
