// Package cli provides the command-line interface for the function explorer
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"funcexplorer.com/explorer/config"
)

// Version is stamped at build time
var Version = "dev"

var (
	outputText bool      // --text flag for human-readable output (default is JSON)
	stdout     io.Writer = os.Stdout
	stderr     io.Writer = os.Stderr
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "explorer",
	Short: "Function families, their graphs and formulas",
	Long: `Explorer - parameterised function families for the classroom

Sample any family over [-10, 10], render its formula, and serve live charts.

Quick Start:
  explorer list --category algebraic        # Families of one category
  explorer show radical                     # Family with its problems
  explorer sample quadratic --param a=2     # 101 points, gaps as null
  explorer formula trigonometric --variant cos --param A=2
  explorer serve                            # HTTP API and RPC service
  explorer export                           # Snapshot every graph to sqlite`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Skip config logging for help commands
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return
		}
		config.Load()
	},
}

// Execute runs the CLI
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		outputError(err)
	}
	return err
}

func init() {
	config.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVar(&outputText, "text", false, "Human-readable text output (default is JSON)")

	rootCmd.AddCommand(versionCmd)
}

// outputResult outputs the result in the appropriate format
func outputResult(result interface{}) {
	if outputText {
		fmt.Fprintf(stdout, "%+v\n", result)
		return
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.Encode(result)
}

// outputError outputs an error in the appropriate format
func outputError(err error) {
	if outputText {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return
	}
	result := map[string]interface{}{
		"status": "error",
		"error":  err.Error(),
	}
	json.NewEncoder(stderr).Encode(result)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(stdout, "explorer version %s\n", Version)
	},
}
