// Package cli provides the Cobra-based commands for the willowcheck
// dataset validation tool: batch dataset validation (validate), citation
// scanning over free text (citations), and per-record schema checks
// (schema).
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	errs "github.com/willowhq/willowcheck/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "willowcheck",
	Short: "housing scenario dataset validation",
	Long: `willowcheck dataset validation

Validates housing-conflict scenario records: structural schema, legal
citation quality (recognized statutes vs. vague references), and
trauma-informed language.`,
	Example: `  # Validate a dataset and write the aggregate report
  willowcheck validate --input data/scenarios.json --output reports/validation.json

  # Scan a document for legal citations
  willowcheck citations docs/legal_basis.md

  # Check a single record against the scenario schema
  willowcheck schema data/scenario_001.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if !errors.As(err, &ee) {
		// exitError carries a code for output already printed by the
		// command; everything else still needs rendering.
		var cliErr *errs.CLIError
		if errors.As(err, &cliErr) {
			fmt.Fprint(os.Stderr, cliErr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return ExitCode(err)
}

func init() {
	rootCmd.PersistentFlags().String("rules", "", "Path to a rules file (.json or .yaml) overriding the built-in phrase lists")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// useColor reports whether command output should be colored.
func useColor(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	return !noColor && term.IsTerminal(int(os.Stdout.Fd()))
}
