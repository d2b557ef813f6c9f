package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/rules"
	"github.com/willowhq/willowcheck/internal/validation"
)

var (
	validateInputFlag   string
	validateOutputFlag  string
	validateWorkersFlag int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a scenario dataset file",
	Long: `Validate every scenario record in a JSON dataset file.

Each record gets a three-leg check: structural schema, legal citation
quality, and trauma-informed language. The aggregate summary is written
as JSON to the output path.

Exit Codes:
  0 - All records valid
  1 - Validation findings reported
  2 - Input file missing or not valid JSON
  3 - Invalid arguments`,
	Example: `  willowcheck validate --input data/scenarios.json --output reports/validation.json

  # Fan record validation out across 8 workers for large datasets
  willowcheck validate -i data/scenarios.json -o report.json --workers 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesPath, _ := cmd.Flags().GetString("rules")
		return runValidate(validateInputFlag, validateOutputFlag, rulesPath,
			validateWorkersFlag, useColor(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVarP(&validateInputFlag, "input", "i", "", "Input JSON dataset file")
	validateCmd.Flags().StringVarP(&validateOutputFlag, "output", "o", "", "Output JSON report file")
	validateCmd.Flags().IntVar(&validateWorkersFlag, "workers", 1, "Number of records validated concurrently")
	validateCmd.MarkFlagRequired("input")
	validateCmd.MarkFlagRequired("output")
}

// runValidate validates the input dataset and writes the summary report.
func runValidate(input, output, rulesPath string, workers int, color bool, out io.Writer) error {
	rs, err := rules.Load(rulesPath)
	if err != nil {
		return errs.NewArgumentError(err.Error(), "check the --rules file")
	}

	batch := validation.NewBatchValidator(rs, validation.WithWorkers(workers))

	var spin *spinner.Spinner
	if color {
		spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		spin.Writer = os.Stderr
		spin.Suffix = " validating " + input
		spin.Start()
	}
	summary, err := batch.ValidateFile(input)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if err := writeSummaryReport(output, summary); err != nil {
		return err
	}

	validation.NewReporter(color).WriteBatchSummary(out, summary)
	fmt.Fprintf(out, "report written to %s\n", output)

	if !summary.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// writeSummaryReport writes the batch summary as indented JSON, creating
// parent directories as needed.
func writeSummaryReport(path string, summary validation.BatchSummary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errs.NewInputError(err, fmt.Sprintf("creating report directory %s: %v", dir, err))
		}
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return errs.NewRuntimeError(fmt.Sprintf("encoding report: %v", err))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.NewInputError(err, fmt.Sprintf("writing report %s: %v", path, err))
	}
	return nil
}
