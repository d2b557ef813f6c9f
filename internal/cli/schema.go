package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/scenario"
	"github.com/willowhq/willowcheck/internal/validation"
)

var schemaStrictFlag bool

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Check one scenario record against the dataset schema",
	Long: `Check a single scenario record's structural shape: required fields,
nested required sub-fields, field types, and timestamp formats.

With --strict the record is additionally decoded into the typed scenario
model, rejecting unknown fields.`,
	Example: `  willowcheck schema data/scenario_001.json
  willowcheck schema --strict data/scenario_001.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchema(args[0], schemaStrictFlag, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaStrictFlag, "strict", false, "Also decode into the typed scenario model, rejecting unknown fields")
}

// runSchema validates one record file against the scenario schema.
func runSchema(path string, strict bool, out io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errs.NewInputError(errs.ErrFileNotFound, fmt.Sprintf("file not found: %s", path))
		}
		return errs.NewInputError(err, fmt.Sprintf("reading %s: %v", path, err))
	}

	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		return errs.NewParseError(errs.ErrMalformedJSON, fmt.Sprintf("%s is not a JSON object: %v", path, err))
	}

	ok, fieldErrs := validation.NewSchemaValidator().ValidateRecord(record)
	for _, e := range fieldErrs {
		fmt.Fprintf(out, "✗ %s\n", e)
	}

	if strict {
		if _, err := scenario.Decode(data); err != nil {
			fmt.Fprintf(out, "✗ strict decode: %v\n", err)
			ok = false
		}
	}

	if !ok {
		return NewExitError(ExitValidationFailed)
	}
	fmt.Fprintf(out, "✓ %s matches the scenario schema\n", path)
	return nil
}
