package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/rules"
	"github.com/willowhq/willowcheck/internal/validation"
)

var citationsCmd = &cobra.Command{
	Use:   "citations <file>",
	Short: "Scan a text file for legal citations and vague references",
	Long: `Scan a text file for citation-like spans.

Recognized citations (federal acts, state statutes, CFR entries, public
laws) are reported valid; vague legal references ("fair housing laws",
"tenant rights", bare "Section 504") are flagged with a severity.

Use "-" to read from stdin.`,
	Example: `  willowcheck citations docs/legal_basis.md
  cat draft.txt | willowcheck citations -`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesPath, _ := cmd.Flags().GetString("rules")
		return runCitations(args[0], rulesPath, useColor(cmd), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(citationsCmd)
}

// runCitations scans one document and renders the citation report.
func runCitations(path, rulesPath string, color bool, out io.Writer) error {
	rs, err := rules.Load(rulesPath)
	if err != nil {
		return errs.NewArgumentError(err.Error(), "check the --rules file")
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return errs.NewInputError(err, fmt.Sprintf("reading stdin: %v", err))
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errs.NewInputError(errs.ErrFileNotFound,
					fmt.Sprintf("file not found: %s", path))
			}
			return errs.NewInputError(err, fmt.Sprintf("reading %s: %v", path, err))
		}
	}

	text := string(data)
	results := validation.NewCitationValidator(rs).ValidateText(text)
	validation.NewReporter(color).WriteCitationReport(out, text, results)

	for _, res := range results {
		if !res.Valid {
			return NewExitError(ExitValidationFailed)
		}
	}
	return nil
}
