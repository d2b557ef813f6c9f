package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/testutil"
	"github.com/willowhq/willowcheck/internal/validation"
)

func TestRunValidateCleanDataset(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteJSONFile(t, dir, "dataset.json", []any{
		testutil.ValidScenario("scenario_001"),
		testutil.ValidScenario("scenario_002"),
	})
	output := filepath.Join(dir, "report.json")

	var out bytes.Buffer
	err := runValidate(input, output, "", 1, false, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Processed 2 scenarios")
	assert.Contains(t, out.String(), "all scenarios valid")
	assert.Contains(t, out.String(), "report written to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	var summary validation.BatchSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.True(t, summary.Valid)
	assert.Equal(t, 2, summary.ScenariosProcessed)
}

func TestRunValidateReportsFindings(t *testing.T) {
	broken := testutil.ValidScenario("scenario_002")
	delete(broken, "title")

	dir := t.TempDir()
	input := testutil.WriteJSONFile(t, dir, "dataset.json", []any{
		testutil.ValidScenario("scenario_001"),
		broken,
	})
	output := filepath.Join(dir, "report.json")

	var out bytes.Buffer
	err := runValidate(input, output, "", 1, false, &out)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))

	// The report is still written when findings are present.
	data, readErr := os.ReadFile(output)
	require.NoError(t, readErr)
	var summary validation.BatchSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.False(t, summary.Valid)
	assert.Equal(t, 1, summary.ScenariosWithErrors)
	assert.Contains(t, out.String(), "scenario scenario_002:")
}

func TestRunValidateMissingInput(t *testing.T) {
	dir := t.TempDir()

	var out bytes.Buffer
	err := runValidate(filepath.Join(dir, "absent.json"), filepath.Join(dir, "report.json"), "", 1, false, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFileNotFound))
	assert.Equal(t, ExitInputError, ExitCode(err))
}

func TestRunValidateMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteFile(t, dir, "broken.json", []byte(`[{]`))

	var out bytes.Buffer
	err := runValidate(input, filepath.Join(dir, "report.json"), "", 1, false, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrMalformedJSON))
	assert.Equal(t, ExitInputError, ExitCode(err))
}

func TestRunValidateBadRulesFile(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteJSONFile(t, dir, "dataset.json", []any{testutil.ValidScenario("scenario_001")})

	var out bytes.Buffer
	err := runValidate(input, filepath.Join(dir, "report.json"), filepath.Join(dir, "absent-rules.json"), 1, false, &out)

	require.Error(t, err)
	assert.Equal(t, ExitInvalidArguments, ExitCode(err))
}

func TestRunValidateCreatesReportDirectory(t *testing.T) {
	dir := t.TempDir()
	input := testutil.WriteJSONFile(t, dir, "dataset.json", []any{testutil.ValidScenario("scenario_001")})
	output := filepath.Join(dir, "reports", "nested", "report.json")

	var out bytes.Buffer
	require.NoError(t, runValidate(input, output, "", 1, false, &out))

	_, err := os.Stat(output)
	assert.NoError(t, err)
}

func TestRunValidateParallelWorkers(t *testing.T) {
	var records []any
	for i := 0; i < 10; i++ {
		records = append(records, testutil.ValidScenario("scenario_001"))
	}
	dir := t.TempDir()
	input := testutil.WriteJSONFile(t, dir, "dataset.json", records)

	var out bytes.Buffer
	err := runValidate(input, filepath.Join(dir, "report.json"), "", 4, false, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Processed 10 scenarios")
}
