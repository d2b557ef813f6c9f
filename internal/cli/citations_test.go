package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/testutil"
)

func TestRunCitationsCleanDocument(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "legal.md",
		[]byte("Covered by the Fair Housing Act, 42 U.S.C. § 3601 et seq."))

	var out bytes.Buffer
	err := runCitations(path, "", false, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "✓ Fair Housing Act")
	assert.Contains(t, out.String(), "valid citations: 1")
}

func TestRunCitationsFlagsVagueReferences(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "draft.md",
		[]byte("Tenants are protected under fair housing laws."))

	var out bytes.Buffer
	err := runCitations(path, "", false, &out)

	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, out.String(), "vague-fair-housing")
}

func TestRunCitationsMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := runCitations(filepath.Join(t.TempDir(), "absent.md"), "", false, &out)

	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrFileNotFound))
	assert.Equal(t, ExitInputError, ExitCode(err))
}

func TestRunCitationsCustomRules(t *testing.T) {
	dir := t.TempDir()
	rulesPath := testutil.WriteFile(t, dir, "rules.json", []byte(`{
  "vague_phrases": [
    {"phrase": "applicable law", "severity": "MAJOR", "code": "vague-applicable-law"}
  ]
}`))
	path := testutil.WriteFile(t, dir, "draft.md",
		[]byte("Remedies are available under applicable law."))

	var out bytes.Buffer
	err := runCitations(path, rulesPath, false, &out)

	require.Error(t, err)
	assert.Contains(t, out.String(), "vague-applicable-law")
}
