// Package testutil provides shared fixtures and filesystem helpers for
// willowcheck tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// WriteJSONFile marshals content as JSON and writes it to dir/name,
// returning the full path. Fails the test on any error.
func WriteJSONFile(t *testing.T, dir, name string, content any) string {
	t.Helper()
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteFile writes raw bytes to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ValidScenario returns a scenario record that passes schema, legal, and
// trauma-informed validation. Each call builds fresh maps, so callers may
// mutate the result freely.
func ValidScenario(id string) map[string]any {
	return map[string]any{
		"scenario_id":     id,
		"title":           "Ramp installation request",
		"description":     "Tenant with a mobility impairment requests a ramp at the main entrance.",
		"vulnerabilities": []any{"mobility_impairment", "elderly"},
		"urgency_level":   "Medium",
		"metadata": map[string]any{
			"created_at":        "2025-06-01T10:00:00Z",
			"last_updated":      "2025-06-02T09:30:00Z",
			"validation_status": "validated",
		},
		"vulnerability_context": map[string]any{
			"primary":        "mobility_impairment",
			"intersectional": []any{"elderly"},
			"trauma_history": "Prior eviction after an accessibility dispute.",
		},
		"legal_basis": map[string]any{
			"federal": []any{
				"Fair Housing Act, 42 U.S.C. § 3601 et seq.",
				"Americans with Disabilities Act, 42 U.S.C. § 12101",
			},
			"state": []any{"Cal. Gov. Code § 12900 et seq."},
			"local": []any{},
		},
		"golden_ratio_structure": map[string]any{
			"emotional_validation":     "We hear how important independent access to your home is.",
			"concrete_action":          "A contractor will install a ramp at the main entrance within 7 business days.",
			"accountability_mechanism": "The property manager will confirm completion in writing.",
			"proof_statement":          "24 C.F.R. § 100.204 requires reasonable accommodations for accessible routes.",
			"realistic_boundary":       "If the structure cannot support a permanent ramp, a temporary ramp goes in within 48 hours while alternatives are reviewed.",
			"closing_statement":        "Your safe access to the building is our responsibility.",
			"closure_variants": []any{
				"Thank you for letting us know about this barrier.",
			},
		},
		"conflict_resolution": map[string]any{
			"response_scripts": map[string]any{
				"professional": "The Fair Housing Act, 42 U.S.C. § 3601, requires us to provide reasonable accommodations.",
				"empathetic":   "I hear your concern, and we will work through this together.",
			},
			"denial_grounds": []any{"Undue financial and administrative burden"},
			"appeal_process": "Submit a written request for review within 10 business days.",
		},
		"tags":    []any{"mobility", "accessibility"},
		"version": "1.0.0",
	}
}
