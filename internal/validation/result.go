package validation

import "fmt"

// Span marks a half-open [Start, End) byte range in the scanned text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Issue is a single validation finding. Issues are created once and never
// mutated afterwards; Message is always non-empty.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
	Span     *Span    `json:"span,omitempty"`
}

// CitationResult is the outcome for one citation-like span or one flagged
// vague phrase found in a scanned text. Valid is derived purely from the
// attached issues: true iff no CRITICAL or MAJOR issue is present.
type CitationResult struct {
	OriginalText      string  `json:"original_text"`
	Valid             bool    `json:"is_valid"`
	MatchedInstrument string  `json:"matched_instrument,omitempty"`
	Span              Span    `json:"span"`
	Issues            []Issue `json:"issues,omitempty"`
}

// AddIssue attaches an issue and recomputes Valid from the issue list.
func (r *CitationResult) AddIssue(iss Issue) {
	if iss.Message == "" {
		panic("validation: issue with empty message")
	}
	r.Issues = append(r.Issues, iss)
	r.Valid = !r.hasBlockingIssue()
}

func (r *CitationResult) hasBlockingIssue() bool {
	for _, iss := range r.Issues {
		if iss.Severity.Blocking() {
			return true
		}
	}
	return false
}

// SubResult is one leg (schema, legal, or trauma) of a scenario report.
type SubResult struct {
	Valid  bool     `json:"is_valid"`
	Errors []string `json:"errors"`
}

// AddError appends a human-readable error and marks the leg invalid.
func (r *SubResult) AddError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Valid = false
}

// ScenarioReport is the holistic validation outcome for one scenario.
// OverallValid is the strict conjunction of the three legs: a schema
// failure always gates the result even though the semantic legs still run
// for diagnostic value.
type ScenarioReport struct {
	ScenarioID   string    `json:"scenario_id"`
	Schema       SubResult `json:"schema_validation"`
	Legal        SubResult `json:"legal_validation"`
	Trauma       SubResult `json:"trauma_validation"`
	OverallValid bool      `json:"overall_valid"`
}

// AllErrors flattens the three legs into a single error list, prefixed by
// leg name so batch summaries stay readable.
func (r *ScenarioReport) AllErrors() []string {
	var errs []string
	for _, leg := range []struct {
		name string
		sub  SubResult
	}{
		{"schema", r.Schema},
		{"legal", r.Legal},
		{"trauma", r.Trauma},
	} {
		for _, e := range leg.sub.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", leg.name, e))
		}
	}
	return errs
}

// BatchSummary aggregates scenario reports across a dataset.
// Valid is true iff ScenariosWithErrors is zero.
type BatchSummary struct {
	Valid               bool                `json:"valid"`
	ScenariosProcessed  int                 `json:"scenarios_processed"`
	ScenariosWithErrors int                 `json:"scenarios_with_errors"`
	TotalErrors         int                 `json:"total_errors"`
	ScenarioErrors      map[string][]string `json:"scenario_errors"`
}
