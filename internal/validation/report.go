package validation

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// contextRadius is how many bytes of surrounding text a flagged span is
// shown with.
const contextRadius = 30

// Reporter renders validation results as human-readable text. It is a pure
// formatting layer over the result types and carries no validation logic.
type Reporter struct {
	useColor bool
}

// NewReporter creates a reporter. Color output is the caller's choice
// (typically tied to whether stdout is a terminal).
func NewReporter(useColor bool) *Reporter {
	return &Reporter{useColor: useColor}
}

func (r *Reporter) paint(c *color.Color, s string) string {
	if !r.useColor {
		return s
	}
	return c.Sprint(s)
}

func (r *Reporter) severityLabel(sev Severity) string {
	switch sev {
	case SeverityCritical:
		return r.paint(color.New(color.FgRed, color.Bold), string(sev))
	case SeverityMajor:
		return r.paint(color.New(color.FgYellow), string(sev))
	case SeverityMinor:
		return r.paint(color.New(color.FgCyan), string(sev))
	default:
		return r.paint(color.New(color.Faint), string(sev))
	}
}

// WriteCitationReport renders the results of scanning one text: severity
// counts followed by each finding with its span and surrounding context.
func (r *Reporter) WriteCitationReport(w io.Writer, text string, results []CitationResult) {
	fmt.Fprintf(w, "Scanned %d bytes, %d citation-like spans\n", len(text), len(results))

	counts := make(map[Severity]int)
	valid := 0
	for _, res := range results {
		if res.Valid {
			valid++
		}
		for _, iss := range res.Issues {
			counts[iss.Severity]++
		}
	}
	fmt.Fprintf(w, "  valid citations: %d\n", valid)
	for _, sev := range []Severity{SeverityCritical, SeverityMajor, SeverityMinor, SeverityInfo} {
		if counts[sev] > 0 {
			fmt.Fprintf(w, "  %s issues: %d\n", sev, counts[sev])
		}
	}
	fmt.Fprintln(w)

	for _, res := range results {
		if res.Valid {
			fmt.Fprintf(w, "%s %s [%d:%d] %q\n",
				r.paint(color.New(color.FgGreen), "✓"),
				res.MatchedInstrument, res.Span.Start, res.Span.End, res.OriginalText)
			continue
		}
		for _, iss := range res.Issues {
			fmt.Fprintf(w, "%s %s %s [%d:%d] %s\n",
				r.paint(color.New(color.FgRed), "✗"),
				r.severityLabel(iss.Severity), iss.Code,
				res.Span.Start, res.Span.End, iss.Message)
			fmt.Fprintf(w, "    …%s…\n", spanContext(text, res.Span))
		}
	}
}

// WriteScenarioReport renders one scenario's three-leg report.
func (r *Reporter) WriteScenarioReport(w io.Writer, report ScenarioReport) {
	status := r.paint(color.New(color.FgGreen), "valid")
	if !report.OverallValid {
		status = r.paint(color.New(color.FgRed), "invalid")
	}
	fmt.Fprintf(w, "scenario %s: %s\n", report.ScenarioID, status)

	for _, leg := range []struct {
		name string
		sub  SubResult
	}{
		{"schema", report.Schema},
		{"legal", report.Legal},
		{"trauma", report.Trauma},
	} {
		mark := r.paint(color.New(color.FgGreen), "✓")
		if !leg.sub.Valid {
			mark = r.paint(color.New(color.FgRed), "✗")
		}
		fmt.Fprintf(w, "  %s %s\n", mark, leg.name)
		for _, e := range leg.sub.Errors {
			fmt.Fprintf(w, "      %s\n", e)
		}
	}
}

// WriteBatchSummary renders the aggregate outcome of a dataset run.
func (r *Reporter) WriteBatchSummary(w io.Writer, summary BatchSummary) {
	fmt.Fprintf(w, "Processed %d scenarios\n", summary.ScenariosProcessed)
	fmt.Fprintf(w, "  with errors:  %d\n", summary.ScenariosWithErrors)
	fmt.Fprintf(w, "  total errors: %d\n", summary.TotalErrors)

	ids := make([]string, 0, len(summary.ScenarioErrors))
	for id := range summary.ScenarioErrors {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintf(w, "\nscenario %s:\n", id)
		for _, e := range summary.ScenarioErrors[id] {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}

	fmt.Fprintln(w)
	if summary.Valid {
		fmt.Fprintf(w, "%s all scenarios valid\n", r.paint(color.New(color.FgGreen), "✓"))
	} else {
		fmt.Fprintf(w, "%s validation failed\n", r.paint(color.New(color.FgRed), "✗"))
	}
}

// spanContext returns the flagged span with up to contextRadius bytes of
// surrounding text on each side, newlines collapsed.
func spanContext(text string, span Span) string {
	start := span.Start - contextRadius
	if start < 0 {
		start = 0
	}
	end := span.End + contextRadius
	if end > len(text) {
		end = len(text)
	}
	// Keep the slice on rune boundaries.
	for start < span.Start && !utf8.RuneStart(text[start]) {
		start++
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	snippet := text[start:end]
	snippet = strings.Join(strings.Fields(snippet), " ")
	return snippet
}
