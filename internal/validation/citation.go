package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/willowhq/willowcheck/internal/rules"
)

// vaguePattern is one compiled vague-phrase rule.
type vaguePattern struct {
	re       *regexp.Regexp
	phrase   string
	severity Severity
	code     string
}

// CitationValidator scans arbitrary text for citation-like spans and vague
// legal references. All patterns are compiled at construction; the
// validator is read-only afterwards and safe for concurrent use.
type CitationValidator struct {
	catalog *Catalog
	vague   []vaguePattern
}

// maxResolveGap bounds how far a vague phrase and a valid citation may sit
// apart and still be treated as one reference (e.g. "Section 504: 29
// U.S.C. § 794" or "29 U.S.C. § 794 (Section 504)").
const maxResolveGap = 48

// NewCitationValidator builds a validator over the default catalog using
// the given ruleset's vague-phrase list. A nil ruleset uses the defaults.
// A rule carrying a severity outside the fixed set bypassed rules.Load and
// is a programming error, so it panics.
func NewCitationValidator(rs *rules.Ruleset) *CitationValidator {
	if rs == nil {
		rs = rules.Default()
	}
	v := &CitationValidator{catalog: DefaultCatalog()}
	for _, rule := range rs.VaguePhrases {
		sev, ok := ParseSeverity(rule.Severity)
		if !ok {
			panic(fmt.Sprintf("validation: invalid severity %q for phrase %q", rule.Severity, rule.Phrase))
		}
		v.vague = append(v.vague, vaguePattern{
			re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(rule.Phrase) + `\b`),
			phrase:   rule.Phrase,
			severity: sev,
			code:     rule.Code,
		})
	}
	return v
}

// ValidateText scans text left to right and returns one result per
// detected citation-like span or flagged vague phrase, ordered by position
// in the source. Text with no citation-like content yields an empty slice.
// The scan never fails for any string input.
func (v *CitationValidator) ValidateText(text string) []CitationResult {
	var results []CitationResult
	var claimed []Span

	// Pass 1: catalog matches. Preferred forms run first per instrument so
	// the looser form cannot claim a span the strict form already
	// recognized.
	for i := range v.catalog.patterns {
		p := &v.catalog.patterns[i]
		for _, form := range p.forms {
			for _, loc := range form.re.FindAllStringIndex(text, -1) {
				span := Span{Start: loc[0], End: loc[1]}
				if overlapsAny(span, claimed) {
					continue
				}
				res := CitationResult{
					OriginalText:      text[span.Start:span.End],
					Valid:             true,
					MatchedInstrument: p.Instrument,
					Span:              span,
				}
				if !form.preferred {
					s := span
					res.AddIssue(Issue{
						Severity: SeverityInfo,
						Code:     "non-preferred-form",
						Message:  fmt.Sprintf("citation %q uses a non-preferred form; prefer %q", res.OriginalText, p.Canonical),
						Span:     &s,
					})
				}
				results = append(results, res)
				claimed = append(claimed, span)
			}
		}
	}

	// Pass 2: vague phrases. A phrase whose span overlaps a valid citation
	// span, or sits next to one on the same line, is already backed by a
	// real citation and is not flagged.
	for _, vp := range v.vague {
		for _, loc := range vp.re.FindAllStringIndex(text, -1) {
			span := Span{Start: loc[0], End: loc[1]}
			if resolvedByCitation(text, span, claimed) {
				continue
			}
			res := CitationResult{
				OriginalText: text[span.Start:span.End],
				Valid:        true,
				Span:         span,
			}
			s := span
			res.AddIssue(Issue{
				Severity: vp.severity,
				Code:     vp.code,
				Message:  fmt.Sprintf("vague legal reference %q: cite the specific statute or regulation", res.OriginalText),
				Span:     &s,
			})
			results = append(results, res)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Span.Start < results[j].Span.Start
	})
	return results
}

func overlapsAny(span Span, claimed []Span) bool {
	for _, c := range claimed {
		if span.Overlaps(c) {
			return true
		}
	}
	return false
}

// resolvedByCitation reports whether a vague-phrase span is already served
// by a valid citation: the spans overlap, or a valid citation sits on the
// same line within maxResolveGap bytes (a label like "Section 504: 29
// U.S.C. § 794", or a parenthetical "(Section 504)" after the citation).
// Overlapping and adjacent spans are classified conservatively in favor of
// the valid citation.
func resolvedByCitation(text string, span Span, claimed []Span) bool {
	for _, c := range claimed {
		if span.Overlaps(c) {
			return true
		}
		var from, to int
		switch {
		case c.Start >= span.End:
			from, to = span.End, c.Start
		case span.Start >= c.End:
			from, to = c.End, span.Start
		default:
			continue
		}
		if to-from <= maxResolveGap && !strings.Contains(text[from:to], "\n") {
			return true
		}
	}
	return false
}
