package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willowhq/willowcheck/internal/rules"
)

func TestValidateTextRecognizedCitations(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		instrument    string
		wantPreferred bool
	}{
		{"fha bluebook", "See Fair Housing Act, 42 U.S.C. § 3601 et seq.", InstrumentFairHousingAct, true},
		{"fha loose", "See 42 USC 3601 for details.", InstrumentFairHousingAct, false},
		{"ada bluebook", "Under 42 U.S.C. § 12101 the landlord must act.", InstrumentADA, true},
		{"section 504 bluebook", "Covered by 29 U.S.C. § 794 in assisted housing.", InstrumentSection504, true},
		{"vawa bluebook", "Protections under 34 U.S.C. § 12491 apply.", InstrumentVAWA, true},
		{"title vi bluebook", "Funding conditions per 42 U.S.C. § 2000d et seq.", InstrumentTitleVI, true},
		{"feha bluebook", "State coverage under Cal. Gov. Code § 12900 et seq.", InstrumentCaliforniaFEHA, true},
		{"feha loose", "See California Government Code Section 12900.", InstrumentCaliforniaFEHA, false},
		{"unruh bluebook", "Public accommodations per Cal. Civ. Code § 51.", InstrumentCaliforniaUnruh, true},
		{"ny shrl bluebook", "In New York, N.Y. Exec. Law § 290 controls.", InstrumentNewYorkSHRL, true},
		{"illinois hra", "Illinois coverage under 775 ILCS 5/1-101 et seq.", InstrumentIllinoisHRA, true},
		{"texas fha bluebook", "Texas coverage per Tex. Prop. Code § 301.001.", InstrumentTexasFHA, true},
		{"cfr section", "HUD rules at 24 C.F.R. § 100.204 implement the Act.", InstrumentCFR, true},
		{"cfr part loose", "See 24 CFR Part 100 for the full rule.", InstrumentCFR, false},
		{"public law bluebook", "Amended by Pub. L. No. 116-260.", InstrumentPublicLaw, true},
		{"public law loose", "Amended by Public Law 116-260.", InstrumentPublicLaw, false},
	}

	v := NewCitationValidator(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := v.ValidateText(tt.text)
			require.Len(t, results, 1)
			res := results[0]
			assert.True(t, res.Valid)
			assert.Equal(t, tt.instrument, res.MatchedInstrument)
			assert.Contains(t, tt.text, res.OriginalText)
			if tt.wantPreferred {
				assert.Empty(t, res.Issues)
			} else {
				require.Len(t, res.Issues, 1)
				assert.Equal(t, SeverityInfo, res.Issues[0].Severity)
				assert.Equal(t, "non-preferred-form", res.Issues[0].Code)
			}
		})
	}
}

func TestValidateTextVaguePhrases(t *testing.T) {
	v := NewCitationValidator(nil)
	for _, rule := range rules.Default().VaguePhrases {
		t.Run(rule.Code, func(t *testing.T) {
			text := fmt.Sprintf("Tenants are protected under %s in this jurisdiction.", rule.Phrase)
			results := v.ValidateText(text)
			require.Len(t, results, 1)
			res := results[0]
			assert.False(t, res.Valid)
			assert.Empty(t, res.MatchedInstrument)
			require.Len(t, res.Issues, 1)
			assert.Equal(t, Severity(rule.Severity), res.Issues[0].Severity)
			assert.Equal(t, rule.Code, res.Issues[0].Code)
			assert.Contains(t, res.Issues[0].Message, rule.Phrase)
		})
	}
}

func TestValidateTextVaguePhraseResolvedByCitation(t *testing.T) {
	v := NewCitationValidator(nil)

	tests := []struct {
		name string
		text string
	}{
		{"label before citation", "Section 504: 29 U.S.C. § 794 applies to this program."},
		{"parenthetical after citation", "The tenant is protected by 29 U.S.C. § 794 (Section 504)."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := v.ValidateText(tt.text)
			require.Len(t, results, 1)
			assert.True(t, results[0].Valid)
			assert.Equal(t, InstrumentSection504, results[0].MatchedInstrument)
		})
	}

	// A citation on a different line does not resolve the phrase.
	results := v.ValidateText("See 42 U.S.C. § 3601.\nTenants should also research tenant rights.")
	require.Len(t, results, 2)
	assert.True(t, results[0].Valid)
	assert.False(t, results[1].Valid)
	assert.Equal(t, "tenant rights", results[1].OriginalText)
}

func TestValidateTextMultiCitationDocument(t *testing.T) {
	doc := `Legal review notes:
1. Fair Housing Act, 42 U.S.C. § 3601 et seq. prohibits discrimination.
2. Americans with Disabilities Act, 42 U.S.C. § 12101 et seq. covers common areas.
3. Section 504: 29 U.S.C. § 794 covers federally assisted housing.
4. California FEHA: Cal. Gov. Code § 12900 et seq. extends coverage.
5. HUD regulations at 24 C.F.R. § 100.204 implement the Act.
6. Amended most recently by Pub. L. No. 116-260.
7. The notice also gestures at fair housing laws without any citation.
8. It tells tenants to research tenant rights on their own.
`

	v := NewCitationValidator(nil)
	results := v.ValidateText(doc)
	require.GreaterOrEqual(t, len(results), 8)

	matched := make(map[string]bool)
	var invalid int
	for _, res := range results {
		if res.Valid {
			matched[res.MatchedInstrument] = true
		} else {
			invalid++
		}
	}
	for _, instrument := range []string{
		InstrumentFairHousingAct,
		InstrumentADA,
		InstrumentSection504,
		InstrumentCaliforniaFEHA,
		InstrumentCFR,
		InstrumentPublicLaw,
	} {
		assert.True(t, matched[instrument], "expected a valid match for %s", instrument)
	}
	assert.Equal(t, 2, invalid)

	// Results come back ordered by position in the source.
	for i := 1; i < len(results); i++ {
		assert.LessOrEqual(t, results[i-1].Span.Start, results[i].Span.Start)
	}
}

func TestValidateTextIdempotent(t *testing.T) {
	v := NewCitationValidator(nil)
	text := "Covered by 42 U.S.C. § 3601 et seq. and, vaguely, by state housing laws.\nAlso tenant rights."

	first := v.ValidateText(text)
	second := v.ValidateText(text)
	assert.Equal(t, first, second)
}

func TestValidateTextNoCitationContent(t *testing.T) {
	v := NewCitationValidator(nil)
	assert.Empty(t, v.ValidateText(""))
	assert.Empty(t, v.ValidateText("The elevator has been out of service for two weeks."))
}

func TestValidateTextPreferredFormClaimsSpanFirst(t *testing.T) {
	v := NewCitationValidator(nil)
	results := v.ValidateText("Fair Housing Act, 42 U.S.C. § 3601 et seq.")
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Empty(t, results[0].Issues, "preferred form must not carry a normalization issue")
}

func TestNewCitationValidatorRejectsUnknownSeverity(t *testing.T) {
	rs := &rules.Ruleset{
		VaguePhrases: []rules.PhraseRule{{Phrase: "housing law", Severity: "SEVERE", Code: "bad"}},
	}
	assert.Panics(t, func() { NewCitationValidator(rs) })
}
