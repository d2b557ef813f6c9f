package validation

import "regexp"

// citationForm is one recognized textual shape for an instrument. Preferred
// forms match silently; non-preferred forms attach an INFO issue so dataset
// authors can normalize toward Bluebook-style citations.
type citationForm struct {
	re        *regexp.Regexp
	preferred bool
}

// InstrumentPattern maps one named legal instrument to its recognized
// textual forms and a canonical display label.
type InstrumentPattern struct {
	Instrument string
	Canonical  string
	forms      []citationForm
}

// Forms returns the regex sources of the recognized forms, preferred first.
func (p *InstrumentPattern) Forms() []string {
	out := make([]string, len(p.forms))
	for i, f := range p.forms {
		out[i] = f.re.String()
	}
	return out
}

// Catalog is the read-only table of recognized legal instruments. It is
// compiled once at process start and never mutated afterwards.
type Catalog struct {
	patterns []InstrumentPattern
	byKey    map[string]*InstrumentPattern
}

// Instruments returns the instrument names in catalog order.
func (c *Catalog) Instruments() []string {
	out := make([]string, len(c.patterns))
	for i := range c.patterns {
		out[i] = c.patterns[i].Instrument
	}
	return out
}

// Lookup returns the pattern entry for an instrument name.
func (c *Catalog) Lookup(instrument string) (*InstrumentPattern, bool) {
	p, ok := c.byKey[instrument]
	return p, ok
}

// Instrument names used across the engine and its reports.
const (
	InstrumentFairHousingAct  = "Fair Housing Act"
	InstrumentADA             = "Americans with Disabilities Act"
	InstrumentSection504      = "Rehabilitation Act Section 504"
	InstrumentVAWA            = "Violence Against Women Act"
	InstrumentTitleVI         = "Title VI of the Civil Rights Act"
	InstrumentCaliforniaFEHA  = "California FEHA"
	InstrumentCaliforniaUnruh = "California Unruh Act"
	InstrumentNewYorkSHRL     = "New York Human Rights Law"
	InstrumentIllinoisHRA     = "Illinois Human Rights Act"
	InstrumentTexasFHA        = "Texas Fair Housing Act"
	InstrumentCFR             = "Code of Federal Regulations"
	InstrumentPublicLaw       = "Public Law"
)

// uscForms builds the two recognized shapes for a U.S. Code citation:
// the Bluebook form with periods and section sign, and a looser form that
// tolerates "USC", missing periods, and a missing section sign.
func uscForms(title, section string) []citationForm {
	return []citationForm{
		{re: regexp.MustCompile(`(?i)\b` + title + `\s+U\.S\.C\.\s*§\s*` + section + `\b(?:\s+et\s+seq\.?)?`), preferred: true},
		{re: regexp.MustCompile(`(?i)\b` + title + `\s+U\.?\s?S\.?\s?C\.?\s*(?:§\s*)?` + section + `\b(?:\s+et\s+seq\.?)?`)},
	}
}

var defaultCatalog = buildCatalog()

// DefaultCatalog returns the process-wide citation pattern catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

func buildCatalog() *Catalog {
	c := &Catalog{
		patterns: []InstrumentPattern{
			{
				Instrument: InstrumentFairHousingAct,
				Canonical:  "Fair Housing Act, 42 U.S.C. § 3601 et seq.",
				forms:      uscForms("42", "3601"),
			},
			{
				Instrument: InstrumentADA,
				Canonical:  "Americans with Disabilities Act, 42 U.S.C. § 12101 et seq.",
				forms:      uscForms("42", "12101"),
			},
			{
				Instrument: InstrumentSection504,
				Canonical:  "Rehabilitation Act of 1973 § 504, 29 U.S.C. § 794",
				forms:      uscForms("29", "794"),
			},
			{
				Instrument: InstrumentVAWA,
				Canonical:  "Violence Against Women Act, 34 U.S.C. § 12491",
				forms:      uscForms("34", "12491"),
			},
			{
				Instrument: InstrumentTitleVI,
				Canonical:  "Title VI of the Civil Rights Act of 1964, 42 U.S.C. § 2000d et seq.",
				forms:      uscForms("42", "2000d"),
			},
			{
				Instrument: InstrumentCaliforniaFEHA,
				Canonical:  "California Fair Employment and Housing Act, Cal. Gov. Code § 12900 et seq.",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\bCal\.\s*Gov(?:'?t)?\.?\s*Code\s*§\s*12900\b(?:\s+et\s+seq\.?)?`), preferred: true},
					{re: regexp.MustCompile(`(?i)\bCalifornia\s+Government\s+Code\s+(?:Section\s+)?12900\b(?:\s+et\s+seq\.?)?`)},
				},
			},
			{
				Instrument: InstrumentCaliforniaUnruh,
				Canonical:  "Unruh Civil Rights Act, Cal. Civ. Code § 51",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\bCal\.\s*Civ\.\s*Code\s*§\s*51\b(?:\s+et\s+seq\.?)?`), preferred: true},
					{re: regexp.MustCompile(`(?i)\bCalifornia\s+Civil\s+Code\s+(?:Section\s+)?51\b(?:\s+et\s+seq\.?)?`)},
				},
			},
			{
				Instrument: InstrumentNewYorkSHRL,
				Canonical:  "New York State Human Rights Law, N.Y. Exec. Law § 290 et seq.",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\bN\.?Y\.?\s*Exec(?:utive)?\.?\s*Law\s*§\s*290\b(?:\s+et\s+seq\.?)?`), preferred: true},
					{re: regexp.MustCompile(`(?i)\bNew\s+York\s+Executive\s+Law\s+(?:Section\s+)?290\b(?:\s+et\s+seq\.?)?`)},
				},
			},
			{
				Instrument: InstrumentIllinoisHRA,
				Canonical:  "Illinois Human Rights Act, 775 ILCS 5/1-101 et seq.",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\b775\s+ILCS\s+5/1-101\b(?:\s+et\s+seq\.?)?`), preferred: true},
				},
			},
			{
				Instrument: InstrumentTexasFHA,
				Canonical:  "Texas Fair Housing Act, Tex. Prop. Code § 301.001 et seq.",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\bTex\.\s*Prop\.\s*Code\s*§\s*301\.001\b(?:\s+et\s+seq\.?)?`), preferred: true},
					{re: regexp.MustCompile(`(?i)\bTexas\s+Property\s+Code\s+(?:Section\s+)?301\.001\b(?:\s+et\s+seq\.?)?`)},
				},
			},
			{
				Instrument: InstrumentCFR,
				Canonical:  "Code of Federal Regulations",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\b\d{1,2}\s+C\.F\.R\.\s*(?:§\s*)?(?:\d+(?:\.\d+)*|Part\s+\d+(?:,\s*Subpart\s+[A-Z])?)\b(?:\s+et\s+seq\.?)?`), preferred: true},
					{re: regexp.MustCompile(`(?i)\b\d{1,2}\s+CFR\s*(?:§\s*)?(?:\d+(?:\.\d+)*|Part\s+\d+(?:,\s*Subpart\s+[A-Z])?)\b(?:\s+et\s+seq\.?)?`)},
				},
			},
			{
				Instrument: InstrumentPublicLaw,
				Canonical:  "Public Law",
				forms: []citationForm{
					{re: regexp.MustCompile(`(?i)\bPub\.\s*L\.\s*(?:No\.\s*)?\d{2,3}[-–]\d{1,4}\b`), preferred: true},
					{re: regexp.MustCompile(`(?i)\bPublic\s+Law\s+(?:No\.\s*)?\d{2,3}[-–\s]\d{1,4}\b`)},
				},
			},
		},
	}

	c.byKey = make(map[string]*InstrumentPattern, len(c.patterns))
	for i := range c.patterns {
		c.byKey[c.patterns[i].Instrument] = &c.patterns[i]
	}
	return c
}
