package rules

// Default returns the built-in ruleset. The defaults mirror the phrase
// lists the housing dataset shipped with; a rules file can extend or
// replace them without code changes.
func Default() *Ruleset {
	return &Ruleset{
		VaguePhrases: []PhraseRule{
			// Phrases that name a specific-sounding statute with no numeric
			// citation backing it.
			{Phrase: "fair housing laws", Severity: "CRITICAL", Code: "vague-fair-housing"},
			{Phrase: "ADA requirements", Severity: "CRITICAL", Code: "vague-ada"},
			{Phrase: "Section 504", Severity: "CRITICAL", Code: "vague-section-504"},
			{Phrase: "VAWA protections", Severity: "CRITICAL", Code: "vague-vawa"},

			// Generic category references.
			{Phrase: "state housing laws", Severity: "MAJOR", Code: "vague-state-law"},
			{Phrase: "tenant rights", Severity: "MAJOR", Code: "vague-tenant-rights"},
			{Phrase: "disability accommodations", Severity: "MAJOR", Code: "vague-disability-accommodation"},
			{Phrase: "housing discrimination laws", Severity: "MAJOR", Code: "vague-discrimination-law"},
		},
		InvalidatingPhrases: []string{
			"you must understand",
			"calm down",
			"you need to",
			"you should know",
			"stop overreacting",
			"you're overreacting",
			"it's not a big deal",
			"just relax",
		},
	}
}
