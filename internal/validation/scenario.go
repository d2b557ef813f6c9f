package validation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/willowhq/willowcheck/internal/rules"
)

// invalidatingPattern is one compiled entry of the invalidating-language
// blocklist.
type invalidatingPattern struct {
	re     *regexp.Regexp
	phrase string
}

// ScenarioValidator composes the schema check, the legal citation check,
// and a trauma-informed-language check into one holistic report per
// scenario. Safe for concurrent use once constructed.
type ScenarioValidator struct {
	schema       *SchemaValidator
	citations    *CitationValidator
	invalidating []invalidatingPattern
}

// NewScenarioValidator builds a scenario validator from the given ruleset.
// A nil ruleset uses the defaults.
func NewScenarioValidator(rs *rules.Ruleset) *ScenarioValidator {
	if rs == nil {
		rs = rules.Default()
	}
	v := &ScenarioValidator{
		schema:    NewSchemaValidator(),
		citations: NewCitationValidator(rs),
	}
	for _, phrase := range rs.InvalidatingPhrases {
		v.invalidating = append(v.invalidating, invalidatingPattern{
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase)),
			phrase: phrase,
		})
	}
	return v
}

// Validate runs all three legs over the record and aggregates them. The
// semantic legs run even when the schema leg fails, so their findings stay
// available for diagnostics, but OverallValid is the strict AND.
func (v *ScenarioValidator) Validate(record map[string]any) ScenarioReport {
	report := ScenarioReport{
		ScenarioID: stringField(record, "scenario_id"),
		Schema:     SubResult{Valid: true},
		Legal:      SubResult{Valid: true},
		Trauma:     SubResult{Valid: true},
	}

	ok, errs := v.schema.ValidateRecord(record)
	report.Schema.Valid = ok
	report.Schema.Errors = errs

	v.validateLegal(record, &report.Legal)
	v.validateTrauma(record, &report.Trauma)

	report.OverallValid = report.Schema.Valid && report.Legal.Valid && report.Trauma.Valid
	return report
}

// validateLegal requires at least one federal entry in legal_basis and
// scans the legally relevant text fields for invalid or vague citations.
func (v *ScenarioValidator) validateLegal(record map[string]any, sub *SubResult) {
	legalBasis := mapField(record, "legal_basis")
	if len(stringItems(legalBasis, "federal")) == 0 {
		sub.AddError("legal_basis.federal must cite at least one federal law")
	}

	text := strings.Join(legalTexts(record), "\n")
	for _, res := range v.citations.ValidateText(text) {
		if res.Valid {
			continue
		}
		for _, iss := range res.Issues {
			if iss.Severity.Blocking() {
				sub.AddError("%s", iss.Message)
				break
			}
		}
	}
}

// validateTrauma scans the emotional/communication text fields against the
// invalidating-language blocklist.
func (v *ScenarioValidator) validateTrauma(record map[string]any, sub *SubResult) {
	for _, ft := range traumaTexts(record) {
		for _, ip := range v.invalidating {
			if loc := ip.re.FindStringIndex(ft.text); loc != nil {
				sub.AddError("field '%s' contains the phrase %q: rephrase to avoid using potentially invalidating language",
					ft.path, ft.text[loc[0]:loc[1]])
			}
		}
	}
}

// fieldText pairs a record field path with its text content.
type fieldText struct {
	path string
	text string
}

// legalTexts collects the legally relevant text fields of a record.
func legalTexts(record map[string]any) []string {
	var texts []string
	legalBasis := mapField(record, "legal_basis")
	for _, key := range []string{"federal", "state", "local"} {
		texts = append(texts, stringItems(legalBasis, key)...)
	}
	if proof := stringField(mapField(record, "golden_ratio_structure"), "proof_statement"); proof != "" {
		texts = append(texts, proof)
	}
	conflict := mapField(record, "conflict_resolution")
	texts = append(texts, sortedStringValues(mapField(conflict, "response_scripts"))...)
	texts = append(texts, stringItems(conflict, "denial_grounds")...)
	return texts
}

// traumaTexts collects the emotional/communication text fields of a record
// with their paths, in deterministic order.
func traumaTexts(record map[string]any) []fieldText {
	var texts []fieldText

	grs := mapField(record, "golden_ratio_structure")
	for _, key := range sortedKeys(grs) {
		switch val := grs[key].(type) {
		case string:
			texts = append(texts, fieldText{path: "golden_ratio_structure." + key, text: val})
		case []any:
			for i, item := range val {
				if s, ok := item.(string); ok {
					texts = append(texts, fieldText{
						path: "golden_ratio_structure." + key + "[" + strconv.Itoa(i) + "]",
						text: s,
					})
				}
			}
		}
	}

	scripts := mapField(mapField(record, "conflict_resolution"), "response_scripts")
	for _, key := range sortedKeys(scripts) {
		if s, ok := scripts[key].(string); ok {
			texts = append(texts, fieldText{path: "conflict_resolution.response_scripts." + key, text: s})
		}
	}

	care := mapField(record, "trauma_informed_care")
	for _, key := range sortedKeys(care) {
		switch val := care[key].(type) {
		case string:
			texts = append(texts, fieldText{path: "trauma_informed_care." + key, text: val})
		case []any:
			for i, item := range val {
				if s, ok := item.(string); ok {
					texts = append(texts, fieldText{
						path: "trauma_informed_care." + key + "[" + strconv.Itoa(i) + "]",
						text: s,
					})
				}
			}
		}
	}

	if messages, ok := record["messages"].([]any); ok {
		for i, item := range messages {
			if m, ok := item.(map[string]any); ok {
				if s, ok := m["content"].(string); ok {
					texts = append(texts, fieldText{path: "messages[" + strconv.Itoa(i) + "].content", text: s})
				}
			}
		}
	}

	return texts
}

func stringField(record map[string]any, name string) string {
	s, _ := record[name].(string)
	return s
}

func mapField(record map[string]any, name string) map[string]any {
	if record == nil {
		return nil
	}
	m, _ := record[name].(map[string]any)
	return m
}

func stringItems(record map[string]any, name string) []string {
	if record == nil {
		return nil
	}
	items, _ := record[name].([]any)
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sortedStringValues(m map[string]any) []string {
	var out []string
	for _, key := range sortedKeys(m) {
		if s, ok := m[key].(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
