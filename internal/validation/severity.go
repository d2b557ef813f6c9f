package validation

// Severity classifies how strongly a finding affects the validity
// of the result it is attached to.
type Severity string

const (
	// SeverityCritical marks findings that must be fixed before a scenario
	// can ship (e.g. a statute named with no citation backing it).
	SeverityCritical Severity = "CRITICAL"
	// SeverityMajor marks findings that invalidate the result but stem from
	// generic category references rather than fake-specific ones.
	SeverityMajor Severity = "MAJOR"
	// SeverityMinor marks cosmetic findings that do not affect validity.
	SeverityMinor Severity = "MINOR"
	// SeverityInfo marks advisory findings (e.g. a citation in an accepted
	// but non-preferred form).
	SeverityInfo Severity = "INFO"
)

// Blocking reports whether an issue of this severity invalidates the
// result it is attached to.
func (s Severity) Blocking() bool {
	return s == SeverityCritical || s == SeverityMajor
}

// ParseSeverity converts a string into a Severity, returning false for
// anything outside the fixed set.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityInfo:
		return Severity(s), true
	}
	return "", false
}
