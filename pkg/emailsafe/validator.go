package emailsafe

import "strings"

// ValidationResult is the outcome of running the full pipeline over one
// document. Issues enumerates every problem found, fatal or not; Fixes
// enumerates every corrective action the pipeline applied itself. IsValid is
// true only when Issues is empty after sanitization and structural repair, so
// compatibility and accessibility warnings count against validity.
type ValidationResult struct {
	IsValid       bool     `json:"is_valid"`
	SanitizedHTML string   `json:"sanitized_html"`
	Issues        []string `json:"issues"`
	Fixes         []string `json:"fixes"`
}

// ValidateAndSanitize is the pipeline entry point. It sanitizes executable
// content, repairs missing document structure by wrapping content in the
// canonical template, and appends compatibility and accessibility findings.
// It never panics: empty input and internal failures both degrade to the
// fallback document.
func ValidateAndSanitize(html string) (result ValidationResult) {
	defer func() {
		if r := recover(); r != nil {
			result = ValidationResult{
				IsValid:       false,
				SanitizedHTML: FallbackDocument(),
				Issues:        []string{"critical validation error"},
			}
			fallbacksServed.Inc("panic")
		}
	}()

	if strings.TrimSpace(html) == "" {
		fallbacksServed.Inc("empty")
		return ValidationResult{
			IsValid:       false,
			SanitizedHTML: FallbackDocument(),
			Issues:        []string{"empty or invalid HTML"},
			Fixes:         []string{"HTML auto-generated"},
		}
	}

	var issues, fixes []string

	if hasDangerousContent(html) {
		issues = append(issues, "dangerous scripts removed")
		fixes = append(fixes, "scripts removed for security")
	}
	if hasEventHandlers(html) {
		issues = append(issues, "inline event handlers removed")
		fixes = append(fixes, "event handlers stripped")
	}
	sanitized := Sanitize(html)

	if !IsStructurallyComplete(sanitized) {
		sanitized = WrapInTemplate(sanitized)
		issues = append(issues, "incomplete HTML structure")
		fixes = append(fixes, "email structure added")
	}

	// Analyzers are read-only: they append findings without touching the HTML.
	compat := CheckEmailCompatibility(sanitized)
	access := CheckAccessibility(sanitized)
	issues = append(issues, compat...)
	issues = append(issues, access...)

	recordValidation(len(issues) == 0, len(compat), len(access))

	return ValidationResult{
		IsValid:       len(issues) == 0,
		SanitizedHTML: sanitized,
		Issues:        issues,
		Fixes:         fixes,
	}
}
