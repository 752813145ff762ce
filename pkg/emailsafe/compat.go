package emailsafe

import "strings"

// CheckEmailCompatibility flags layout and CSS constructs known to render
// incorrectly in common email clients. Read-only; every matching rule is
// reported, not just the first.
func CheckEmailCompatibility(html string) []string {
	var issues []string

	if displayFlex.MatchString(html) {
		issues = append(issues, "display: flex has partial support in email clients")
	}
	if displayGrid.MatchString(html) {
		issues = append(issues, "display: grid is largely unsupported in email clients")
	}
	if positionAbsolute.MatchString(html) {
		issues = append(issues, "position: absolute is unreliable in email clients")
	}

	lower := strings.ToLower(html)
	if strings.Contains(lower, "<div") && !strings.Contains(lower, "<table") {
		issues = append(issues, "consider table-based layout for better email client compatibility")
	}

	// One issue per offending image, deliberately not deduplicated.
	for _, img := range imgTag.FindAllString(html, -1) {
		if !strings.Contains(strings.ToLower(img), "alt=") {
			issues = append(issues, "image missing alt attribute")
		}
	}

	return issues
}
