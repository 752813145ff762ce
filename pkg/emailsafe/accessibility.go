package emailsafe

import "strings"

// CheckAccessibility flags missing semantic or descriptive markup. Read-only.
//
// The contrast rule is a literal co-occurrence heuristic, not computed
// contrast math. It is kept that way on purpose: changing it would change the
// quality score's numeric contract.
func CheckAccessibility(html string) []string {
	var issues []string

	if !headingTag.MatchString(html) {
		issues = append(issues, "no heading elements found")
	}

	lower := strings.ToLower(html)
	if strings.Contains(lower, "color: white") && strings.Contains(lower, "background-color: white") {
		issues = append(issues, "white text on white background is a contrast risk")
	}

	for _, a := range anchorTag.FindAllString(html, -1) {
		al := strings.ToLower(a)
		if !strings.Contains(al, "title=") && !strings.Contains(al, "aria-label=") {
			issues = append(issues, "link missing title or aria-label attribute")
		}
	}

	return issues
}
