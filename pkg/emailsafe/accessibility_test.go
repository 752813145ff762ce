package emailsafe

import (
	"strings"
	"testing"
)

func TestAccessibilityMissingHeading(t *testing.T) {
	issues := CheckAccessibility("<p>no headings here</p>")
	if !containsIssue(issues, "heading") {
		t.Errorf("missing heading issue in %v", issues)
	}

	issues = CheckAccessibility("<h2>Subheading</h2>")
	if containsIssue(issues, "heading") {
		t.Errorf("h2 present, heading issue should not fire: %v", issues)
	}
}

func TestAccessibilityContrastHeuristic(t *testing.T) {
	// Literal co-occurrence check, by design not real contrast math.
	issues := CheckAccessibility(`<h1 style="color: white; background-color: white">x</h1>`)
	if !containsIssue(issues, "contrast") {
		t.Errorf("missing contrast issue in %v", issues)
	}

	issues = CheckAccessibility(`<h1 style="color: white; background-color: navy">x</h1>`)
	if containsIssue(issues, "contrast") {
		t.Errorf("contrast issue should not fire: %v", issues)
	}
}

func TestAccessibilityOneIssuePerBareAnchor(t *testing.T) {
	html := `<h1>T</h1>
<a href="/a">bare</a>
<a href="/b" title="described">ok</a>
<a href="/c" aria-label="described">ok</a>
<a href="/d">bare</a>`

	issues := CheckAccessibility(html)
	count := 0
	for _, issue := range issues {
		if strings.Contains(issue, "title or aria-label") {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 anchor issues, got %d: %v", count, issues)
	}
}
