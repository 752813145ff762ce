package emailsafe

import (
	"strings"
	"testing"
)

func TestCompatFlagsModernCSS(t *testing.T) {
	issues := CheckEmailCompatibility(`<div style="display: flex; position: absolute"><span style="display:grid"></span></div>`)

	for _, want := range []string{"display: flex", "display: grid", "position: absolute"} {
		if !containsIssue(issues, want) {
			t.Errorf("missing %q issue in %v", want, issues)
		}
	}
}

func TestCompatAllMatchingRulesReported(t *testing.T) {
	// Independent rules: flex and a div-only layout both fire.
	issues := CheckEmailCompatibility(`<div style="display: flex">x</div>`)
	if !containsIssue(issues, "display: flex") || !containsIssue(issues, "table-based layout") {
		t.Errorf("expected both flex and table-layout issues, got %v", issues)
	}
}

func TestCompatDivWithTableNotFlagged(t *testing.T) {
	issues := CheckEmailCompatibility(`<table><tr><td><div>x</div></td></tr></table>`)
	if containsIssue(issues, "table-based layout") {
		t.Errorf("table present, should not recommend table layout: %v", issues)
	}
}

func TestCompatOneIssuePerImageWithoutAlt(t *testing.T) {
	issues := CheckEmailCompatibility(`<img src="a.png"><img src="b.png" alt="b"><img src="c.png">`)

	count := 0
	for _, issue := range issues {
		if strings.Contains(issue, "alt attribute") {
			count++
		}
	}
	if count != 2 {
		t.Errorf("expected 2 alt issues, got %d: %v", count, issues)
	}
}

func TestCompatCleanTableLayout(t *testing.T) {
	issues := CheckEmailCompatibility(`<table><tr><td><img src="a.png" alt="a"></td></tr></table>`)
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}
