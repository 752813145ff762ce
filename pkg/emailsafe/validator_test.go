package emailsafe

import (
	"strings"
	"testing"
)

func containsIssue(issues []string, substr string) bool {
	for _, issue := range issues {
		if strings.Contains(issue, substr) {
			return true
		}
	}
	return false
}

func TestValidateEmptyInput(t *testing.T) {
	res := ValidateAndSanitize("")

	if res.IsValid {
		t.Error("empty input must not be valid")
	}
	if !containsIssue(res.Issues, "empty or invalid HTML") {
		t.Errorf("missing empty-input issue, got %v", res.Issues)
	}
	if !containsIssue(res.Fixes, "HTML auto-generated") {
		t.Errorf("missing auto-generated fix, got %v", res.Fixes)
	}
	if !strings.Contains(res.SanitizedHTML, "Content Unavailable") {
		t.Error("fallback message card missing from sanitized HTML")
	}
}

func TestValidateWhitespaceOnlyInput(t *testing.T) {
	res := ValidateAndSanitize("   \n\t  ")
	if res.IsValid {
		t.Error("whitespace-only input must not be valid")
	}
	if !strings.Contains(res.SanitizedHTML, "Content Unavailable") {
		t.Error("expected fallback document")
	}
}

func TestValidateRecordsScriptRemoval(t *testing.T) {
	res := ValidateAndSanitize("<script>alert(1)</script><p>Hi</p>")

	if strings.Contains(res.SanitizedHTML, "<script") {
		t.Error("script tag survived validation")
	}
	if !strings.Contains(res.SanitizedHTML, "<p>Hi</p>") {
		t.Error("benign content lost")
	}
	if !containsIssue(res.Issues, "scripts removed") {
		t.Errorf("missing scripts-removed issue, got %v", res.Issues)
	}
	if !containsIssue(res.Fixes, "scripts removed for security") {
		t.Errorf("missing scripts-removed fix, got %v", res.Fixes)
	}
}

func TestValidateRecordsEventHandlerRemoval(t *testing.T) {
	res := ValidateAndSanitize("<div onclick='x()'>Click</div>")

	if !strings.Contains(res.SanitizedHTML, "<div>Click</div>") {
		t.Errorf("expected event attribute gone, div intact: %q", res.SanitizedHTML)
	}
	if !containsIssue(res.Issues, "event handlers removed") {
		t.Errorf("missing event-handler issue, got %v", res.Issues)
	}
}

func TestValidateWrapsIncompleteStructure(t *testing.T) {
	res := ValidateAndSanitize("<p>Just a fragment</p>")

	if !containsIssue(res.Issues, "incomplete HTML structure") {
		t.Errorf("missing structure issue, got %v", res.Issues)
	}
	if !containsIssue(res.Fixes, "email structure added") {
		t.Errorf("missing structure fix, got %v", res.Fixes)
	}
	if !strings.Contains(res.SanitizedHTML, "<p>Just a fragment</p>") {
		t.Error("original content not inserted verbatim")
	}
	if !IsStructurallyComplete(res.SanitizedHTML) {
		t.Error("wrapped document is not structurally complete")
	}
}

func TestValidateCompleteDocumentPassesThrough(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>T</title></head>
<body><table role="presentation"><tr><td><h1>Hello</h1></td></tr></table></body></html>`

	res := ValidateAndSanitize(doc)
	if res.SanitizedHTML != doc {
		t.Error("complete clean document should pass through unchanged")
	}
	if !res.IsValid {
		t.Errorf("expected valid result, issues: %v", res.Issues)
	}
}

func TestValidateAppendsAnalyzerFindings(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head></head>
<body style="display: flex"><img src="a.png"><img src="b.png"></body></html>`

	res := ValidateAndSanitize(doc)
	if res.IsValid {
		t.Error("analyzer findings must count against validity")
	}
	if !containsIssue(res.Issues, "display: flex") {
		t.Errorf("missing flex issue, got %v", res.Issues)
	}

	missingAlt := 0
	for _, issue := range res.Issues {
		if strings.Contains(issue, "alt attribute") {
			missingAlt++
		}
	}
	if missingAlt != 2 {
		t.Errorf("expected one alt issue per image, got %d (%v)", missingAlt, res.Issues)
	}
}

// Totality and structural invariant over every probe input: a result comes
// back without panicking and always carries a full document skeleton.
func TestValidateTotality(t *testing.T) {
	for _, in := range hostileInputs {
		res := ValidateAndSanitize(in)
		if res.SanitizedHTML == "" {
			t.Errorf("empty sanitized HTML for %q", in)
		}
		if !IsStructurallyComplete(res.SanitizedHTML) {
			t.Errorf("structural invariant broken for %q", in)
		}
		lower := strings.ToLower(res.SanitizedHTML)
		if strings.Contains(lower, "<script") || strings.Contains(lower, "<iframe") || strings.Contains(lower, "javascript:") {
			t.Errorf("safety invariant broken for %q", in)
		}
	}
}
