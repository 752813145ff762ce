package emailsafe

import (
	"strings"
	"testing"
)

func TestScoreBounds(t *testing.T) {
	for _, in := range hostileInputs {
		qs := CalculateQualityScore(in)
		if qs.Score < 0 || qs.Score > 100 {
			t.Errorf("score out of bounds for %q: %d", in, qs.Score)
		}
		sum := qs.Breakdown.Structure + qs.Breakdown.Compatibility +
			qs.Breakdown.Accessibility + qs.Breakdown.Content
		want := sum
		if want > 100 {
			want = 100
		}
		if qs.Score != want {
			t.Errorf("score %d does not equal capped breakdown sum %d for %q", qs.Score, want, in)
		}
		for name, v := range map[string]int{
			"structure":     qs.Breakdown.Structure,
			"compatibility": qs.Breakdown.Compatibility,
			"accessibility": qs.Breakdown.Accessibility,
			"content":       qs.Breakdown.Content,
		} {
			if v < 0 || v > 25 {
				t.Errorf("%s out of bounds for %q: %d", name, in, v)
			}
		}
	}
}

func TestScoreEmptyInput(t *testing.T) {
	qs := CalculateQualityScore("")
	if qs.Breakdown.Structure != 0 || qs.Breakdown.Accessibility != 0 || qs.Breakdown.Content != 0 {
		t.Errorf("empty input should earn no structure/accessibility/content points: %+v", qs)
	}
}

func TestScoreBareDocumentGetsPartialStructureCredit(t *testing.T) {
	// No doctype, no meta tags: the completeness and meta points are withheld.
	in := "<html><head></head><body><h1>T</h1><img src='a.png'></body></html>"

	qs := CalculateQualityScore(in)
	if qs.Breakdown.Structure != 0 {
		t.Errorf("expected no structure points without doctype and metas, got %d", qs.Breakdown.Structure)
	}
	if qs.Breakdown.Accessibility != 10 {
		t.Errorf("expected heading-only accessibility credit, got %d", qs.Breakdown.Accessibility)
	}

	// Once the wrapper repairs the skeleton, structure credit is full and the
	// missing alt attribute is still reported.
	res := ValidateAndSanitize(in)
	wrapped := CalculateQualityScore(res.SanitizedHTML)
	if wrapped.Breakdown.Structure != 25 {
		t.Errorf("expected full structure credit after wrapping, got %d", wrapped.Breakdown.Structure)
	}
	if !containsIssue(res.Issues, "alt attribute") {
		t.Errorf("expected missing-alt issue, got %v", res.Issues)
	}
}

func TestScoreRewardsEmailFriendlyMarkup(t *testing.T) {
	doc := `<!DOCTYPE html>
<html><head><meta charset="utf-8"><meta name="viewport" content="width=device-width"><title>Offer</title></head>
<body>
<table role="presentation"><tr><td style="padding: 16px;">
<h1>A summer update</h1>
<p>` + strings.Repeat("Plenty of readable text here. ", 10) + `</p>
<img src="hero.png" alt="Summer scene">
<a href="https://example.com" title="Read more" class="button">Read more</a>
</td></tr></table>
</body></html>`

	qs := CalculateQualityScore(doc)
	if qs.Breakdown.Structure != 25 {
		t.Errorf("structure = %d, want 25", qs.Breakdown.Structure)
	}
	if qs.Breakdown.Compatibility != 25 {
		t.Errorf("compatibility = %d, want 25", qs.Breakdown.Compatibility)
	}
	if qs.Breakdown.Accessibility != 25 {
		t.Errorf("accessibility = %d, want 25", qs.Breakdown.Accessibility)
	}
	if qs.Breakdown.Content != 25 {
		t.Errorf("content = %d, want 25", qs.Breakdown.Content)
	}
	if qs.Score != 100 {
		t.Errorf("score = %d, want 100", qs.Score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	in := "<div style='display: grid'>content</div>"
	a := CalculateQualityScore(in)
	b := CalculateQualityScore(in)
	if a != b {
		t.Errorf("score not deterministic: %+v vs %+v", a, b)
	}
}
