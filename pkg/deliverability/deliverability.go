// Package deliverability estimates how likely an email is to reach the inbox:
// spam-trigger heuristics over the subject line, text-to-HTML ratio, link and
// image counts. Like the validation pipeline, every function is pure and
// total.
package deliverability

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	hrefAttr = regexp.MustCompile(`href=["']([^"']+)["']`)
	imgTag   = regexp.MustCompile(`(?i)<img[^>]*>`)
	anyTag   = regexp.MustCompile(`<[^>]+>`)
)

// subjectTriggers are words that raise spam-filter suspicion when stacked in
// a subject line.
var subjectTriggers = []string{
	"free", "urgent", "act now", "limited time", "click here",
	"buy now", "guaranteed", "offer", "discount", "winner",
}

// Report is the outcome of a deliverability check. Score starts at 100 and
// penalties subtract from it, floored at zero.
type Report struct {
	Score           int      `json:"score"`
	Issues          []string `json:"issues"`
	Warnings        []string `json:"warnings"`
	Recommendations []string `json:"recommendations"`
}

// Check inspects the HTML body and subject for factors known to hurt
// deliverability.
func Check(html, subject string) Report {
	score := 100
	var issues, warnings []string

	subjectLower := strings.ToLower(subject)
	triggers := 0
	for _, trigger := range subjectTriggers {
		if strings.Contains(subjectLower, trigger) {
			triggers++
		}
	}
	if triggers > 2 {
		score -= 20
		warnings = append(warnings, "subject contains several spam-trigger words")
	}

	if len(subject) > 50 {
		score -= 10
		warnings = append(warnings, "subject longer than 50 characters")
	}

	// Text-to-HTML ratio: filters distrust image-only or markup-heavy mail.
	textLen := len(strings.TrimSpace(anyTag.ReplaceAllString(html, "")))
	switch {
	case textLen == 0:
		score -= 30
		issues = append(issues, "email has no text content")
	case textLen < len(html)/10:
		score -= 15
		warnings = append(warnings, "very little text relative to HTML size")
	}

	external := 0
	for _, m := range hrefAttr.FindAllStringSubmatch(html, -1) {
		if strings.HasPrefix(m[1], "http://") || strings.HasPrefix(m[1], "https://") {
			external++
		}
	}
	if external > 10 {
		score -= 10
		warnings = append(warnings, "too many external links")
	}

	images := imgTag.FindAllString(html, -1)
	if len(images) > 5 {
		score -= 5
		warnings = append(warnings, "many images may affect deliverability")
	}

	withoutAlt := 0
	for _, img := range images {
		if !strings.Contains(strings.ToLower(img), "alt=") {
			withoutAlt++
		}
	}
	if withoutAlt > 0 {
		score -= 10
		warnings = append(warnings, fmt.Sprintf("%d images without alt text", withoutAlt))
	}

	if score < 0 {
		score = 0
	}

	return Report{
		Score:           score,
		Issues:          issues,
		Warnings:        warnings,
		Recommendations: recommendations(score, issues, warnings),
	}
}

func recommendations(score int, issues, warnings []string) []string {
	var recs []string

	if score < 70 {
		recs = append(recs, "revise the content to improve deliverability")
	}
	for _, w := range warnings {
		switch {
		case strings.Contains(w, "spam-trigger"):
			recs = append(recs, "reduce words that spam filters react to")
		case strings.Contains(w, "text relative"):
			recs = append(recs, "increase the proportion of text to HTML")
		case strings.Contains(w, "alt text"):
			recs = append(recs, "add alt text to all images")
		}
	}
	if len(issues) > 0 {
		recs = append(recs, "ensure the email has readable text content")
	}

	recs = append(recs,
		"keep the subject clear and direct",
		"test the email across different providers",
	)

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}
