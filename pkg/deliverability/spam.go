package deliverability

import (
	"fmt"
	"strings"
)

// Risk classifies a spam score.
type Risk string

const (
	RiskVeryLow Risk = "very_low"
	RiskLow     Risk = "low"
	RiskMedium  Risk = "medium"
	RiskHigh    Risk = "high"
)

// SpamReport summarizes the spam likelihood of an email.
type SpamReport struct {
	Score           int      `json:"score"`
	Risk            Risk     `json:"risk"`
	Factors         []string `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

var contentSpamWords = []string{
	"viagra", "casino", "lottery", "millionaire",
	"inheritance", "prince", "wire transfer",
}

var shortenedLinkDomains = []string{"bit.ly", "tinyurl.com", "t.co"}

// CheckSpam accumulates spam signals from the subject and body and classifies
// the overall risk. Thresholds: 1 -> low, 4 -> medium, 8 -> high.
func CheckSpam(html, subject string) SpamReport {
	score := 0
	var factors []string

	subjectLower := strings.ToLower(subject)
	for _, word := range subjectTriggers {
		if strings.Contains(subjectLower, word) {
			score++
			factors = append(factors, fmt.Sprintf("spam word in subject: %q", word))
		}
	}

	if len(subject) > 0 {
		upper := 0
		for _, c := range subject {
			if c >= 'A' && c <= 'Z' {
				upper++
			}
		}
		if float64(upper)/float64(len(subject)) > 0.5 {
			score += 2
			factors = append(factors, "subject is mostly uppercase")
		}
	}

	htmlLower := strings.ToLower(html)
	for _, word := range contentSpamWords {
		if strings.Contains(htmlLower, word) {
			score += 3
			factors = append(factors, fmt.Sprintf("spam word in content: %q", word))
		}
	}

	if strings.Count(html, "!") > 5 {
		score++
		factors = append(factors, "excessive exclamation marks")
	}

	for _, domain := range shortenedLinkDomains {
		if strings.Contains(htmlLower, domain) {
			score += 2
			factors = append(factors, fmt.Sprintf("shortened link detected: %s", domain))
		}
	}

	return SpamReport{
		Score:           score,
		Risk:            classifyRisk(score),
		Factors:         factors,
		Recommendations: spamRecommendations(score, factors),
	}
}

func classifyRisk(score int) Risk {
	switch {
	case score >= 8:
		return RiskHigh
	case score >= 4:
		return RiskMedium
	case score >= 1:
		return RiskLow
	default:
		return RiskVeryLow
	}
}

func spamRecommendations(score int, factors []string) []string {
	var recs []string

	if score >= 5 {
		recs = append(recs, "revise the content thoroughly before sending")
	} else if score >= 3 {
		recs = append(recs, "reduce elements that trigger spam filters")
	}

	for _, f := range factors {
		if strings.Contains(f, "subject") {
			recs = append(recs, "rework the subject line")
			break
		}
	}
	for _, f := range factors {
		if strings.Contains(f, "exclamation") {
			recs = append(recs, "use exclamation marks sparingly")
			break
		}
	}

	recs = append(recs,
		"use natural, professional language",
		"keep a balance between text and images",
	)

	if len(recs) > 6 {
		recs = recs[:6]
	}
	return recs
}
