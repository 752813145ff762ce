package deliverability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCleanEmail(t *testing.T) {
	html := `<html><body><h1>Monthly update</h1><p>` +
		strings.Repeat("A good amount of readable text. ", 20) +
		`</p><img src="a.png" alt="chart"></body></html>`

	report := Check(html, "Your monthly update")
	assert.Equal(t, 100, report.Score)
	assert.Empty(t, report.Issues)
	assert.Empty(t, report.Warnings)
	assert.NotEmpty(t, report.Recommendations)
}

func TestCheckSubjectPenalties(t *testing.T) {
	report := Check("<p>short</p>", "FREE urgent offer - click here and buy now")
	assert.Less(t, report.Score, 100)
	assert.Contains(t, strings.Join(report.Warnings, "; "), "spam-trigger")

	long := Check("<p>short</p>", strings.Repeat("a very long subject ", 5))
	assert.Contains(t, strings.Join(long.Warnings, "; "), "longer than 50")
}

func TestCheckNoTextContent(t *testing.T) {
	report := Check(`<img src="only.png">`, "Hi")
	require.NotEmpty(t, report.Issues)
	assert.Contains(t, report.Issues[0], "no text content")
	assert.LessOrEqual(t, report.Score, 70)
}

func TestCheckImagesWithoutAlt(t *testing.T) {
	html := `<p>some visible body text for the ratio check to pass fine</p>` +
		`<img src="a.png"><img src="b.png" alt="b">`
	report := Check(html, "Hello")
	assert.Contains(t, strings.Join(report.Warnings, "; "), "1 images without alt text")
}

func TestCheckScoreFloor(t *testing.T) {
	// Pile every penalty on at once; the score must not go negative.
	links := strings.Repeat(`<a href="https://x.example/p">l</a>`, 12)
	imgs := strings.Repeat(`<img src="x.png">`, 7)
	report := Check(links+imgs, "FREE free urgent offer click here buy now guaranteed winner with an extremely long subject line")
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, len(report.Recommendations), 5)
}

func TestCheckSpamRiskLevels(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		subject string
		risk    Risk
	}{
		{"clean", "<p>Regular newsletter content</p>", "Team news", RiskVeryLow},
		{"low", "<p>ok</p>", "A free sample", RiskLow},
		{"high", "<p>casino lottery viagra!!!!!!!</p>", "FREE URGENT WINNER", RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := CheckSpam(tt.html, tt.subject)
			assert.Equal(t, tt.risk, report.Risk, "factors: %v", report.Factors)
		})
	}
}

func TestCheckSpamShortenedLinks(t *testing.T) {
	report := CheckSpam(`<a href="https://bit.ly/x">here</a>`, "Hi")
	assert.GreaterOrEqual(t, report.Score, 2)
	assert.Contains(t, strings.Join(report.Factors, "; "), "bit.ly")
}

func TestCheckSpamDeterministic(t *testing.T) {
	a := CheckSpam("<p>casino</p>", "FREE OFFER")
	b := CheckSpam("<p>casino</p>", "FREE OFFER")
	assert.Equal(t, a, b)
}
