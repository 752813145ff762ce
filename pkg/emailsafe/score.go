package emailsafe

import "strings"

// ScoreBreakdown splits the quality score into its four categories, each
// capped at 25 points.
type ScoreBreakdown struct {
	Structure     int `json:"structure"`
	Compatibility int `json:"compatibility"`
	Accessibility int `json:"accessibility"`
	Content       int `json:"content"`
}

// QualityScore is a 0-100 heuristic summarizing structural, compatibility,
// accessibility, and content signals. Score always equals the sum of the
// breakdown, capped at 100.
type QualityScore struct {
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// CalculateQualityScore scores any HTML, validated or not. Deterministic and
// side-effect free; internal failure yields a zero score rather than a panic.
func CalculateQualityScore(html string) (qs QualityScore) {
	defer func() {
		if r := recover(); r != nil {
			qs = QualityScore{}
		}
	}()

	lower := strings.ToLower(html)
	var b ScoreBreakdown

	// Structure: document skeleton plus the meta tags clients rely on.
	if IsStructurallyComplete(html) {
		b.Structure += 10
	}
	if strings.Contains(lower, "charset") {
		b.Structure += 5
	}
	if strings.Contains(lower, "viewport") {
		b.Structure += 5
	}
	if strings.Contains(lower, "<title") {
		b.Structure += 5
	}

	// Compatibility: table layout and inline styles render most reliably.
	if strings.Contains(lower, "<table") {
		b.Compatibility += 10
	}
	if strings.Contains(lower, "style=") {
		b.Compatibility += 10
	}
	if !displayFlex.MatchString(html) && !displayGrid.MatchString(html) {
		b.Compatibility += 5
	}

	// Accessibility: headings, image alt text, descriptive links.
	if headingTag.MatchString(html) {
		b.Accessibility += 10
	}
	if strings.Contains(lower, "alt=") {
		b.Accessibility += 10
	}
	if strings.Contains(lower, "title=") || strings.Contains(lower, "aria-label=") {
		b.Accessibility += 5
	}

	// Content: enough readable text plus a link and a call to action.
	text := ExtractPlainText(html)
	if len(text) > 50 {
		b.Content += 10
	}
	if len(text) > 200 {
		b.Content += 5
	}
	if anchorTag.MatchString(html) {
		b.Content += 5
	}
	if strings.Contains(lower, "button") || strings.Contains(lower, "cta") {
		b.Content += 5
	}

	b.Structure = capCategory(b.Structure)
	b.Compatibility = capCategory(b.Compatibility)
	b.Accessibility = capCategory(b.Accessibility)
	b.Content = capCategory(b.Content)

	total := b.Structure + b.Compatibility + b.Accessibility + b.Content
	if total > 100 {
		total = 100
	}

	return QualityScore{Score: total, Breakdown: b}
}

func capCategory(points int) int {
	if points > 25 {
		return 25
	}
	return points
}
