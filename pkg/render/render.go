// Package render converts MJML sources to HTML so callers can submit MJML
// instead of raw HTML and have the rendered output run through the validation
// pipeline.
package render

import (
	"fmt"
	"strings"

	"github.com/preslavrachev/gomjml/mjml"

	"github.com/joeblew999/plat-emailguard/pkg/log"
)

// IsMJML reports whether source looks like an MJML document rather than HTML.
func IsMJML(source string) bool {
	return strings.Contains(strings.ToLower(source), "<mjml")
}

// MJML renders MJML content to responsive HTML using gomjml.
func MJML(source string) (string, error) {
	html, err := mjml.Render(source)
	if err != nil {
		log.Error("MJML render failed", "error", err)
		return "", fmt.Errorf("render mjml: %w", err)
	}

	log.Debug("MJML rendered", "html_size", len(html))
	return html, nil
}
