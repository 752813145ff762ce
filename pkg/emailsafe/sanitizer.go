// Package emailsafe turns arbitrary model- or user-produced HTML into markup
// that is safe to store, safe to render, and compatible with real-world email
// clients.
//
// Every exported function is pure, synchronous, and total: given any string
// input it returns a usable value and never panics to the caller. Internal
// failures degrade to deterministic fallbacks (fallback document, zero score,
// diagnostic string, unmodified input) so the pipeline can never be the cause
// of a failed request.
package emailsafe

// Sanitize strips executable content from HTML: whole <script> and <iframe>
// elements, javascript:/vbscript:/data:text/html URI schemes, and the blocked
// inline event-handler attributes. Idempotent.
func Sanitize(html string) string {
	s := scriptElement.ReplaceAllString(html, "")
	s = iframeElement.ReplaceAllString(s, "")
	s = dangerousScheme.ReplaceAllString(s, "")
	s = eventHandlerAttr.ReplaceAllString(s, "")
	return s
}

// hasDangerousContent reports whether the sanitizer would remove script or
// iframe elements or dangerous URI schemes from html.
func hasDangerousContent(html string) bool {
	return scriptElement.MatchString(html) ||
		iframeElement.MatchString(html) ||
		dangerousScheme.MatchString(html)
}

// hasEventHandlers reports whether html carries blocked inline event handlers.
func hasEventHandlers(html string) bool {
	return eventHandlerAttr.MatchString(html)
}
