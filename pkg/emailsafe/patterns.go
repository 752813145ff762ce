package emailsafe

import "regexp"

// All matching in this package is pattern based rather than DOM based.
// Model output is templated and mostly well formed, so best-effort regex
// matching keeps behavior predictable; deeply broken markup is an accepted
// limitation.
var (
	// scriptElement matches whole <script> elements including contents,
	// non-greedy across line breaks.
	scriptElement = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

	// iframeElement matches whole <iframe> elements including contents.
	iframeElement = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe>`)

	// dangerousScheme matches URI schemes that execute content when
	// dereferenced. Stripped wherever they appear in attribute values.
	dangerousScheme = regexp.MustCompile(`(?i)(?:javascript:|vbscript:|data:text/html)`)

	// eventHandlerAttr matches the blocked inline event-handler attributes
	// with single- or double-quoted values.
	eventHandlerAttr = regexp.MustCompile(`(?i)\s+(?:onclick|onload|onerror|onmouseover|onmouseout|onfocus|onblur|onchange|onsubmit|onreset)\s*=\s*(?:"[^"]*"|'[^']*')`)

	// Compatibility anti-patterns known to break in mail clients.
	displayFlex      = regexp.MustCompile(`(?i)display\s*:\s*flex`)
	displayGrid      = regexp.MustCompile(`(?i)display\s*:\s*grid`)
	positionAbsolute = regexp.MustCompile(`(?i)position\s*:\s*absolute`)

	imgTag    = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	anchorTag = regexp.MustCompile(`(?i)<a\b[^>]*>`)
	headingTag = regexp.MustCompile(`(?i)<h[12][\s>]`)

	styleBlock  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	anyTag      = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
	closingHead = regexp.MustCompile(`(?i)</head>`)
)
