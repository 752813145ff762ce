package emailsafe

import "strings"

// entityReplacer decodes the five basic HTML entities. Anything more exotic
// passes through untouched.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
)

// ExtractPlainText derives a text-only rendition of html for clients that
// cannot render HTML. Style and script blocks are removed first so CSS and JS
// tokens never leak into the text, then remaining tags are stripped,
// whitespace runs collapse to single spaces, basic entities are decoded, and
// the result is trimmed. Never panics; internal failure yields a diagnostic
// string instead.
func ExtractPlainText(html string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = "[text extraction failed]"
		}
	}()

	s := styleBlock.ReplaceAllString(html, "")
	s = scriptElement.ReplaceAllString(s, "")
	s = anyTag.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(s)
}
