package emailsafe

import (
	"strings"
	"testing"
)

func TestExtractPlainTextBasic(t *testing.T) {
	if got := ExtractPlainText("<p>A&nbsp;B</p>"); got != "A B" {
		t.Errorf("got %q, want %q", got, "A B")
	}
}

func TestExtractPlainTextDropsStyleAndScript(t *testing.T) {
	html := `<style>body { color: red; }</style><script>var x = 1;</script><p>Visible</p>`
	got := ExtractPlainText(html)
	if got != "Visible" {
		t.Errorf("got %q, want %q", got, "Visible")
	}
	if strings.Contains(got, "color") || strings.Contains(got, "var x") {
		t.Errorf("CSS/JS tokens leaked into text: %q", got)
	}
}

func TestExtractPlainTextCollapsesWhitespace(t *testing.T) {
	got := ExtractPlainText("<div>\n  first\n\n  second\t third  </div>")
	if got != "first second third" {
		t.Errorf("got %q", got)
	}
}

func TestExtractPlainTextDecodesEntities(t *testing.T) {
	got := ExtractPlainText("<p>a &amp; b &lt;c&gt; &quot;d&quot;</p>")
	if got != `a & b <c> "d"` {
		t.Errorf("got %q", got)
	}
}

func TestExtractPlainTextTagsBecomeBoundaries(t *testing.T) {
	got := ExtractPlainText("<h1>Title</h1><p>Body</p>")
	if got != "Title Body" {
		t.Errorf("got %q", got)
	}
}

func TestExtractPlainTextNeverEmptyPanics(t *testing.T) {
	for _, in := range hostileInputs {
		_ = ExtractPlainText(in) // must not panic
	}
}
