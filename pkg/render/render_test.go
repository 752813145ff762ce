package render

import (
	"strings"
	"testing"
)

func TestIsMJML(t *testing.T) {
	if !IsMJML("<mjml><mj-body></mj-body></mjml>") {
		t.Error("mjml document not recognized")
	}
	if IsMJML("<html><body></body></html>") {
		t.Error("plain HTML misclassified as MJML")
	}
}

func TestMJMLRendersBasicDocument(t *testing.T) {
	html, err := MJML(`<mjml>
		<mj-body>
			<mj-section>
				<mj-column>
					<mj-text>Hello</mj-text>
				</mj-column>
			</mj-section>
		</mj-body>
	</mjml>`)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, "Hello") {
		t.Error("rendered HTML missing content")
	}
	if !strings.Contains(strings.ToLower(html), "<!doctype") {
		t.Error("rendered HTML missing doctype")
	}
}

func TestMJMLRejectsInvalidSource(t *testing.T) {
	if _, err := MJML("not mjml at all"); err == nil {
		t.Error("expected error for invalid MJML")
	}
}
