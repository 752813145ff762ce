package emailsafe

import (
	"strings"
	"testing"
)

func TestOptimizeRewritesFlexAndGrid(t *testing.T) {
	in := `<div style="display: flex">a</div><div style="DISPLAY: GRID">b</div>`
	out := OptimizeForEmailClients(in)

	if displayFlex.MatchString(out) || displayGrid.MatchString(out) {
		t.Errorf("flex/grid survived: %q", out)
	}
	if !strings.Contains(out, "display: table-cell") {
		t.Errorf("flex not rewritten to table-cell: %q", out)
	}
	if !strings.Contains(out, "display: table") {
		t.Errorf("grid not rewritten to table: %q", out)
	}
}

func TestOptimizeInjectsResetStylesheet(t *testing.T) {
	in := "<html><head><title>T</title></head><body></body></html>"
	out := OptimizeForEmailClients(in)

	if !strings.Contains(out, resetMarker) {
		t.Errorf("reset stylesheet not injected: %q", out)
	}
	idx := strings.Index(strings.ToLower(out), "</head>")
	if idx < 0 || !strings.Contains(out[:idx], resetMarker) {
		t.Errorf("reset stylesheet not placed before closing head tag: %q", out)
	}
}

func TestOptimizeIdempotent(t *testing.T) {
	in := `<html><head></head><body><div style="display: flex">x</div></body></html>`
	once := OptimizeForEmailClients(in)
	twice := OptimizeForEmailClients(once)
	if once != twice {
		t.Errorf("optimizer not idempotent:\n%q\n%q", once, twice)
	}
}

func TestOptimizeSkipsInjectionWhenMarkerPresent(t *testing.T) {
	wrapped := WrapInTemplate("<p>x</p>")
	out := OptimizeForEmailClients(wrapped)
	if strings.Count(out, resetMarker) != strings.Count(wrapped, resetMarker) {
		t.Error("reset stylesheet injected twice")
	}
}

func TestOptimizeNoHeadLeavesInputAlone(t *testing.T) {
	in := "<p>fragment without a head</p>"
	if out := OptimizeForEmailClients(in); out != in {
		t.Errorf("fragment should pass through unchanged, got %q", out)
	}
}
