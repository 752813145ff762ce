package emailsafe

import (
	"strings"
	"testing"
)

var hostileInputs = []string{
	"",
	"plain text, no markup at all",
	"<p>Hi</p>",
	"<script>alert(1)</script><p>Hi</p>",
	"<SCRIPT type='text/javascript'>\nsteal()\n</SCRIPT>after",
	"<iframe src=\"https://evil.example\"></iframe>",
	"<IFRAME>\n<p>nested</p>\n</IFRAME>",
	"<a href=\"javascript:alert(1)\">x</a>",
	"<a href='VBSCRIPT:msgbox(1)'>x</a>",
	"<object data=\"data:text/html,<script>x()</script>\"></object>",
	"<div onclick='x()'>Click</div>",
	"<img src=x onerror=\"pwn()\" onload='go()'>",
	"<body onload=\"init()\" onfocus='f()' onblur='b()'>",
	"<form onsubmit=\"s()\" onreset='r()' onchange=\"c()\">",
	"<span onmouseover='a()' onmouseout=\"b()\">hover</span>",
	"<div><p>unclosed",
	"<<<>>> not html",
}

func TestSanitizeRemovesScriptElements(t *testing.T) {
	out := Sanitize("<script>alert(1)</script><p>Hi</p>")
	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Errorf("script content survived: %q", out)
	}
	if !strings.Contains(out, "<p>Hi</p>") {
		t.Errorf("benign content removed: %q", out)
	}
}

func TestSanitizeRemovesMultilineIframe(t *testing.T) {
	in := "before<IFRAME src='x'>\nline one\nline two\n</IFRAME>after"
	out := Sanitize(in)
	if strings.Contains(strings.ToLower(out), "<iframe") {
		t.Errorf("iframe survived: %q", out)
	}
	if out != "beforeafter" {
		t.Errorf("expected %q, got %q", "beforeafter", out)
	}
}

func TestSanitizeStripsDangerousSchemes(t *testing.T) {
	for _, in := range []string{
		`<a href="javascript:alert(1)">x</a>`,
		`<a href="JaVaScRiPt:alert(1)">x</a>`,
		`<a href='vbscript:msgbox(1)'>x</a>`,
		`<object data="data:text/html,payload"></object>`,
	} {
		out := Sanitize(in)
		lower := strings.ToLower(out)
		if strings.Contains(lower, "javascript:") || strings.Contains(lower, "vbscript:") || strings.Contains(lower, "data:text/html") {
			t.Errorf("dangerous scheme survived in %q -> %q", in, out)
		}
	}
}

func TestSanitizeRemovesEventHandlers(t *testing.T) {
	out := Sanitize("<div onclick='x()'>Click</div>")
	if out != "<div>Click</div>" {
		t.Errorf("expected clean div, got %q", out)
	}

	out = Sanitize(`<img src=x onerror="pwn()" onload='go()'>`)
	lower := strings.ToLower(out)
	if strings.Contains(lower, "onerror") || strings.Contains(lower, "onload") {
		t.Errorf("event handlers survived: %q", out)
	}
	if !strings.Contains(out, "src=x") {
		t.Errorf("benign attribute removed: %q", out)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	for _, in := range hostileInputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizeSafetyInvariant(t *testing.T) {
	blocked := []string{
		"<script", "<iframe", "javascript:",
		"onclick=", "onload=", "onerror=", "onmouseover=", "onmouseout=",
		"onfocus=", "onblur=", "onchange=", "onsubmit=", "onreset=",
	}
	for _, in := range hostileInputs {
		out := strings.ToLower(Sanitize(in))
		for _, bad := range blocked {
			if strings.Contains(out, bad) {
				t.Errorf("sanitized output for %q still contains %q", in, bad)
			}
		}
	}
}
