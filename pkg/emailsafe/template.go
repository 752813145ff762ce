package emailsafe

import "strings"

// resetMarker is a property from the baseline reset stylesheet. Its presence
// means the reset has already been applied, which keeps wrapping and
// optimization idempotent.
const resetMarker = "mso-table-lspace"

// resetStyles neutralizes email client quirks: Outlook table spacing, image
// borders, and mobile text-size adjustment.
const resetStyles = `body, table, td, a { -webkit-text-size-adjust: 100%; -ms-text-size-adjust: 100%; }
table, td { mso-table-lspace: 0pt; mso-table-rspace: 0pt; border-collapse: collapse; }
img { -ms-interpolation-mode: bicubic; border: 0; height: auto; line-height: 100%; outline: none; text-decoration: none; }`

// emailShellHead is the head of the canonical responsive template: doctype,
// charset/viewport metas, title, reset styles, a centered 600px container with
// rounded corners and shadow, and a media query that collapses the container
// to full width on small screens.
const emailShellHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Email</title>
<style>
` + resetStyles + `
body { margin: 0; padding: 0; width: 100% !important; background-color: #f4f4f7; font-family: Arial, Helvetica, sans-serif; }
.email-container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.08); overflow: hidden; }
.email-content { padding: 32px; color: #333333; font-size: 16px; line-height: 1.5; }
.email-footer { padding: 24px 32px; font-size: 12px; color: #9a9ea6; text-align: center; }
@media only screen and (max-width: 600px) {
  .email-container { width: 100% !important; border-radius: 0; }
  h1 { font-size: 24px !important; }
  h2 { font-size: 20px !important; }
}
</style>
</head>
<body>
<div class="email-container">
<div class="email-content">
`

const emailShellFoot = `
</div>
<div class="email-footer">This email was generated automatically.</div>
</div>
</body>
</html>`

// WrapInTemplate inserts content verbatim into the canonical responsive email
// template, supplying the document skeleton the content is missing.
func WrapInTemplate(content string) string {
	var b strings.Builder
	b.Grow(len(emailShellHead) + len(content) + len(emailShellFoot))
	b.WriteString(emailShellHead)
	b.WriteString(content)
	b.WriteString(emailShellFoot)
	return b.String()
}

// FallbackDocument returns the safe document served when input cannot be
// validated at all: the canonical template wrapping a centered message card
// with a generic call to action. Always renderable, always safe.
func FallbackDocument() string {
	return WrapInTemplate(`<div style="text-align: center; padding: 24px;">
<h1 style="color: #333333;">Content Unavailable</h1>
<p>The email content could not be produced. Please try again later.</p>
<a href="#" class="button" title="Continue" style="display: inline-block; padding: 12px 24px; background-color: #2f6fed; color: #ffffff; text-decoration: none; border-radius: 4px;">Continue</a>
</div>`)
}

// IsStructurallyComplete reports whether html carries a doctype declaration
// and matched open/close tags for html, head, and body. All four are required
// for a document to be considered complete.
func IsStructurallyComplete(html string) bool {
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "<!doctype") {
		return false
	}
	for _, tag := range []string{"html", "head", "body"} {
		if !strings.Contains(lower, "<"+tag) || !strings.Contains(lower, "</"+tag+">") {
			return false
		}
	}
	return true
}
