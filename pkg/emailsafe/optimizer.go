package emailsafe

import "strings"

// OptimizeForEmailClients rewrites known-unsupported CSS to safer equivalents
// and injects the baseline reset stylesheet before the closing head tag when
// it is not already present. Best-effort and idempotent; on internal failure
// the input is returned unchanged.
func OptimizeForEmailClients(html string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = html
		}
	}()

	s := displayFlex.ReplaceAllString(html, "display: table-cell")
	s = displayGrid.ReplaceAllString(s, "display: table")

	// The reset marker doubles as the injection guard: documents wrapped by
	// the canonical template already carry it.
	if !strings.Contains(s, resetMarker) {
		if loc := closingHead.FindStringIndex(s); loc != nil {
			s = s[:loc[0]] + "<style>\n" + resetStyles + "\n</style>\n" + s[loc[0]:]
		}
	}

	return s
}
