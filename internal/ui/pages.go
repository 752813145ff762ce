// Package ui provides the Datastar-based web UI for plat-emailguard.
package ui

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	data "maragu.dev/gomponents-datastar"
)

// Layout wraps content in the base HTML layout.
func Layout(title string, content ...g.Node) g.Node {
	return h.HTML(
		h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("utf-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
			h.TitleEl(g.Text(title)),
			h.Script(h.Type("module"), h.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js")),
			h.StyleEl(h.Type("text/css"), g.Raw(styles)),
		),
		h.Body(
			h.Nav(h.Class("navbar"),
				h.Div(h.Class("nav-brand"), g.Text("plat-emailguard")),
				h.Div(h.Class("nav-links"),
					h.A(h.Href("/"), g.Text("Dashboard")),
					h.A(h.Href("/check"), g.Text("Check")),
					h.A(h.Href("/reports"), g.Text("Reports")),
				),
			),
			h.Main(h.Class("container"), g.Group(content)),
			h.Footer(h.Class("footer"),
				g.Text("plat-emailguard - Email HTML Safety Pipeline"),
			),
		),
	)
}

// Dashboard renders the main dashboard page.
func Dashboard() g.Node {
	return Layout("Dashboard - plat-emailguard",
		data.Signals(map[string]any{
			"stats":   map[string]int{},
			"loading": true,
		}),
		data.Init("@get('/api/stats')"),

		h.H1(g.Text("Email Safety Dashboard")),

		// Stats cards
		h.Div(h.Class("stats-grid"),
			StatCard("queued", "Queued"),
			StatCard("processing", "Processing"),
			StatCard("done", "Done"),
			StatCard("failed", "Failed"),
		),

		// Quick actions
		h.Div(h.Class("section"),
			h.H2(g.Text("Quick Actions")),
			h.Div(h.Class("actions"),
				h.A(h.Href("/check"), h.Button(g.Text("Check HTML"))),
				h.A(h.Href("/reports"), h.Button(g.Text("View Reports"))),
			),
		),

		// Recent reports section with SSE updates
		h.Div(h.Class("section"),
			h.H2(g.Text("Recent Activity")),
			data.OnInterval("@get('/api/stats')", data.ModifierDuration, data.Duration(5*time.Second)),
			h.Div(h.ID("recent-list"),
				data.Show("!$loading"),
				h.P(g.Text("Stats loaded. See reports for details.")),
			),
			h.Div(
				data.Show("$loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading..."),
			),
		),
	)
}

// StatCard renders a statistics card.
func StatCard(key, label string) g.Node {
	return h.Div(h.Class("stat-card"),
		h.Div(h.Class("stat-value"), data.Text("$stats."+key+" || 0")),
		h.Div(h.Class("stat-label"), g.Text(label)),
	)
}

// CheckPage renders the interactive check form.
func CheckPage() g.Node {
	return Layout("Check - plat-emailguard",
		data.Signals(map[string]any{
			"html":     "",
			"subject":  "",
			"mjml":     false,
			"checking": false,
			"score":    0,
			"issues":   []any{},
			"fixes":    []any{},
			"preview":  "",
			"done":     false,
		}),

		h.H1(g.Text("Check Email HTML")),

		h.Form(h.Class("check-form"),
			data.On("submit", `
				event.preventDefault();
				$checking = true;
				@post('/api/check', {
					body: JSON.stringify({
						html: $html,
						subject: $subject,
						mjml: $mjml
					})
				})
			`),

			h.Div(h.Class("form-group"),
				h.Label(h.For("html"), g.Text("HTML or MJML source")),
				h.Textarea(h.ID("html"), data.Bind("html"),
					h.Placeholder("<html>...</html>"),
					h.Rows("12"),
				),
			),

			h.Div(h.Class("form-group"),
				h.Label(h.For("subject"), g.Text("Subject (optional, for deliverability checks)")),
				h.Input(h.ID("subject"), h.Type("text"), data.Bind("subject"),
					h.Placeholder("Subject line"),
				),
			),

			h.Div(h.Class("form-group"),
				h.Label(
					h.Input(h.Type("checkbox"), data.Bind("mjml")),
					g.Text(" Source is MJML, render before checking"),
				),
			),

			h.Button(h.Type("submit"),
				data.Attr("disabled", "$checking"),
				h.Span(data.Show("!$checking"), g.Text("Run Check")),
				h.Span(data.Show("$checking"),
					h.Span(h.Class("loading-spinner")),
					g.Text(" Checking..."),
				),
			),
		),

		// Results panel, patched in by the check handler
		h.Div(h.Class("section"),
			data.Show("$done"),
			h.H2(g.Text("Result")),
			h.Div(h.Class("score-line"),
				g.Text("Quality score: "),
				h.Strong(data.Text("$score")),
				g.Text(" / 100"),
			),
			h.Div(h.ID("check-result")),
			h.H2(g.Text("Sanitized Preview")),
			h.IFrame(
				h.ID("preview-frame"),
				data.Attr("srcdoc", "$preview"),
				h.StyleAttr("width: 100%; height: 400px; border: 1px solid #ddd; border-radius: 8px;"),
			),
		),
	)
}

// ReportsPage renders the report monitoring page.
func ReportsPage() g.Node {
	return Layout("Reports - plat-emailguard",
		data.Signals(map[string]any{
			"filter":  "all",
			"loading": true,
		}),
		data.Init("@get('/api/reports')"),

		h.H1(g.Text("Validation Reports")),

		// Filter buttons
		h.Div(h.Class("filter-bar"),
			h.Button(
				data.On("click", "$filter = 'all'; @get('/api/reports')"),
				data.Class("active", "$filter === 'all'"),
				g.Text("All"),
			),
			h.Button(
				data.On("click", "$filter = 'queued'; @get('/api/reports?status=queued')"),
				data.Class("active", "$filter === 'queued'"),
				g.Text("Queued"),
			),
			h.Button(
				data.On("click", "$filter = 'done'; @get('/api/reports?status=done')"),
				data.Class("active", "$filter === 'done'"),
				g.Text("Done"),
			),
			h.Button(
				data.On("click", "$filter = 'failed'; @get('/api/reports?status=failed')"),
				data.Class("active", "$filter === 'failed'"),
				g.Text("Failed"),
			),
		),

		// Auto-refresh toggle
		h.Div(h.Class("refresh-bar"),
			data.OnInterval("@get('/api/reports?status=' + ($filter === 'all' ? '' : $filter))", data.ModifierDuration, data.Duration(5*time.Second)),
			g.Text("Auto-refresh: 5s"),
		),

		// Report list
		h.Div(h.Class("report-list"),
			data.Show("$loading"),
			h.Div(h.Class("loading"),
				h.Span(h.Class("loading-spinner")),
				g.Text(" Loading reports..."),
			),
		),
		h.Div(h.ID("report-items"),
			data.Show("!$loading"),
		),
	)
}

const styles = `
:root {
	--primary: #6366f1;
	--primary-dark: #4f46e5;
	--success: #10b981;
	--warning: #f59e0b;
	--danger: #ef4444;
	--bg: #f8fafc;
	--card-bg: #ffffff;
	--text: #1e293b;
	--text-muted: #64748b;
	--border: #e2e8f0;
}

* {
	box-sizing: border-box;
	margin: 0;
	padding: 0;
}

body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: var(--bg);
	color: var(--text);
	line-height: 1.6;
}

.navbar {
	background: var(--primary);
	color: white;
	padding: 1rem 2rem;
	display: flex;
	justify-content: space-between;
	align-items: center;
	box-shadow: 0 2px 4px rgba(0,0,0,0.1);
}

.nav-brand {
	font-size: 1.5rem;
	font-weight: bold;
}

.nav-links a {
	color: white;
	text-decoration: none;
	margin-left: 2rem;
	opacity: 0.9;
	transition: opacity 0.2s;
}

.nav-links a:hover {
	opacity: 1;
}

.container {
	max-width: 1200px;
	margin: 0 auto;
	padding: 2rem;
}

.footer {
	text-align: center;
	padding: 2rem;
	color: var(--text-muted);
	border-top: 1px solid var(--border);
	margin-top: 2rem;
}

h1 {
	margin-bottom: 1.5rem;
	color: var(--text);
}

h2 {
	margin-bottom: 1rem;
	color: var(--text);
	font-size: 1.25rem;
}

.stats-grid {
	display: grid;
	grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
	gap: 1.5rem;
	margin-bottom: 2rem;
}

.stat-card {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	text-align: center;
	box-shadow: 0 1px 3px rgba(0,0,0,0.1);
	border: 1px solid var(--border);
	transition: transform 0.2s, box-shadow 0.2s;
}

.stat-card:hover {
	transform: translateY(-2px);
	box-shadow: 0 4px 12px rgba(0,0,0,0.1);
}

.stat-value {
	font-size: 2.5rem;
	font-weight: bold;
	color: var(--primary);
}

.stat-label {
	color: var(--text-muted);
	font-size: 0.875rem;
	text-transform: uppercase;
	letter-spacing: 0.05em;
}

.section {
	background: var(--card-bg);
	border-radius: 12px;
	padding: 1.5rem;
	margin-bottom: 1.5rem;
	border: 1px solid var(--border);
}

.actions {
	display: flex;
	gap: 1rem;
	flex-wrap: wrap;
}

button {
	background: var(--primary);
	color: white;
	border: none;
	padding: 0.75rem 1.5rem;
	border-radius: 8px;
	cursor: pointer;
	font-size: 1rem;
	font-weight: 500;
	transition: background 0.2s, transform 0.1s;
}

button:hover {
	background: var(--primary-dark);
}

button:active {
	transform: scale(0.98);
}

button:disabled {
	background: var(--text-muted);
	cursor: not-allowed;
}

button.active {
	background: var(--primary-dark);
	box-shadow: inset 0 2px 4px rgba(0,0,0,0.2);
}

.hint {
	color: var(--text-muted);
	font-style: italic;
}

.filter-bar {
	display: flex;
	gap: 0.5rem;
	margin-bottom: 1rem;
}

.refresh-bar {
	color: var(--text-muted);
	font-size: 0.875rem;
	margin-bottom: 1rem;
}

.report-list {
	background: var(--card-bg);
	border-radius: 12px;
	border: 1px solid var(--border);
}

.loading {
	padding: 2rem;
	text-align: center;
	color: var(--text-muted);
}

.loading-spinner {
	display: inline-block;
	width: 16px;
	height: 16px;
	border: 2px solid var(--border);
	border-top-color: var(--primary);
	border-radius: 50%;
	animation: spin 1s linear infinite;
}

@keyframes spin {
	to { transform: rotate(360deg); }
}

.check-form {
	max-width: 800px;
	background: var(--card-bg);
	border-radius: 12px;
	padding: 2rem;
	border: 1px solid var(--border);
	margin-bottom: 1.5rem;
}

.form-group {
	margin-bottom: 1.5rem;
}

.form-group label {
	display: block;
	margin-bottom: 0.5rem;
	font-weight: 500;
}

.form-group input,
.form-group select,
.form-group textarea {
	width: 100%;
	padding: 0.75rem;
	border: 1px solid var(--border);
	border-radius: 8px;
	font-size: 1rem;
	transition: border-color 0.2s, box-shadow 0.2s;
}

.form-group input[type="checkbox"] {
	width: auto;
	margin-right: 0.5rem;
}

.form-group input:focus,
.form-group select:focus,
.form-group textarea:focus {
	outline: none;
	border-color: var(--primary);
	box-shadow: 0 0 0 3px rgba(99, 102, 241, 0.1);
}

.score-line {
	font-size: 1.25rem;
	margin-bottom: 1rem;
}

.issue {
	color: var(--danger);
}

.fix {
	color: var(--success);
}

@media (max-width: 768px) {
	.nav-links a {
		margin-left: 1rem;
	}
}
`
