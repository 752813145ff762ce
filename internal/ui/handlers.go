package ui

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/joeblew999/plat-emailguard/internal/model"
	"github.com/joeblew999/plat-emailguard/pkg/checker"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
	"github.com/joeblew999/plat-emailguard/pkg/render"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	engine  *checker.Engine
	queue   *queue.Queue
	reports model.ReportsModel
}

// NewHandlers creates new UI handlers.
func NewHandlers(engine *checker.Engine, q *queue.Queue, reports model.ReportsModel) *Handlers {
	return &Handlers{
		engine:  engine,
		queue:   q,
		reports: reports,
	}
}

// Routes returns the standard UI routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleDashboard},
		{Method: http.MethodGet, Path: "/check", Handler: h.handleCheckPage},
		{Method: http.MethodGet, Path: "/reports", Handler: h.handleReportsPage},
	}
}

// SSERoutes returns the SSE-based API routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/api/stats", Handler: h.handleStats},
		{Method: http.MethodGet, Path: "/api/reports", Handler: h.handleReportsAPI},
		{Method: http.MethodPost, Path: "/api/check", Handler: h.handleCheck},
	}
}

func (h *Handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := Dashboard().Render(w); err != nil {
		logx.Errorf("render dashboard: %v", err)
	}
}

func (h *Handlers) handleCheckPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := CheckPage().Render(w); err != nil {
		logx.Errorf("render check page: %v", err)
	}
}

func (h *Handlers) handleReportsPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ReportsPage().Render(w); err != nil {
		logx.Errorf("render reports page: %v", err)
	}
}

func (h *Handlers) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.queue.Stats(r.Context())
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	h.sendDatastarSignals(w, r, map[string]any{
		"stats":   stats,
		"loading": false,
	})
}

func (h *Handlers) handleReportsAPI(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	rows, err := h.reports.ListByStatus(r.Context(), status, 50)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	// Render report rows as HTML fragment and patch into #report-items
	sse := datastar.NewSSE(w, r)

	fragment := renderReportItems(rows)
	if err := sse.PatchElementf(`<div id="report-items">%s</div>`, fragment); err != nil {
		logx.Errorf("datastar patch report items: %v", err)
	}

	if err := sse.MarshalAndPatchSignals(map[string]any{"loading": false}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		HTML    string `json:"html"`
		Subject string `json:"subject"`
		MJML    bool   `json:"mjml"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.sendDatastarSignals(w, r, map[string]any{
			"checking": false,
			"done":     false,
		})
		return
	}

	source := req.HTML
	if req.MJML {
		rendered, err := render.MJML(source)
		if err != nil {
			h.sendDatastarError(w, r, err)
			return
		}
		source = rendered
	}

	result, score, _, err := h.engine.CheckNow(r.Context(), source, req.Subject)
	if err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	// Queue the same document so the report lands in storage.
	if _, err := h.queue.Enqueue(r.Context(), queue.CheckJob{
		Source: "ui",
		HTML:   source,
	}); err != nil {
		logx.Errorf("enqueue ui check: %v", err)
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementf(`<div id="check-result">%s</div>`, renderCheckResult(result.Issues, result.Fixes)); err != nil {
		logx.Errorf("datastar patch check result: %v", err)
	}
	if err := sse.MarshalAndPatchSignals(map[string]any{
		"checking": false,
		"done":     true,
		"score":    score.Score,
		"preview":  result.SanitizedHTML,
	}); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{
		"loading":  false,
		"checking": false,
		"error":    msg,
	})
}

func renderCheckResult(issues, fixes []string) string {
	var b strings.Builder

	if len(issues) == 0 {
		b.WriteString(`<p class="fix">No issues found</p>`)
	} else {
		b.WriteString(`<ul>`)
		for _, issue := range issues {
			b.WriteString(fmt.Sprintf(`<li class="issue">%s</li>`, html.EscapeString(issue)))
		}
		b.WriteString(`</ul>`)
	}

	if len(fixes) > 0 {
		b.WriteString(`<ul>`)
		for _, fix := range fixes {
			b.WriteString(fmt.Sprintf(`<li class="fix">%s</li>`, html.EscapeString(fix)))
		}
		b.WriteString(`</ul>`)
	}

	return b.String()
}

func renderReportItems(rows []*model.Report) string {
	if len(rows) == 0 {
		return `<p class="hint" style="padding:2rem;text-align:center;">No reports yet</p>`
	}

	var b strings.Builder
	b.WriteString(`<table style="width:100%;border-collapse:collapse;">`)
	b.WriteString(`<thead><tr>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">ID</th>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">Source</th>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">Valid</th>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">Score</th>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">Status</th>`)
	b.WriteString(`<th style="text-align:left;padding:0.75rem 1rem;border-bottom:2px solid var(--border);color:var(--text-muted);font-size:0.875rem;">Created</th>`)
	b.WriteString(`</tr></thead><tbody>`)

	for _, row := range rows {
		statusColor := "var(--text-muted)"
		switch row.Status {
		case queue.StatusDone:
			statusColor = "var(--success)"
		case queue.StatusFailed:
			statusColor = "var(--danger)"
		case queue.StatusQueued:
			statusColor = "var(--warning)"
		case queue.StatusProcessing:
			statusColor = "var(--primary)"
		}

		valid := "no"
		if row.IsValid != 0 {
			valid = "yes"
		}
		created := row.CreatedAt.Format("Jan 2 15:04")

		b.WriteString(`<tr style="border-bottom:1px solid var(--border);">`)
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-family:monospace;font-size:0.8rem;">%s</td>`, html.EscapeString(shortID(row.Id))))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;">%s</td>`, html.EscapeString(row.Source)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;">%s</td>`, valid))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-weight:500;">%d</td>`, row.Score))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;"><span style="color:%s;font-weight:600;font-size:0.875rem;">%s</span></td>`, statusColor, html.EscapeString(row.Status)))
		b.WriteString(fmt.Sprintf(`<td style="padding:0.75rem 1rem;font-size:0.875rem;color:var(--text-muted);">%s</td>`, created))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
