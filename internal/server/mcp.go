package server

import (
	"context"
	"fmt"

	"github.com/joeblew999/plat-emailguard/internal/model"
	"github.com/joeblew999/plat-emailguard/pkg/checker"
	"github.com/joeblew999/plat-emailguard/pkg/deliverability"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
	"github.com/joeblew999/plat-emailguard/pkg/queue"
	"github.com/zeromicro/go-zero/mcp"
)

// RegisterMCPTools registers all MCP tools for the email checking platform.
func RegisterMCPTools(s mcp.McpServer, engine *checker.Engine, q *queue.Queue, reports model.ReportsModel) {
	registerCheckTool(s, engine)
	registerScoreTool(s)
	registerOptimizeTool(s)
	registerExtractTextTool(s)
	registerSpamCheckTool(s)
	registerGetReportTool(s, reports)
	registerReportsResource(s, reports)
}

func registerCheckTool(s mcp.McpServer, engine *checker.Engine) {
	s.RegisterTool(mcp.Tool{
		Name:        "check_email",
		Description: "Validate and sanitize email HTML. Removes dangerous content, wraps fragments in an email-safe document, and returns the quality score with any issues found.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"html": map[string]any{
					"type":        "string",
					"description": "Email HTML to validate",
				},
				"subject": map[string]any{
					"type":        "string",
					"description": "Subject line, used for deliverability checks (optional)",
				},
			},
			Required: []string{"html"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				HTML    string `json:"html"`
				Subject string `json:"subject"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			result, score, report, err := engine.CheckNow(ctx, args.HTML, args.Subject)
			if err != nil {
				return nil, fmt.Errorf("check failed: %w", err)
			}

			return map[string]any{
				"is_valid":             result.IsValid,
				"sanitized_html":       result.SanitizedHTML,
				"issues":               result.Issues,
				"fixes":                result.Fixes,
				"score":                score.Score,
				"breakdown":            score.Breakdown,
				"deliverability_score": report.Score,
			}, nil
		},
	})
}

func registerScoreTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "quality_score",
		Description: "Score email HTML from 0 to 100 across structure, compatibility, accessibility and content categories.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"html": map[string]any{
					"type":        "string",
					"description": "Email HTML to score",
				},
			},
			Required: []string{"html"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				HTML string `json:"html"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			score := emailsafe.CalculateQualityScore(args.HTML)

			return map[string]any{
				"score":     score.Score,
				"breakdown": score.Breakdown,
			}, nil
		},
	})
}

func registerOptimizeTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "optimize_html",
		Description: "Rewrite email HTML for maximum email client compatibility. Replaces unsupported CSS and injects reset styles.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"html": map[string]any{
					"type":        "string",
					"description": "Email HTML to optimize",
				},
			},
			Required: []string{"html"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				HTML string `json:"html"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			optimized := emailsafe.OptimizeForEmailClients(args.HTML)

			return map[string]any{
				"html": optimized,
				"size": len(optimized),
			}, nil
		},
	})
}

func registerExtractTextTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "extract_text",
		Description: "Extract the plain-text rendition of email HTML, suitable for the text/plain MIME part.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"html": map[string]any{
					"type":        "string",
					"description": "Email HTML to extract text from",
				},
			},
			Required: []string{"html"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				HTML string `json:"html"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			text := emailsafe.ExtractPlainText(args.HTML)

			return map[string]any{
				"text":   text,
				"length": len(text),
			}, nil
		},
	})
}

func registerSpamCheckTool(s mcp.McpServer) {
	s.RegisterTool(mcp.Tool{
		Name:        "spam_check",
		Description: "Assess the spam risk of an email's subject and body. Returns the accumulated spam score, a risk classification and recommendations.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"html": map[string]any{
					"type":        "string",
					"description": "Email HTML body",
				},
				"subject": map[string]any{
					"type":        "string",
					"description": "Email subject line",
				},
			},
			Required: []string{"html"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				HTML    string `json:"html"`
				Subject string `json:"subject"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			report := deliverability.CheckSpam(args.HTML, args.Subject)

			return map[string]any{
				"score":           report.Score,
				"risk":            report.Risk,
				"factors":         report.Factors,
				"recommendations": report.Recommendations,
			}, nil
		},
	})
}

func registerGetReportTool(s mcp.McpServer, reports model.ReportsModel) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_report",
		Description: "Get a stored validation report by its ID.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "Report ID returned from an enqueued check",
				},
			},
			Required: []string{"id"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ID string `json:"id"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			row, err := reports.FindOne(ctx, args.ID)
			if err != nil {
				return nil, fmt.Errorf("report not found: %s", args.ID)
			}

			return map[string]any{
				"id":       row.Id,
				"source":   row.Source,
				"status":   row.Status,
				"is_valid": row.IsValid != 0,
				"issues":   model.ParseStringList(row.Issues),
				"fixes":    model.ParseStringList(row.Fixes),
				"score":    row.Score,
				"error":    model.NullStringValue(row.Error),
			}, nil
		},
	})
}

func registerReportsResource(s mcp.McpServer, reports model.ReportsModel) {
	s.RegisterResource(mcp.Resource{
		Name:        "reports",
		URI:         "emailguard://reports",
		Description: "Recent email validation reports",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			rows, err := reports.ListByStatus(ctx, "", 20)
			if err != nil {
				return mcp.ResourceContent{}, err
			}

			content := "Recent reports:\n"
			for _, row := range rows {
				content += fmt.Sprintf("- %s [%s] score %d, valid %t\n",
					row.Id, row.Status, row.Score, row.IsValid != 0)
			}

			return mcp.ResourceContent{
				URI:      "emailguard://reports",
				MimeType: "text/plain",
				Text:     content,
			}, nil
		},
	})
}
