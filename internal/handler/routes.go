// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	check "github.com/joeblew999/plat-emailguard/internal/handler/check"
	report "github.com/joeblew999/plat-emailguard/internal/handler/report"
	stats "github.com/joeblew999/plat-emailguard/internal/handler/stats"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/check",
				Handler: check.CheckHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/checks",
				Handler: check.EnqueueCheckHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/score",
				Handler: check.ScoreHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/optimize",
				Handler: check.OptimizeHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/text",
				Handler: check.TextHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/spam",
				Handler: check.SpamHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/deliverability",
				Handler: check.DeliverabilityHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/reports",
				Handler: report.ListReportsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/reports/:id",
				Handler: report.GetReportHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/stats",
				Handler: stats.GetStatsHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
