// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package report

import (
	"context"
	"errors"

	"github.com/joeblew999/plat-emailguard/internal/errorx"
	"github.com/joeblew999/plat-emailguard/internal/model"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetReportLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetReportLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetReportLogic {
	return &GetReportLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetReportLogic) GetReport(req *types.GetReportRequest) (resp *types.ReportResponse, err error) {
	row, err := l.svcCtx.Reports.FindOne(l.ctx, req.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errorx.ErrNotFound("report not found: " + req.ID)
		}
		return nil, errorx.ErrInternal("failed to load report: " + err.Error())
	}

	r := toReportResponse(row, true)
	return &r, nil
}

// toReportResponse maps a stored row to the API shape. HTML bodies are only
// included when withBody is set, so list views stay light.
func toReportResponse(row *model.Report, withBody bool) types.ReportResponse {
	resp := types.ReportResponse{
		ID:      row.Id,
		Source:  row.Source,
		Status:  row.Status,
		IsValid: row.IsValid != 0,
		Issues:  model.ParseStringList(row.Issues),
		Fixes:   model.ParseStringList(row.Fixes),
		Score:   row.Score,
		Breakdown: types.ScoreBreakdown{
			Structure:     row.ScoreStructure,
			Compatibility: row.ScoreCompatibility,
			Accessibility: row.ScoreAccessibility,
			Content:       row.ScoreContent,
		},
		Error:     model.NullStringValue(row.Error),
		CreatedAt: row.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if withBody {
		resp.SanitizedHTML = row.SanitizedHtml
		resp.PlainText = model.NullStringValue(row.PlainText)
	}
	return resp
}
