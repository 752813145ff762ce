// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package report

import (
	"context"

	"github.com/joeblew999/plat-emailguard/internal/errorx"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListReportsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListReportsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListReportsLogic {
	return &ListReportsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListReportsLogic) ListReports(req *types.ListReportsRequest) (resp *types.ListReportsResponse, err error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := l.svcCtx.Reports.ListByStatus(l.ctx, req.Status, limit)
	if err != nil {
		return nil, errorx.ErrInternal("failed to list reports: " + err.Error())
	}

	reports := make([]types.ReportResponse, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, toReportResponse(row, false))
	}

	return &types.ListReportsResponse{
		Reports: reports,
		Count:   len(reports),
	}, nil
}
