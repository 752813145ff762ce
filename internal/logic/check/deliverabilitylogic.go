// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package check

import (
	"context"

	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"
	"github.com/joeblew999/plat-emailguard/pkg/deliverability"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeliverabilityLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDeliverabilityLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeliverabilityLogic {
	return &DeliverabilityLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeliverabilityLogic) Deliverability(req *types.DeliverabilityRequest) (resp *types.DeliverabilityResponse, err error) {
	report := deliverability.Check(req.HTML, req.Subject)

	return &types.DeliverabilityResponse{
		Score:           report.Score,
		Issues:          report.Issues,
		Warnings:        report.Warnings,
		Recommendations: report.Recommendations,
	}, nil
}
