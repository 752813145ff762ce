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

type SpamLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSpamLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SpamLogic {
	return &SpamLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SpamLogic) Spam(req *types.SpamRequest) (resp *types.SpamResponse, err error) {
	report := deliverability.CheckSpam(req.HTML, req.Subject)

	return &types.SpamResponse{
		Score:           report.Score,
		Risk:            string(report.Risk),
		Factors:         report.Factors,
		Recommendations: report.Recommendations,
	}, nil
}
