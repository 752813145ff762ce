// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package check

import (
	"context"

	"github.com/joeblew999/plat-emailguard/internal/errorx"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"
	"github.com/joeblew999/plat-emailguard/pkg/render"

	"github.com/zeromicro/go-zero/core/logx"
)

type CheckLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCheckLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CheckLogic {
	return &CheckLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Check runs a document through the pipeline synchronously. The pipeline
// itself is total, so the only request errors are MJML render failures and
// rate limiting.
func (l *CheckLogic) Check(req *types.CheckRequest) (resp *types.CheckResponse, err error) {
	html := req.HTML
	if req.MJML {
		rendered, err := render.MJML(html)
		if err != nil {
			return nil, errorx.ErrBadRequest("failed to render MJML: " + err.Error())
		}
		html = rendered
	}

	result, score, delivReport, err := l.svcCtx.Engine.CheckNow(l.ctx, html, req.Subject)
	if err != nil {
		return nil, errorx.ErrInternal("check failed: " + err.Error())
	}

	return &types.CheckResponse{
		IsValid:       result.IsValid,
		SanitizedHTML: result.SanitizedHTML,
		Issues:        result.Issues,
		Fixes:         result.Fixes,
		Score:         score.Score,
		Breakdown: types.ScoreBreakdown{
			Structure:     score.Breakdown.Structure,
			Compatibility: score.Breakdown.Compatibility,
			Accessibility: score.Breakdown.Accessibility,
			Content:       score.Breakdown.Content,
		},
		PlainText:      emailsafe.ExtractPlainText(result.SanitizedHTML),
		Deliverability: delivReport.Score,
	}, nil
}
