// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package check

import (
	"context"

	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"
	"github.com/joeblew999/plat-emailguard/pkg/emailsafe"

	"github.com/zeromicro/go-zero/core/logx"
)

type ScoreLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewScoreLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ScoreLogic {
	return &ScoreLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Score calculates the quality score for any HTML, validated or not.
func (l *ScoreLogic) Score(req *types.ScoreRequest) (resp *types.ScoreResponse, err error) {
	qs := emailsafe.CalculateQualityScore(req.HTML)

	return &types.ScoreResponse{
		Score: qs.Score,
		Breakdown: types.ScoreBreakdown{
			Structure:     qs.Breakdown.Structure,
			Compatibility: qs.Breakdown.Compatibility,
			Accessibility: qs.Breakdown.Accessibility,
			Content:       qs.Breakdown.Content,
		},
	}, nil
}
