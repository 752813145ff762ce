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

type OptimizeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOptimizeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OptimizeLogic {
	return &OptimizeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *OptimizeLogic) Optimize(req *types.OptimizeRequest) (resp *types.OptimizeResponse, err error) {
	html := emailsafe.OptimizeForEmailClients(req.HTML)

	return &types.OptimizeResponse{
		HTML: html,
		Size: len(html),
	}, nil
}
