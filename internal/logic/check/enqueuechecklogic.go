// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package check

import (
	"context"

	"github.com/joeblew999/plat-emailguard/internal/errorx"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"
	"github.com/joeblew999/plat-emailguard/pkg/queue"

	"github.com/zeromicro/go-zero/core/logx"
)

type EnqueueCheckLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewEnqueueCheckLogic(ctx context.Context, svcCtx *svc.ServiceContext) *EnqueueCheckLogic {
	return &EnqueueCheckLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *EnqueueCheckLogic) EnqueueCheck(req *types.EnqueueCheckRequest) (resp *types.EnqueueCheckResponse, err error) {
	if req.HTML == "" {
		return nil, errorx.ErrBadRequest("html is required")
	}

	id, err := l.svcCtx.Queue.Enqueue(l.ctx, queue.CheckJob{
		Source:  "api",
		HTML:    req.HTML,
		Subject: req.Subject,
		MJML:    req.MJML,
	})
	if err != nil {
		return nil, errorx.ErrInternal("failed to enqueue check: " + err.Error())
	}

	return &types.EnqueueCheckResponse{
		ID:     id,
		Status: queue.StatusQueued,
	}, nil
}
