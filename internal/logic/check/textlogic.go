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

type TextLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTextLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TextLogic {
	return &TextLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *TextLogic) Text(req *types.TextRequest) (resp *types.TextResponse, err error) {
	return &types.TextResponse{
		Text: emailsafe.ExtractPlainText(req.HTML),
	}, nil
}
