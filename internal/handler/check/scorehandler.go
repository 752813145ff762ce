// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package check

import (
	"net/http"

	"github.com/joeblew999/plat-emailguard/internal/logic/check"
	"github.com/joeblew999/plat-emailguard/internal/svc"
	"github.com/joeblew999/plat-emailguard/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ScoreHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ScoreRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := check.NewScoreLogic(r.Context(), svcCtx)
		resp, err := l.Score(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
