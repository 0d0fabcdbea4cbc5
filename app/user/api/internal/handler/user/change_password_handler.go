// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"net/http"

	"event-platform/app/user/api/internal/logic/user"
	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 修改密码
func ChangePasswordHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChangePasswordReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := user.NewChangePasswordLogic(r.Context(), svcCtx)
		if err := l.ChangePassword(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.Success(w, nil)
		}
	}
}
