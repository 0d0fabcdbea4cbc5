// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"net/http"

	"event-platform/app/user/api/internal/logic/user"
	"event-platform/app/user/api/internal/svc"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 登出
func LogoutHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := user.NewLogoutLogic(r.Context(), svcCtx)
		if err := l.Logout(r); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.Success(w, nil)
		}
	}
}
