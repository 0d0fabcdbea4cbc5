// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package notification

import (
	"net/http"

	"event-platform/app/notification/api/internal/logic/notification"
	"event-platform/app/notification/api/internal/svc"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 全部标记已读
func MarkAllReadHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := notification.NewMarkAllReadLogic(r.Context(), svcCtx)
		resp, err := l.MarkAllRead()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.Success(w, resp)
		}
	}
}
