// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"net/http"

	"event-platform/app/event/api/internal/logic/event"
	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/common/response"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// 删除活动
func DeleteEventHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.EventIdReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := event.NewDeleteEventLogic(r.Context(), svcCtx)
		if err := l.DeleteEvent(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			response.Success(w, nil)
		}
	}
}
