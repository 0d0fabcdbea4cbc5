// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type MyCreatedEventsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 我组织的活动列表
func NewMyCreatedEventsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MyCreatedEventsLogic {
	return &MyCreatedEventsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MyCreatedEventsLogic) MyCreatedEvents(req *types.MyEventsReq) (*types.ListEventsResp, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	events, total, err := l.svcCtx.EventModel.ListByOrganizer(ctx, uint64(userID), &model.Pagination{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return &types.ListEventsResp{
		Events: toEventInfoList(events),
		Total:  total,
	}, nil
}
