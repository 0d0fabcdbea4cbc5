// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 活动详情
func NewGetEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetEventLogic {
	return &GetEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetEventLogic) GetEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	event, err := l.svcCtx.EventModel.FindByID(ctx, req.Id)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return toEventInfo(event, true), nil
}
