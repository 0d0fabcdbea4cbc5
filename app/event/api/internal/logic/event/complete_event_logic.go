// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type CompleteEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 结束活动（Published → Completed）
func NewCompleteEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CompleteEventLogic {
	return &CompleteEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CompleteEventLogic) CompleteEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	var completed *model.Event

	err := withRetry(func() error {
		ctx, cancel := storeCtx(l.ctx, l.svcCtx)
		defer cancel()

		event, err := l.svcCtx.EventModel.FindByID(ctx, req.Id)
		if err != nil {
			return err
		}
		if err := checkOwnership(l.ctx, event); err != nil {
			return err
		}
		if err := event.Complete(); err != nil {
			return err
		}
		if err := l.svcCtx.EventModel.Update(ctx, event); err != nil {
			return err
		}
		completed = event
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return toEventInfo(completed, true), nil
}
