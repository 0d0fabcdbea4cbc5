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

type CancelEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消活动（Draft/Published → Cancelled）
func NewCancelEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CancelEventLogic {
	return &CancelEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CancelEventLogic) CancelEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	var cancelled *model.Event
	var recipients []uint64

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

		// 先记录取消前的参与者名单，通知发给他们
		recipients = event.ParticipantIDs()

		if err := event.Cancel(); err != nil {
			return err
		}
		if err := l.svcCtx.EventModel.Update(ctx, event); err != nil {
			return err
		}
		cancelled = event
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	if len(recipients) > 0 {
		l.svcCtx.Producer.PublishEventCancelled(l.ctx, cancelled.ID, cancelled.Title, recipients)
	}

	return toEventInfo(cancelled, true), nil
}
