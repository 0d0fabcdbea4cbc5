// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"
	"errors"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/breaker"
	"github.com/zeromicro/go-zero/core/logx"
)

type LeaveEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 取消报名
func NewLeaveEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LeaveEventLogic {
	return &LeaveEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LeaveEventLogic) LeaveEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	var left *model.Event

	err := withRetry(func() error {
		ctx, cancel := storeCtx(l.ctx, l.svcCtx)
		defer cancel()

		event, err := l.svcCtx.EventModel.FindByID(ctx, req.Id)
		if err != nil {
			return err
		}

		if err := event.RemoveParticipant(uint64(userID)); err != nil {
			return err
		}

		err = l.svcCtx.JoinBreaker.DoWithAcceptable(
			func() error {
				return l.svcCtx.EventModel.Leave(ctx, event.ID, event.Version, uint64(userID))
			},
			func(err error) bool {
				return err == nil ||
					errors.Is(err, model.ErrEventConcurrentUpdate) ||
					errors.Is(err, model.ErrParticipantNotFound)
			},
		)
		if err != nil {
			return err
		}

		event.Version++
		left = event
		return nil
	})
	if err != nil {
		if errors.Is(err, breaker.ErrServiceUnavailable) {
			l.Errorf("取消报名写入熔断: eventId=%d, userId=%d", req.Id, userID)
			return nil, errorx.ErrStoreUnavailable(err)
		}
		return nil, wrapStoreErr(err)
	}

	l.svcCtx.Producer.PublishEventLeft(l.ctx, left.ID, left.Title, left.OrganizerID)

	return toEventInfo(left, true), nil
}
