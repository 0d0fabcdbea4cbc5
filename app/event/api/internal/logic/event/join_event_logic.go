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

type JoinEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 报名活动
// 容量检查是先查后写，靠活动行的版本 CAS 防止并发下超员：
// 冲突时重读聚合重做校验再重试，重试耗尽返回 409
func NewJoinEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *JoinEventLogic {
	return &JoinEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *JoinEventLogic) JoinEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}

	var joined *model.Event

	err := withRetry(func() error {
		ctx, cancel := storeCtx(l.ctx, l.svcCtx)
		defer cancel()

		event, err := l.svcCtx.EventModel.FindByID(ctx, req.Id)
		if err != nil {
			return err
		}

		// 领域校验（基于本次读取的版本）
		if err := event.AddParticipant(uint64(userID)); err != nil {
			return err
		}

		// 熔断保护下执行事务写入
		err = l.svcCtx.JoinBreaker.DoWithAcceptable(
			func() error {
				return l.svcCtx.EventModel.Join(ctx, event.ID, event.Version, uint64(userID))
			},
			func(err error) bool {
				// 业务冲突不计入熔断失败
				return err == nil ||
					errors.Is(err, model.ErrEventConcurrentUpdate) ||
					errors.Is(err, model.ErrDuplicateParticipant)
			},
		)
		if err != nil {
			return err
		}

		event.Version++
		joined = event
		return nil
	})
	if err != nil {
		if errors.Is(err, breaker.ErrServiceUnavailable) {
			l.Errorf("报名写入熔断: eventId=%d, userId=%d", req.Id, userID)
			return nil, errorx.ErrStoreUnavailable(err)
		}
		return nil, wrapStoreErr(err)
	}

	// 通知组织者（尽力而为）
	l.svcCtx.Producer.PublishEventJoined(l.ctx, joined.ID, joined.Title, joined.OrganizerID)

	return toEventInfo(joined, true), nil
}
