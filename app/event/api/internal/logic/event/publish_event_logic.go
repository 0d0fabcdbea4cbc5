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

type PublishEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 发布活动（Draft → Published）
func NewPublishEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *PublishEventLogic {
	return &PublishEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *PublishEventLogic) PublishEvent(req *types.EventIdReq) (*types.EventInfo, error) {
	var published *model.Event

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
		if err := event.Publish(); err != nil {
			return err
		}
		if err := l.svcCtx.EventModel.Update(ctx, event); err != nil {
			return err
		}
		published = event
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	// 有参与者时群发通知（发布失败不回滚已提交的状态变更）
	if ids := published.ParticipantIDs(); len(ids) > 0 {
		l.svcCtx.Producer.PublishEventPublished(l.ctx, published.ID, published.Title, ids)
	}

	return toEventInfo(published, true), nil
}
