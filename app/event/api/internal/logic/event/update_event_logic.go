// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"
	"time"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 更新活动信息（组织者或管理员）
func NewUpdateEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateEventLogic {
	return &UpdateEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateEventLogic) UpdateEvent(req *types.UpdateEventReq) (*types.EventInfo, error) {
	var updated *model.Event

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

		// 未提供的字段保持原值
		title := event.Title
		if req.Title != nil {
			title = *req.Title
		}
		description := event.Description
		if req.Description != nil {
			description = *req.Description
		}
		location := event.Location
		if req.Location != nil {
			location = *req.Location
		}
		maxParticipants := event.MaxParticipants
		if req.MaxParticipants != nil {
			maxParticipants = *req.MaxParticipants
		}

		if err := event.UpdateDetails(title, description, location, maxParticipants); err != nil {
			return err
		}

		if req.StartTime != nil || req.EndTime != nil {
			start := event.StartTime
			if req.StartTime != nil {
				start = *req.StartTime
			}
			end := event.EndTime
			if req.EndTime != nil {
				end = *req.EndTime
			}
			if err := event.UpdateDates(start, end, time.Now().Unix()); err != nil {
				return err
			}
		}

		if err := l.svcCtx.EventModel.Update(ctx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return toEventInfo(updated, true), nil
}
