package event

import (
	"context"
	"errors"
	"time"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"
	"event-platform/common/utils/jwt"
)

// storeCtx 为存储操作加上有界超时
func storeCtx(ctx context.Context, svcCtx *svc.ServiceContext) (context.Context, context.CancelFunc) {
	timeout := time.Duration(svcCtx.Config.StoreTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// wrapStoreErr 将存储层错误映射为业务错误
func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}

	var bizErr *errorx.BizError
	if errors.As(err, &bizErr) {
		return bizErr
	}

	switch {
	case errors.Is(err, model.ErrEventNotFound):
		return errorx.ErrEventNotFound()
	case errors.Is(err, model.ErrEventConcurrentUpdate):
		return errorx.ErrConcurrencyConflict()
	case errors.Is(err, model.ErrDuplicateParticipant):
		return errorx.ErrAlreadyParticipant()
	case errors.Is(err, model.ErrParticipantNotFound):
		return errorx.ErrNotAParticipant()
	case errors.Is(err, model.ErrPageTooDeep):
		return errorx.ErrInvalidParams(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return errorx.ErrStoreUnavailable(err)
	default:
		return errorx.ErrDBError(err)
	}
}

// checkOwnership 管理员或组织者本人可操作
func checkOwnership(ctx context.Context, e *model.Event) error {
	if jwt.IsAdmin(ctx) {
		return nil
	}
	userID := ctxdata.GetUserIDFromCtx(ctx)
	if userID > 0 && e.IsOrganizer(uint64(userID)) {
		return nil
	}
	return errorx.ErrForbidden()
}

// toEventInfo 转换为接口表示
func toEventInfo(e *model.Event, withParticipants bool) *types.EventInfo {
	info := &types.EventInfo{
		Id:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Location:         e.Location,
		OrganizerId:      e.OrganizerID,
		StartTime:        e.StartTime,
		EndTime:          e.EndTime,
		MaxParticipants:  e.MaxParticipants,
		ParticipantCount: e.ParticipantCount(),
		IsFullyBooked:    e.IsFullyBooked(),
		Status:           e.Status,
		StatusText:       e.StatusText(),
		Version:          e.Version,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if withParticipants {
		info.Participants = e.ParticipantIDs()
	}
	return info
}

// toEventInfoList 批量转换（列表场景不带参与者明细）
func toEventInfoList(events []model.Event) []types.EventInfo {
	list := make([]types.EventInfo, 0, len(events))
	for i := range events {
		list = append(list, *toEventInfo(&events[i], false))
	}
	return list
}
