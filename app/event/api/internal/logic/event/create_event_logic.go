// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"
	"time"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"
	"event-platform/app/event/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"

	"github.com/zeromicro/go-zero/core/logx"
)

type CreateEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 创建活动（草稿状态）
func NewCreateEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateEventLogic {
	return &CreateEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CreateEventLogic) CreateEvent(req *types.CreateEventReq) (*types.EventInfo, error) {
	userID := ctxdata.GetUserIDFromCtx(l.ctx)
	if userID <= 0 {
		return nil, errorx.ErrUnauthorized()
	}
	if req.Title == "" {
		return nil, errorx.ErrInvalidParams("活动标题不能为空")
	}

	dateRange, err := model.NewDateRange(req.StartTime, req.EndTime, time.Now().Unix())
	if err != nil {
		return nil, err
	}

	event := model.NewEvent(req.Title, req.Description, req.Location, dateRange, uint64(userID), req.MaxParticipants)

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()
	if err := l.svcCtx.EventModel.Create(ctx, event); err != nil {
		l.Errorf("创建活动失败: userId=%d, err=%v", userID, err)
		return nil, wrapStoreErr(err)
	}

	return toEventInfo(event, false), nil
}
