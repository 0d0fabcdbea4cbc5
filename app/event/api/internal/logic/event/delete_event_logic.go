// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package event

import (
	"context"

	"event-platform/app/event/api/internal/svc"
	"event-platform/app/event/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type DeleteEventLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 删除活动（组织者或管理员）
// 已送达的通知不随活动删除而撤回
func NewDeleteEventLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DeleteEventLogic {
	return &DeleteEventLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *DeleteEventLogic) DeleteEvent(req *types.EventIdReq) error {
	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	event, err := l.svcCtx.EventModel.FindByID(ctx, req.Id)
	if err != nil {
		return wrapStoreErr(err)
	}
	if err := checkOwnership(l.ctx, event); err != nil {
		return err
	}

	if err := l.svcCtx.EventModel.Delete(ctx, req.Id); err != nil {
		l.Errorf("删除活动失败: eventId=%d, err=%v", req.Id, err)
		return wrapStoreErr(err)
	}
	return nil
}
