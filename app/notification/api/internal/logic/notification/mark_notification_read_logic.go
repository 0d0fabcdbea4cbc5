// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package notification

import (
	"context"

	"event-platform/app/notification/api/internal/svc"
	"event-platform/app/notification/api/internal/types"
	"event-platform/common/cache"

	"github.com/zeromicro/go-zero/core/logx"
)

type MarkNotificationReadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 标记通知已读
func NewMarkNotificationReadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarkNotificationReadLogic {
	return &MarkNotificationReadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// MarkNotificationRead 标记已读
// 幂等：已读通知再次标记直接返回成功；
// 别人的通知对当前用户不可见，按不存在处理
func (l *MarkNotificationReadLogic) MarkNotificationRead(req *types.NotificationIdReq) (*types.NotificationInfo, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	notification, err := l.svcCtx.NotificationModel.MarkAsRead(ctx, userID, req.Id)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	// 未读数缓存失效
	if err := l.svcCtx.Redis.Del(l.ctx, cache.UnreadCountKey(userID)).Err(); err != nil {
		l.Errorf("未读数缓存删除失败: %v, user_id=%d", err, userID)
	}

	return toNotificationInfo(notification), nil
}
