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

type MarkAllReadLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 全部标记已读
func NewMarkAllReadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MarkAllReadLogic {
	return &MarkAllReadLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MarkAllReadLogic) MarkAllRead() (*types.MarkAllReadResp, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	affected, err := l.svcCtx.NotificationModel.MarkAllAsRead(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	// 未读数缓存失效
	if err := l.svcCtx.Redis.Del(l.ctx, cache.UnreadCountKey(userID)).Err(); err != nil {
		l.Errorf("未读数缓存删除失败: %v, user_id=%d", err, userID)
	}

	return &types.MarkAllReadResp{Affected: affected}, nil
}
