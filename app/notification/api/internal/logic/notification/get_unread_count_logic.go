// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package notification

import (
	"context"
	"strconv"

	"event-platform/app/notification/api/internal/svc"
	"event-platform/app/notification/api/internal/types"
	"event-platform/common/cache"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetUnreadCountLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 未读通知数量
func NewGetUnreadCountLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetUnreadCountLogic {
	return &GetUnreadCountLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// GetUnreadCount 未读数走缓存，标记已读时主动删除
func (l *GetUnreadCountLogic) GetUnreadCount() (*types.UnreadCountResp, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	key := cache.UnreadCountKey(userID)
	if cached, err := l.svcCtx.Redis.Get(l.ctx, key).Result(); err == nil {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return &types.UnreadCountResp{Count: count}, nil
		}
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	count, err := l.svcCtx.NotificationModel.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	// 缓存失败不影响主流程
	if err := l.svcCtx.Redis.Set(l.ctx, key,
		strconv.FormatInt(count, 10), cache.RandomTTL(cache.DefaultTTL)).Err(); err != nil {
		l.Errorf("未读数缓存写入失败: %v, user_id=%d", err, userID)
	}

	return &types.UnreadCountResp{Count: count}, nil
}
