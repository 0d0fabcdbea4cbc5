package notification

import (
	"context"
	"errors"
	"time"

	"event-platform/app/notification/api/internal/svc"
	"event-platform/app/notification/api/internal/types"
	"event-platform/app/notification/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"
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
	case errors.Is(err, model.ErrNotificationNotFound):
		return errorx.ErrNotificationNotFound()
	case errors.Is(err, context.DeadlineExceeded):
		return errorx.ErrStoreUnavailable(err)
	default:
		return errorx.ErrDBError(err)
	}
}

// currentUserID 从上下文取当前登录用户
func currentUserID(ctx context.Context) (uint64, error) {
	userID := ctxdata.GetUserIDFromCtx(ctx)
	if userID <= 0 {
		return 0, errorx.ErrUnauthorized()
	}
	return uint64(userID), nil
}

// toNotificationInfo 转换为接口表示
func toNotificationInfo(n *model.Notification) *types.NotificationInfo {
	info := &types.NotificationInfo{
		Id:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Metadata:  n.Metadata,
		Status:    n.Status,
		IsRead:    n.Status == model.StatusRead,
		CreatedAt: n.CreatedAt.Unix(),
	}
	if n.ReadAt != nil {
		info.ReadAt = n.ReadAt.Unix()
	}
	return info
}

// toNotificationInfoList 批量转换
func toNotificationInfoList(notifications []*model.Notification) []types.NotificationInfo {
	list := make([]types.NotificationInfo, 0, len(notifications))
	for _, n := range notifications {
		list = append(list, *toNotificationInfo(n))
	}
	return list
}
