// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package notification

import (
	"context"

	"event-platform/app/notification/api/internal/svc"
	"event-platform/app/notification/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListUnreadNotificationsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 我的未读通知列表
func NewListUnreadNotificationsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListUnreadNotificationsLogic {
	return &ListUnreadNotificationsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListUnreadNotificationsLogic) ListUnreadNotifications(req *types.ListNotificationsReq) (*types.ListNotificationsResp, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	notifications, total, err := l.svcCtx.NotificationModel.FindUnreadByUserID(ctx, userID, req.Page, req.PageSize)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return &types.ListNotificationsResp{
		Notifications: toNotificationInfoList(notifications),
		Total:         total,
	}, nil
}
