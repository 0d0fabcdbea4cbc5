// ============================================================================
// 路由注册
// ============================================================================
//
// 通知接口全部需要认证：rest.WithJwt 校验签名 + UserAuthMiddleware 补充黑名单检查
//
// ============================================================================

package handler

import (
	"net/http"

	"event-platform/app/notification/api/internal/handler/notification"
	"event-platform/app/notification/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.UserAuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/notifications",
					Handler: notification.ListNotificationsHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/notifications/unread",
					Handler: notification.ListUnreadNotificationsHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/notifications/unread/count",
					Handler: notification.GetUnreadCountHandler(ctx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/api/v1/notifications/:id/read",
					Handler: notification.MarkNotificationReadHandler(ctx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/api/v1/notifications/read-all",
					Handler: notification.MarkAllReadHandler(ctx),
				},
			}...,
		),
		rest.WithJwt(ctx.Config.Auth.AccessSecret),
	)
}
