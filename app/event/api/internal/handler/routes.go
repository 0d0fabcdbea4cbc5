// ============================================================================
// 路由注册
// ============================================================================
//
// 路由分组：
//   - 公开路由：活动列表、活动详情
//   - 认证路由：rest.WithJwt 校验签名 + UserAuthMiddleware 补充黑名单检查
//
// 路由命名规范：
//   - RESTful 风格，资源名使用复数：/events
//   - 状态转换使用 PATCH /events/:id/{publish|cancel|complete}
//
// ============================================================================

package handler

import (
	"net/http"

	"event-platform/app/event/api/internal/handler/event"
	"event-platform/app/event/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 公开路由（无需认证） ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/events",
				Handler: event.ListEventsHandler(ctx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/v1/events/:id",
				Handler: event.GetEventHandler(ctx),
			},
		},
	)

	// ==================== 需要认证的路由 ====================
	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{ctx.UserAuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/events",
					Handler: event.CreateEventHandler(ctx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/events/:id",
					Handler: event.UpdateEventHandler(ctx),
				},
				{
					Method:  http.MethodDelete,
					Path:    "/api/v1/events/:id",
					Handler: event.DeleteEventHandler(ctx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/api/v1/events/:id/publish",
					Handler: event.PublishEventHandler(ctx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/api/v1/events/:id/cancel",
					Handler: event.CancelEventHandler(ctx),
				},
				{
					Method:  http.MethodPatch,
					Path:    "/api/v1/events/:id/complete",
					Handler: event.CompleteEventHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/events/:id/join",
					Handler: event.JoinEventHandler(ctx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/api/v1/events/:id/leave",
					Handler: event.LeaveEventHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/events/my",
					Handler: event.MyJoinedEventsHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/events/organized",
					Handler: event.MyCreatedEventsHandler(ctx),
				},
			}...,
		),
		rest.WithJwt(ctx.Config.Auth.AccessSecret),
	)
}
