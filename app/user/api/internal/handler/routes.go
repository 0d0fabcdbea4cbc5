// ============================================================================
// 路由注册
// ============================================================================
//
// 路由分组：
//   - 公开路由：注册、登录、刷新Token
//   - 认证路由：登出、个人资料、修改密码
//
// ============================================================================

package handler

import (
	"net/http"

	"event-platform/app/user/api/internal/handler/base"
	"event-platform/app/user/api/internal/handler/user"
	"event-platform/app/user/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

// RegisterHandlers 注册所有路由
func RegisterHandlers(server *rest.Server, ctx *svc.ServiceContext) {
	// ==================== 公开路由（无需认证） ====================
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/auth/register",
				Handler: base.RegisterHandler(ctx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/auth/login",
				Handler: base.LoginHandler(ctx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/v1/auth/refresh",
				Handler: base.RefreshTokenHandler(ctx),
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
					Path:    "/api/v1/auth/logout",
					Handler: user.LogoutHandler(ctx),
				},
				{
					Method:  http.MethodGet,
					Path:    "/api/v1/users/profile",
					Handler: user.GetProfileHandler(ctx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/users/profile",
					Handler: user.UpdateProfileHandler(ctx),
				},
				{
					Method:  http.MethodPut,
					Path:    "/api/v1/users/password",
					Handler: user.ChangePasswordHandler(ctx),
				},
			}...,
		),
		rest.WithJwt(ctx.Config.Auth.AccessSecret),
	)
}
