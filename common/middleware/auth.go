package middleware

import (
	"net/http"
	"strings"

	"event-platform/common/ctxdata"
	"event-platform/common/errorx"
	"event-platform/common/response"
	"event-platform/common/utils/jwt"

	"github.com/redis/go-redis/v9"
)

// RoleAuthMiddleware 角色鉴权中间件
//
// 叠加在 rest.WithJwt 之上使用：go-zero 已经完成签名校验并把 claims
// 注入 context，这里补充黑名单检查和角色检查。
type RoleAuthMiddleware struct {
	redis        *redis.Client
	accessSecret string
	role         jwt.Role
}

// NewUserAuthMiddleware 创建普通用户鉴权中间件（admin 同样放行）
func NewUserAuthMiddleware(rdb *redis.Client, accessSecret string) *RoleAuthMiddleware {
	return &RoleAuthMiddleware{redis: rdb, accessSecret: accessSecret, role: jwt.RoleUser}
}

// NewAdminAuthMiddleware 创建管理员鉴权中间件
func NewAdminAuthMiddleware(rdb *redis.Client, accessSecret string) *RoleAuthMiddleware {
	return &RoleAuthMiddleware{redis: rdb, accessSecret: accessSecret, role: jwt.RoleAdmin}
}

func (m *RoleAuthMiddleware) Handle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if m == nil {
			response.Fail(w, errorx.ErrInternalError())
			return
		}

		ctx := r.Context()
		userId := ctxdata.GetUserIDFromCtx(ctx)
		if userId <= 0 {
			response.Fail(w, errorx.ErrUnauthorized())
			return
		}

		if m.role == jwt.RoleAdmin && !jwt.IsAdmin(ctx) {
			response.Fail(w, errorx.ErrForbidden())
			return
		}

		// 检查黑名单（登出后的 Token 在有效期内仍能通过签名校验）
		if m.redis != nil {
			token := r.Header.Get("Authorization")
			parts := strings.Split(token, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				isBlacklisted, _ := jwt.CheckTokenBlacklist(ctx, m.redis, parts[1], m.accessSecret)
				if isBlacklisted {
					response.Fail(w, errorx.ErrInvalidToken())
					return
				}
			}
		}

		next(w, r.WithContext(ctx))
	}
}
