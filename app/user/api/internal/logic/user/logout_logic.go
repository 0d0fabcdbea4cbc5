// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"net/http"
	"strings"

	"event-platform/app/user/api/internal/svc"
	"event-platform/common/errorx"
	"event-platform/common/utils/jwt"

	"github.com/zeromicro/go-zero/core/logx"
)

type LogoutLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 登出
func NewLogoutLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LogoutLogic {
	return &LogoutLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Logout 登出：把当前 Access Token 拉黑
// Token 在有效期内仍能通过签名校验，黑名单让它立即失效
func (l *LogoutLogic) Logout(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return errorx.ErrInvalidToken()
	}

	claims, err := jwt.ParseToken(parts[1], l.svcCtx.Config.Auth.AccessSecret)
	if err != nil {
		return errorx.ErrInvalidToken()
	}

	if err := jwt.BlacklistAccessToken(l.ctx, l.svcCtx.Redis, claims); err != nil {
		l.Errorf("Token 拉黑失败: %v, user_id=%d", err, claims.UserId)
		return errorx.ErrCacheError(err)
	}

	l.Infof("用户登出成功: user_id=%d", claims.UserId)
	return nil
}
