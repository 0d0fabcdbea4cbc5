package base

import (
	"context"
	"errors"
	"time"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/model"
	"event-platform/common/errorx"
	"event-platform/common/utils/jwt"

	"github.com/google/uuid"
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
	case errors.Is(err, model.ErrUserNotFound):
		return errorx.ErrUserNotFound()
	case errors.Is(err, context.DeadlineExceeded):
		return errorx.ErrStoreUnavailable(err)
	default:
		return errorx.ErrDBError(err)
	}
}

// tokenPair 签发的双 Token
type tokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpireAt     int64
}

// issueTokens 为用户签发 Access/Refresh 双 Token
// 两个 Token 共享一对 jti，登出时按 accessJwtId 拉黑
func issueTokens(user *model.User, svcCtx *svc.ServiceContext) (*tokenPair, error) {
	role := jwt.Role(user.Role)
	accessId := uuid.NewString()
	refreshId := uuid.NewString()

	access, err := jwt.GenerateAccessToken(user.UserID, role, jwt.AuthConfig{
		Secret: svcCtx.Config.Auth.AccessSecret,
		Expire: svcCtx.Config.Auth.AccessExpire,
	}, accessId, refreshId)
	if err != nil {
		return nil, errorx.Wrap(errorx.CodeInternalError, err)
	}

	refresh, err := jwt.GenerateRefreshToken(user.UserID, role, jwt.AuthConfig{
		Secret: svcCtx.Config.Auth.RefreshSecret,
		Expire: svcCtx.Config.Auth.RefreshExpire,
	}, accessId, refreshId)
	if err != nil {
		return nil, errorx.Wrap(errorx.CodeInternalError, err)
	}

	return &tokenPair{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		ExpireAt:     access.ExpireAt,
	}, nil
}
