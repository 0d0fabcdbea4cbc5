// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package base

import (
	"context"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"
	"event-platform/app/user/model"
	"event-platform/common/errorx"
	"event-platform/common/utils/jwt"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

type RefreshTokenLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 刷新Token
func NewRefreshTokenLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshTokenLogic {
	return &RefreshTokenLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// RefreshToken 用 Refresh Token 换取新的 Access Token
// Refresh Token 本身不续期，到期后需要重新登录
func (l *RefreshTokenLogic) RefreshToken(req *types.RefreshTokenReq) (*types.RefreshTokenResp, error) {
	claims, err := jwt.ParseToken(req.RefreshToken, l.svcCtx.Config.Auth.RefreshSecret)
	if err != nil {
		return nil, errorx.ErrInvalidToken()
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	// 确认用户仍然有效
	user, err := l.svcCtx.UserModel.FindByUserID(ctx, claims.UserId)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if user.Status != model.UserStatusNormal {
		return nil, errorx.ErrForbidden()
	}

	// 保留 refreshJwtId，换一个新的 accessJwtId
	access, err := jwt.GenerateAccessToken(user.UserID, jwt.Role(user.Role), jwt.AuthConfig{
		Secret: l.svcCtx.Config.Auth.AccessSecret,
		Expire: l.svcCtx.Config.Auth.AccessExpire,
	}, uuid.NewString(), claims.RefreshJwtId)
	if err != nil {
		return nil, errorx.Wrap(errorx.CodeInternalError, err)
	}

	return &types.RefreshTokenResp{
		AccessToken: access.Token,
		ExpireAt:    access.ExpireAt,
	}, nil
}
