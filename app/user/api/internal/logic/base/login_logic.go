// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package base

import (
	"context"
	"errors"
	"strings"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"
	"event-platform/app/user/model"
	"event-platform/common/errorx"
	"event-platform/common/utils/encrypt"

	"github.com/zeromicro/go-zero/core/logx"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 登录
func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login(req *types.LoginReq) (*types.LoginResp, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	user, err := l.svcCtx.UserModel.FindByEmail(ctx, email)
	if err != nil {
		// 账号不存在与密码错误返回同一个错误，避免账号探测
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, errorx.ErrBadCredentials()
		}
		return nil, wrapStoreErr(err)
	}

	if !encrypt.ComparePassword(req.Password, user.Password) {
		return nil, errorx.ErrBadCredentials()
	}
	if user.Status != model.UserStatusNormal {
		return nil, errorx.ErrForbidden()
	}

	tokens, err := issueTokens(user, l.svcCtx)
	if err != nil {
		return nil, err
	}

	l.Infof("用户登录成功: user_id=%d", user.UserID)
	return &types.LoginResp{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpireAt:     tokens.ExpireAt,
		UserInfo: types.UserInfo{
			UserId:    user.UserID,
			Email:     user.Email,
			Nickname:  user.Nickname,
			Role:      user.Role,
			CreatedAt: user.CreateTime.Unix(),
		},
	}, nil
}
