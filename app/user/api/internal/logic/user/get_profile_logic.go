// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 个人资料
func NewGetProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetProfileLogic {
	return &GetProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetProfileLogic) GetProfile() (*types.UserInfo, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	user, err := l.svcCtx.UserModel.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	return &types.UserInfo{
		UserId:    user.UserID,
		Email:     user.Email,
		Nickname:  user.Nickname,
		Role:      user.Role,
		CreatedAt: user.CreateTime.Unix(),
	}, nil
}
