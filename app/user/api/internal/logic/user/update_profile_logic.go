// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"
	"strings"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"
	"event-platform/common/errorx"
	"event-platform/common/utils/validate"

	"github.com/zeromicro/go-zero/core/logx"
)

type UpdateProfileLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 更新资料
func NewUpdateProfileLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UpdateProfileLogic {
	return &UpdateProfileLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *UpdateProfileLogic) UpdateProfile(req *types.UpdateProfileReq) (*types.UserInfo, error) {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return nil, err
	}

	nickname := strings.TrimSpace(req.Nickname)
	if !validate.IsValidUsername(nickname) {
		return nil, errorx.ErrInvalidParams("昵称需为2-20位字母、数字、下划线或汉字")
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	user, err := l.svcCtx.UserModel.FindByUserID(ctx, userID)
	if err != nil {
		return nil, wrapStoreErr(err)
	}

	user.Nickname = nickname
	if err := l.svcCtx.UserModel.Update(ctx, user); err != nil {
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
