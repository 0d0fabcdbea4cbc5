// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package user

import (
	"context"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/api/internal/types"
	"event-platform/common/errorx"
	"event-platform/common/utils/encrypt"
	"event-platform/common/utils/validate"

	"github.com/zeromicro/go-zero/core/logx"
)

type ChangePasswordLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 修改密码
func NewChangePasswordLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChangePasswordLogic {
	return &ChangePasswordLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChangePasswordLogic) ChangePassword(req *types.ChangePasswordReq) error {
	userID, err := currentUserID(l.ctx)
	if err != nil {
		return err
	}

	if !validate.IsValidPassword(req.NewPassword) {
		return errorx.ErrInvalidParams("密码需为8-64位且包含字母和数字")
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	user, err := l.svcCtx.UserModel.FindByUserID(ctx, userID)
	if err != nil {
		return wrapStoreErr(err)
	}

	if !encrypt.ComparePassword(req.OldPassword, user.Password) {
		return errorx.ErrBadCredentials()
	}

	if err := l.svcCtx.UserModel.UpdatePassword(ctx, userID, encrypt.EncryptPassword(req.NewPassword)); err != nil {
		return wrapStoreErr(err)
	}

	l.Infof("用户修改密码成功: user_id=%d", userID)
	return nil
}
