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
	"event-platform/common/utils/validate"

	mysqlerr "github.com/go-sql-driver/mysql"
	"github.com/zeromicro/go-zero/core/logx"
	"gorm.io/gorm"
)

type RegisterLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 注册
func NewRegisterLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RegisterLogic {
	return &RegisterLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RegisterLogic) Register(req *types.RegisterReq) (*types.RegisterResp, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	nickname := strings.TrimSpace(req.Nickname)

	if !validate.IsValidEmail(email) {
		return nil, errorx.ErrInvalidParams("邮箱格式不正确")
	}
	if !validate.IsValidUsername(nickname) {
		return nil, errorx.ErrInvalidParams("昵称需为2-20位字母、数字、下划线或汉字")
	}
	if !validate.IsValidPassword(req.Password) {
		return nil, errorx.ErrInvalidParams("密码需为8-64位且包含字母和数字")
	}

	ctx, cancel := storeCtx(l.ctx, l.svcCtx)
	defer cancel()

	exists, err := l.svcCtx.UserModel.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	if exists {
		return nil, errorx.ErrEmailTaken()
	}

	user := &model.User{
		Email:    email,
		Nickname: nickname,
		Password: encrypt.EncryptPassword(req.Password),
		Role:     model.RoleUser,
		Status:   model.UserStatusNormal,
	}
	if err := l.svcCtx.UserModel.Create(ctx, user); err != nil {
		// 并发注册时唯一索引兜底
		if isDuplicateKeyErr(err) {
			return nil, errorx.ErrEmailTaken()
		}
		return nil, wrapStoreErr(err)
	}

	l.Infof("用户注册成功: user_id=%d", user.UserID)
	return &types.RegisterResp{UserId: user.UserID}, nil
}

// isDuplicateKeyErr 判断是否为唯一索引冲突
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqlerr.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
