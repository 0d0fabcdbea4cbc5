package user

import (
	"context"
	"errors"
	"time"

	"event-platform/app/user/api/internal/svc"
	"event-platform/app/user/model"
	"event-platform/common/ctxdata"
	"event-platform/common/errorx"
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

// currentUserID 从上下文取当前登录用户
func currentUserID(ctx context.Context) (int64, error) {
	userID := ctxdata.GetUserIDFromCtx(ctx)
	if userID <= 0 {
		return 0, errorx.ErrUnauthorized()
	}
	return userID, nil
}
