package errorx

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNewUsesDefaultMessage(t *testing.T) {
	err := New(CodeEventNotFound)
	assert.Equal(t, CodeEventNotFound, err.Code)
	assert.Equal(t, "活动不存在", err.Message)
}

func TestIsMatchesCode(t *testing.T) {
	err := New(CodeConcurrencyConflict)
	assert.True(t, Is(err, CodeConcurrencyConflict))
	assert.False(t, Is(err, CodeEventNotFound))
	assert.False(t, Is(nil, CodeEventNotFound))
	assert.False(t, Is(errors.New("plain"), CodeEventNotFound))
}

func TestIsUnwrapsCause(t *testing.T) {
	wrapped := pkgerrors.Wrap(New(CodeCapacityExceeded), "报名失败")
	assert.True(t, Is(wrapped, CodeCapacityExceeded))
}

func TestFromError(t *testing.T) {
	t.Run("biz error passes through", func(t *testing.T) {
		err := FromError(New(CodeForbidden))
		assert.Equal(t, CodeForbidden, err.Code)
	})

	t.Run("plain error becomes internal error", func(t *testing.T) {
		err := FromError(errors.New("driver: bad connection"))
		assert.Equal(t, CodeInternalError, err.Code)
		// 不向客户端泄露内部细节
		assert.NotContains(t, err.Message, "bad connection")
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, FromError(nil))
	})
}

func TestErrInvalidTransitionMessage(t *testing.T) {
	err := ErrInvalidTransition("已结束", "已发布")
	assert.Equal(t, CodeInvalidTransition, err.Code)
	assert.Contains(t, err.Message, "已结束")
	assert.Contains(t, err.Message, "已发布")
}
