package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// BizError 业务错误，实现 error 接口
type BizError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *BizError) Error() string {
	return fmt.Sprintf("BizError: code=%d, message=%s", e.Code, e.Message)
}

// GetCode 获取错误码
func (e *BizError) GetCode() int {
	return e.Code
}

// GetMessage 获取错误消息
func (e *BizError) GetMessage() string {
	return e.Message
}

// New 创建业务错误（使用默认消息）
func New(code int) *BizError {
	return &BizError{
		Code:    code,
		Message: GetMessage(code),
	}
}

// NewWithMessage 创建业务错误（自定义消息）
func NewWithMessage(code int, message string) *BizError {
	return &BizError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误，添加上下文信息
func Wrap(code int, err error) *BizError {
	if err == nil {
		return New(code)
	}
	return &BizError{
		Code:    code,
		Message: fmt.Sprintf("%s: %v", GetMessage(code), err),
	}
}

// Is 判断是否为特定错误码
func Is(err error, code int) bool {
	if err == nil {
		return false
	}
	if bizErr, ok := errors.Cause(err).(*BizError); ok {
		return bizErr.Code == code
	}
	return false
}

// FromError 从 error 转换为 BizError
// 支持以下错误类型：
//  1. *BizError：直接返回
//  2. 其他错误：返回内部错误（隐藏细节）
func FromError(err error) *BizError {
	if err == nil {
		return nil
	}

	// 获取原始错误（支持 errors.Wrap 包装的错误）
	causeErr := errors.Cause(err)

	if bizErr, ok := causeErr.(*BizError); ok {
		return bizErr
	}

	// 其他错误：返回内部错误，不暴露细节
	return &BizError{
		Code:    CodeInternalError,
		Message: GetMessage(CodeInternalError),
	}
}

// ============ 常用错误快捷方法 ============

// ErrInternalError 内部错误
func ErrInternalError() *BizError {
	return New(CodeInternalError)
}

// ErrInvalidParams 参数错误
func ErrInvalidParams(msg string) *BizError {
	if msg == "" {
		return New(CodeInvalidParams)
	}
	return NewWithMessage(CodeInvalidParams, msg)
}

// ErrUnauthorized 未授权
func ErrUnauthorized() *BizError {
	return New(CodeUnauthorized)
}

// ErrInvalidToken Token无效
func ErrInvalidToken() *BizError {
	return New(CodeTokenInvalid)
}

// ErrForbidden 禁止访问
func ErrForbidden() *BizError {
	return New(CodeForbidden)
}

// ErrNotFound 资源不存在
func ErrNotFound() *BizError {
	return New(CodeNotFound)
}

// ErrDBError 数据库错误
func ErrDBError(err error) *BizError {
	return Wrap(CodeDBError, err)
}

// ErrCacheError 缓存错误
func ErrCacheError(err error) *BizError {
	return Wrap(CodeCacheError, err)
}

// ============ 用户服务相关错误 ============

// ErrBadCredentials 邮箱或密码错误
func ErrBadCredentials() *BizError {
	return New(CodeBadCredentials)
}

// ErrEmailTaken 邮箱已被注册
func ErrEmailTaken() *BizError {
	return New(CodeEmailTaken)
}

// ErrUserNotFound 用户不存在
func ErrUserNotFound() *BizError {
	return New(CodeUserNotFound)
}

// ============ 活动服务相关错误 ============

// ErrEventNotFound 活动不存在
func ErrEventNotFound() *BizError {
	return New(CodeEventNotFound)
}

// ErrInvalidRange 活动时间区间无效
func ErrInvalidRange() *BizError {
	return New(CodeInvalidRange)
}

// ErrInvalidTransition 无效的状态转换（携带当前状态与目标状态）
func ErrInvalidTransition(from, to string) *BizError {
	return NewWithMessage(CodeInvalidTransition,
		fmt.Sprintf("活动状态不允许从「%s」变更为「%s」", from, to))
}

// ErrImmutableState 当前状态不允许修改
func ErrImmutableState() *BizError {
	return New(CodeImmutableState)
}

// ErrNotPublished 活动未发布
func ErrNotPublished() *BizError {
	return New(CodeNotPublished)
}

// ErrCapacityExceeded 活动名额已满
func ErrCapacityExceeded() *BizError {
	return New(CodeCapacityExceeded)
}

// ErrCapacityViolation 名额上限低于当前报名人数
func ErrCapacityViolation() *BizError {
	return New(CodeCapacityViolation)
}

// ErrAlreadyParticipant 已报名该活动
func ErrAlreadyParticipant() *BizError {
	return New(CodeAlreadyParticipant)
}

// ErrOrganizerCannotJoin 组织者不能报名自己的活动
func ErrOrganizerCannotJoin() *BizError {
	return New(CodeOrganizerCannotJoin)
}

// ErrNotAParticipant 未报名该活动
func ErrNotAParticipant() *BizError {
	return New(CodeNotAParticipant)
}

// ErrConcurrencyConflict 并发更新冲突（重试耗尽后向客户端暴露）
func ErrConcurrencyConflict() *BizError {
	return New(CodeConcurrencyConflict)
}

// ErrStoreUnavailable 存储服务不可用
func ErrStoreUnavailable(err error) *BizError {
	if err == nil {
		return New(CodeStoreUnavailable)
	}
	return Wrap(CodeStoreUnavailable, err)
}

// ============ 通知服务相关错误 ============

// ErrNotificationNotFound 通知不存在
func ErrNotificationNotFound() *BizError {
	return New(CodeNotificationNotFound)
}
