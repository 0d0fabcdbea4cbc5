package response

import (
	"context"
	"net/http"

	"event-platform/common/errorx"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PageData 分页数据结构
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"pageSize"`
}

// Success 成功响应
func Success(w http.ResponseWriter, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	}
	httpx.OkJson(w, resp)
}

// Created 创建成功响应（201）
func Created(w http.ResponseWriter, data interface{}) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data:    data,
	}
	httpx.WriteJson(w, http.StatusCreated, resp)
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(w http.ResponseWriter, list interface{}, total int64, page, pageSize int) {
	resp := &Response{
		Code:    errorx.CodeSuccess,
		Message: "success",
		Data: PageData{
			List:     list,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		},
	}
	httpx.OkJson(w, resp)
}

// Fail 失败响应（使用 BizError）
func Fail(w http.ResponseWriter, err error) {
	bizErr := errorx.FromError(err)
	resp := &Response{
		Code:    bizErr.Code,
		Message: bizErr.Message,
	}
	httpx.WriteJson(w, HTTPStatus(bizErr.Code), resp)
}

// FailWithCode 失败响应（指定错误码）
func FailWithCode(w http.ResponseWriter, code int) {
	resp := &Response{
		Code:    code,
		Message: errorx.GetMessage(code),
	}
	httpx.WriteJson(w, HTTPStatus(code), resp)
}

// HTTPStatus 根据业务错误码映射 HTTP 状态码
//
// 映射规则：
//   - 领域校验类错误（时间区间、状态机、名额、报名）→ 400
//   - 未授权 → 401，禁止访问 → 403，资源不存在 → 404
//   - 并发冲突（重试耗尽）→ 409
//   - 存储不可用 → 503
func HTTPStatus(code int) int {
	switch code {
	case errorx.CodeSuccess:
		return http.StatusOK
	case errorx.CodeInvalidParams,
		errorx.CodeInvalidRange,
		errorx.CodeInvalidTransition,
		errorx.CodeImmutableState,
		errorx.CodeNotPublished,
		errorx.CodeCapacityExceeded,
		errorx.CodeCapacityViolation,
		errorx.CodeAlreadyParticipant,
		errorx.CodeOrganizerCannotJoin,
		errorx.CodeNotAParticipant,
		errorx.CodeBadCredentials,
		errorx.CodeEmailTaken:
		return http.StatusBadRequest
	case errorx.CodeUnauthorized, errorx.CodeLoginRequired,
		errorx.CodeTokenInvalid, errorx.CodeTokenExpired:
		return http.StatusUnauthorized
	case errorx.CodeForbidden, errorx.CodeUserDisabled:
		return http.StatusForbidden
	case errorx.CodeNotFound, errorx.CodeEventNotFound,
		errorx.CodeUserNotFound, errorx.CodeNotificationNotFound:
		return http.StatusNotFound
	case errorx.CodeConcurrencyConflict:
		return http.StatusConflict
	case errorx.CodeTooManyRequests:
		return http.StatusTooManyRequests
	case errorx.CodeStoreUnavailable, errorx.CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// SetupGlobalErrorHandler 设置 go-zero 全局错误处理器
//
// 必须在 server.Start() 之前调用。
// 作用：让 handler 中的 httpx.ErrorCtx 使用统一的响应格式：
//
//	不设置时：{"error": "活动不存在"}
//	设置后：  {"code": 3001, "message": "活动不存在"}
func SetupGlobalErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, interface{}) {
		bizErr := errorx.FromError(err)
		return HTTPStatus(bizErr.Code), &Response{
			Code:    bizErr.Code,
			Message: bizErr.Message,
		}
	})
}
