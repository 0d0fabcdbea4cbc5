/**
 * @projectName: EventPlatform
 * @package: errorx
 * @className: codes
 * @description: 统一错误码定义
 * @version: 1.0
 */

package errorx

// 错误码规范：
// 0       - 成功
// 1xxx    - 通用错误
// 2xxx    - 用户服务错误
// 3xxx    - 活动服务错误
// 4xxx    - 通知服务错误

const (
	CodeSuccess            = 0    // 成功
	CodeInternalError      = 1000 // 内部服务器错误
	CodeInvalidParams      = 1001 // 参数校验失败
	CodeUnauthorized       = 1002 // 未授权访问
	CodeForbidden          = 1003 // 禁止访问
	CodeNotFound           = 1004 // 资源不存在
	CodeTooManyRequests    = 1005 // 请求过于频繁
	CodeServiceUnavailable = 1006 // 服务暂不可用
	CodeTimeout            = 1007 // 请求超时
	CodeDBError            = 1008 // 数据库错误
	CodeCacheError         = 1009 // 缓存错误
	CodeMQError            = 1010 // 消息队列错误

	// 用户服务 - 认证 2001-2010
	CodeLoginRequired  = 2001 // 需要登录
	CodeTokenInvalid   = 2002 // Token无效
	CodeTokenExpired   = 2003 // Token已过期
	CodeBadCredentials = 2004 // 邮箱或密码错误
	CodeEmailTaken     = 2005 // 邮箱已被注册
	CodeUserNotFound   = 2006 // 用户不存在
	CodeUserDisabled   = 2007 // 用户已被禁用

	// 活动服务 - 基础 3001-3010
	CodeEventNotFound = 3001 // 活动不存在
	CodeInvalidRange  = 3002 // 活动时间区间无效

	// 活动服务 - 状态机 3011-3020
	CodeInvalidTransition = 3011 // 无效的状态转换
	CodeImmutableState    = 3012 // 当前状态不允许修改
	CodeNotPublished      = 3013 // 活动未发布

	// 活动服务 - 报名 3021-3030
	CodeCapacityExceeded    = 3021 // 活动名额已满
	CodeCapacityViolation   = 3022 // 名额上限不能低于当前报名人数
	CodeAlreadyParticipant  = 3023 // 已报名该活动
	CodeOrganizerCannotJoin = 3024 // 组织者不能报名自己的活动
	CodeNotAParticipant     = 3025 // 未报名该活动

	// 活动服务 - 并发 3031-3040
	CodeConcurrencyConflict = 3031 // 并发更新冲突
	CodeStoreUnavailable    = 3032 // 存储服务不可用

	// 通知服务 4001-4010
	CodeNotificationNotFound = 4001 // 通知不存在
)

// codeMessages 错误码对应的默认消息
var codeMessages = map[int]string{
	CodeSuccess:            "success",
	CodeInternalError:      "内部服务器错误",
	CodeInvalidParams:      "参数校验失败",
	CodeUnauthorized:       "未授权访问",
	CodeForbidden:          "禁止访问",
	CodeNotFound:           "资源不存在",
	CodeTooManyRequests:    "请求过于频繁，请稍后再试",
	CodeServiceUnavailable: "服务暂不可用",
	CodeTimeout:            "请求超时",
	CodeDBError:            "数据库错误",
	CodeCacheError:         "缓存错误",
	CodeMQError:            "消息队列错误",

	CodeLoginRequired:  "请先登录",
	CodeTokenInvalid:   "登录状态无效",
	CodeTokenExpired:   "登录已过期",
	CodeBadCredentials: "邮箱或密码错误",
	CodeEmailTaken:     "该邮箱已被注册",
	CodeUserNotFound:   "用户不存在",
	CodeUserDisabled:   "账号已被禁用",

	CodeEventNotFound: "活动不存在",
	CodeInvalidRange:  "活动开始时间必须晚于当前时间，结束时间必须晚于开始时间",

	CodeInvalidTransition: "当前状态不允许此操作",
	CodeImmutableState:    "活动当前状态不允许修改",
	CodeNotPublished:      "只能报名已发布的活动",

	CodeCapacityExceeded:    "活动名额已满",
	CodeCapacityViolation:   "名额上限不能低于当前报名人数",
	CodeAlreadyParticipant:  "您已报名该活动",
	CodeOrganizerCannotJoin: "组织者不能报名自己的活动",
	CodeNotAParticipant:     "您未报名该活动",

	CodeConcurrencyConflict: "操作冲突，请稍后重试",
	CodeStoreUnavailable:    "存储服务暂不可用，请稍后重试",

	CodeNotificationNotFound: "通知不存在",
}

// GetMessage 根据错误码获取默认消息
func GetMessage(code int) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "未知错误"
}

// IsValidCode 判断是否为有效的业务错误码
func IsValidCode(code int) bool {
	_, exists := codeMessages[code]
	return exists
}
