package constants

import "time"

// Redis Key 前缀规范
// 格式: {业务}:{模块}:{具体标识}
// 示例: token:blacklist:access:{jti}, notification:unread:{userId}

const (
	// ============ 认证 Redis Key ============

	// TokenBlacklistAccessPrefix 登出后的 Access Token 黑名单前缀
	// 格式: token:blacklist:access:{accessJwtId}
	TokenBlacklistAccessPrefix = "token:blacklist:access:"

	// ============ 通知服务 Redis Key ============

	// CacheUnreadCountPrefix 未读通知数缓存前缀
	// 格式: notification:unread:{userId}
	CacheUnreadCountPrefix = "notification:unread:"
)

// ============ 缓存过期时间 ============

const (
	// CacheExpireDefault 默认缓存过期时间
	CacheExpireDefault = 30 * time.Minute
	// CacheExpireShort 短期缓存（热点数据）
	CacheExpireShort = 5 * time.Minute
)
