// Package cache 提供通用缓存工具
//
// 设计原则：
//   - Key 命名规范：{业务}:{模块}:{标识}，如 notification:unread:123
//   - 随机 TTL 防止缓存雪崩
package cache

import (
	"fmt"
	"time"

	"event-platform/common/constants"

	"github.com/zeromicro/go-zero/core/mathx"
)

// ==================== 默认配置 ====================

const (
	// DefaultTTL 默认缓存过期时间（5 分钟）
	DefaultTTL = 5 * time.Minute

	// DefaultJitter 默认 TTL 抖动系数（±10%）
	// 5min ± 10% = 4.5min ~ 5.5min
	DefaultJitter = 0.1
)

// unstable 随机数生成器，用于 TTL 抖动
var unstable = mathx.NewUnstable(DefaultJitter)

// ==================== TTL 工具函数 ====================

// RandomTTL 生成带抖动的 TTL，防止缓存雪崩
//
// 大量缓存设置相同 TTL 会在同一时间过期，请求同时穿透到 DB；
// 添加 ±10% 随机抖动使过期时间分散。
//
// 示例：
//
//	RandomTTL(5 * time.Minute) => 4.5min ~ 5.5min
func RandomTTL(base time.Duration) time.Duration {
	return time.Duration(unstable.AroundDuration(base))
}

// RandomTTLSeconds 返回带抖动的 TTL（秒数）
//
// 用于需要秒数的场景，如 Redis SETEX
func RandomTTLSeconds(base time.Duration) int {
	return int(RandomTTL(base).Seconds())
}

// ==================== Key 生成函数 ====================

// UnreadCountKey 未读通知数缓存 Key
//
// 格式：notification:unread:{user_id}
// TTL：5min ± 10%，已读标记时主动删除
func UnreadCountKey(userID uint64) string {
	return fmt.Sprintf("%s%d", constants.CacheUnreadCountPrefix, userID)
}
