package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiterAllow(t *testing.T) {
	t.Run("桶耗尽后拒绝", func(t *testing.T) {
		// 速率接近 0，桶容量 3：前 3 次放行，之后拒绝
		limiter := NewRateLimiter(0.0001, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow(), "第 %d 次请求应放行", i+1)
		}
		assert.False(t, limiter.Allow())
	})

	t.Run("初始令牌等于桶容量", func(t *testing.T) {
		limiter := NewRateLimiter(10, 1)

		assert.True(t, limiter.Allow())
		assert.False(t, limiter.Allow())
	})
}

func TestIPRateLimiterIsolation(t *testing.T) {
	ipLimiter := NewIPRateLimiter(0.0001, 1)

	// 同一 IP 复用同一个限流器
	first := ipLimiter.GetLimiter("10.0.0.1")
	require.Same(t, first, ipLimiter.GetLimiter("10.0.0.1"))

	// 不同 IP 互不影响
	assert.True(t, ipLimiter.GetLimiter("10.0.0.1").Allow())
	assert.False(t, ipLimiter.GetLimiter("10.0.0.1").Allow())
	assert.True(t, ipLimiter.GetLimiter("10.0.0.2").Allow())
}
