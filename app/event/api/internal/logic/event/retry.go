package event

import (
	"errors"
	"math/rand"
	"time"

	"event-platform/app/event/model"
	"event-platform/common/errorx"
)

// 版本冲突最多重试次数
const maxCasAttempts = 3

// casBackoff 重试退避（带抖动，避免冲突方步调一致）
var casBackoff = func(attempt int) {
	backoff := time.Duration(attempt) * 50 * time.Millisecond
	jitter := time.Duration(rand.Int63n(int64(30 * time.Millisecond)))
	time.Sleep(backoff + jitter)
}

// withRetry 对版本冲突做有限次重试
// fn 每次执行都必须重新读取聚合并重做领域变更，否则重试没有意义；
// 重试耗尽后向调用方暴露并发冲突错误
func withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxCasAttempts; attempt++ {
		if attempt > 0 {
			casBackoff(attempt)
		}
		err = fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, model.ErrEventConcurrentUpdate) {
			return err
		}
	}
	return errorx.ErrConcurrencyConflict()
}
