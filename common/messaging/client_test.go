package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePublisher 可控的 Publisher 实现
type fakePublisher struct {
	err     error
	blockCh chan struct{} // 非 nil 时 Publish 阻塞直到该 channel 关闭
	topics  []string
}

func (p *fakePublisher) Publish(topic string, messages ...*message.Message) error {
	if p.blockCh != nil {
		<-p.blockCh
	}
	p.topics = append(p.topics, topic)
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func newTestMessage() *message.Message {
	return message.NewMessage(watermill.NewUUID(), []byte(`{}`))
}

func TestPublishWithContext(t *testing.T) {
	t.Run("发布成功", func(t *testing.T) {
		pub := &fakePublisher{}
		err := publishWithContext(context.Background(), pub, TopicNotificationSend, newTestMessage())
		require.NoError(t, err)
		assert.Equal(t, []string{TopicNotificationSend}, pub.topics)
	})

	t.Run("发布错误透传", func(t *testing.T) {
		wantErr := errors.New("redis: connection refused")
		pub := &fakePublisher{err: wantErr}
		err := publishWithContext(context.Background(), pub, TopicNotificationSend, newTestMessage())
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("超时后不再等待发布返回", func(t *testing.T) {
		blockCh := make(chan struct{})
		defer close(blockCh)
		pub := &fakePublisher{blockCh: blockCh}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := publishWithContext(ctx, pub, TopicNotificationSend, newTestMessage())
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		// 调用方在截止时间附近返回，不被阻塞的发布拖住
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("已取消的 context 直接拒绝", func(t *testing.T) {
		pub := &fakePublisher{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := publishWithContext(ctx, pub, TopicNotificationSend, newTestMessage())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, pub.topics)
	})
}
