package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"event-platform/app/notification/model"
	"event-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNotificationModel 内存实现，只用于消费者测试
type fakeNotificationModel struct {
	mu       sync.Mutex
	inserted []*model.Notification

	failAll  bool
	failFor  map[uint64]bool
	storeErr error
}

func newFakeNotificationModel() *fakeNotificationModel {
	return &fakeNotificationModel{
		failFor:  make(map[uint64]bool),
		storeErr: errors.New("connection refused"),
	}
}

func (f *fakeNotificationModel) Insert(_ context.Context, data *model.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failFor[data.UserID] {
		return f.storeErr
	}
	data.ID = uint64(len(f.inserted) + 1)
	f.inserted = append(f.inserted, data)
	return nil
}

func (f *fakeNotificationModel) insertedUserIDs() []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]uint64, 0, len(f.inserted))
	for _, n := range f.inserted {
		ids = append(ids, n.UserID)
	}
	return ids
}

func (f *fakeNotificationModel) FindOne(context.Context, uint64) (*model.Notification, error) {
	return nil, model.ErrNotificationNotFound
}

func (f *fakeNotificationModel) FindByUserID(context.Context, uint64, int, int) ([]*model.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationModel) FindUnreadByUserID(context.Context, uint64, int, int) ([]*model.Notification, int64, error) {
	return nil, 0, nil
}

func (f *fakeNotificationModel) GetUnreadCount(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationModel) MarkAsRead(context.Context, uint64, uint64) (*model.Notification, error) {
	return nil, model.ErrNotificationNotFound
}

func (f *fakeNotificationModel) MarkAllAsRead(context.Context, uint64) (int64, error) {
	return 0, nil
}

func (f *fakeNotificationModel) UpdateStatus(context.Context, uint64, int8) error {
	return nil
}

func newIntentMessage(t *testing.T, intent interface{}) *message.Message {
	t.Helper()
	payload, err := json.Marshal(intent)
	require.NoError(t, err)
	return message.NewMessage("test-message-id", payload)
}

func TestNotificationSendConsumer(t *testing.T) {
	t.Run("writes one sent record", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendConsumer(fake)

		msg := newIntentMessage(t, messaging.NotificationIntent{
			DispatchID: "dispatch-1",
			UserID:     5,
			Title:      "报名成功",
			Message:    "用户已报名你的活动",
			Type:       messaging.NotificationTypeEventJoined,
			Metadata:   map[string]string{"event_id": "100"},
			CreatedAt:  time.Now(),
		})

		require.NoError(t, c.handleSend(msg))
		require.Len(t, fake.inserted, 1)

		got := fake.inserted[0]
		assert.Equal(t, uint64(5), got.UserID)
		assert.Equal(t, messaging.NotificationTypeEventJoined, got.Type)
		assert.Equal(t, "报名成功", got.Title)
		assert.Equal(t, model.StatusSent, got.Status)

		var metadata map[string]string
		require.NoError(t, json.Unmarshal(got.Metadata, &metadata))
		assert.Equal(t, "100", metadata["event_id"])
	})

	t.Run("malformed payload is dropped", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendConsumer(fake)

		err := c.handleSend(message.NewMessage("test-message-id", []byte("not-json")))
		require.Error(t, err)
		assert.False(t, messaging.IsRetryable(err))
		assert.Empty(t, fake.inserted)
	})

	t.Run("missing recipient is dropped", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendConsumer(fake)

		msg := newIntentMessage(t, messaging.NotificationIntent{
			DispatchID: "dispatch-2",
			Title:      "无接收者",
		})
		err := c.handleSend(msg)
		require.Error(t, err)
		assert.False(t, messaging.IsRetryable(err))
		assert.Empty(t, fake.inserted)
	})

	t.Run("store failure is retried", func(t *testing.T) {
		fake := newFakeNotificationModel()
		fake.failAll = true
		c := NewNotificationSendConsumer(fake)

		msg := newIntentMessage(t, messaging.NotificationIntent{
			DispatchID: "dispatch-3",
			UserID:     5,
			Title:      "报名成功",
		})
		err := c.handleSend(msg)
		require.Error(t, err)
		assert.True(t, messaging.IsRetryable(err))
	})
}

func TestNotificationSendBulkConsumer(t *testing.T) {
	t.Run("writes one record per recipient", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendBulkConsumer(fake)

		msg := newIntentMessage(t, messaging.BulkNotificationIntent{
			DispatchID: "dispatch-10",
			UserIDs:    []uint64{3, 5, 9},
			Title:      "活动已发布",
			Message:    "你报名的活动已发布",
			Type:       messaging.NotificationTypeEventPublished,
			Metadata:   map[string]string{"event_id": "100"},
		})

		require.NoError(t, c.handleSendBulk(msg))
		assert.ElementsMatch(t, []uint64{3, 5, 9}, fake.insertedUserIDs())
		for _, n := range fake.inserted {
			assert.Equal(t, model.StatusSent, n.Status)
			assert.Equal(t, messaging.NotificationTypeEventPublished, n.Type)
		}
	})

	t.Run("single recipient failure does not block the rest", func(t *testing.T) {
		fake := newFakeNotificationModel()
		fake.failFor[5] = true
		c := NewNotificationSendBulkConsumer(fake)

		msg := newIntentMessage(t, messaging.BulkNotificationIntent{
			DispatchID: "dispatch-11",
			UserIDs:    []uint64{3, 5, 9},
			Title:      "活动已发布",
		})

		// 部分失败不阻塞整条消息
		require.NoError(t, c.handleSendBulk(msg))
		assert.ElementsMatch(t, []uint64{3, 9}, fake.insertedUserIDs())
	})

	t.Run("total failure is retried", func(t *testing.T) {
		fake := newFakeNotificationModel()
		fake.failAll = true
		c := NewNotificationSendBulkConsumer(fake)

		msg := newIntentMessage(t, messaging.BulkNotificationIntent{
			DispatchID: "dispatch-12",
			UserIDs:    []uint64{3, 5},
			Title:      "活动已发布",
		})

		err := c.handleSendBulk(msg)
		require.Error(t, err)
		assert.True(t, messaging.IsRetryable(err))
		assert.Empty(t, fake.inserted)
	})

	t.Run("no recipients is a no-op", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendBulkConsumer(fake)

		msg := newIntentMessage(t, messaging.BulkNotificationIntent{
			DispatchID: "dispatch-13",
			Title:      "活动已发布",
		})

		require.NoError(t, c.handleSendBulk(msg))
		assert.Empty(t, fake.inserted)
	})

	t.Run("malformed payload is dropped", func(t *testing.T) {
		fake := newFakeNotificationModel()
		c := NewNotificationSendBulkConsumer(fake)

		err := c.handleSendBulk(message.NewMessage("test-message-id", []byte("{broken")))
		require.Error(t, err)
		assert.False(t, messaging.IsRetryable(err))
	})
}
