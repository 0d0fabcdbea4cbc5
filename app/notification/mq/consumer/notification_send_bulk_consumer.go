package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"event-platform/app/notification/model"
	"event-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
	"golang.org/x/sync/errgroup"
)

// bulkWriteConcurrency 批量写入的并发上限
const bulkWriteConcurrency = 8

// NotificationSendBulkConsumer 批量通知事件消费者
// 为每个接收者各写一条收件箱记录。单个接收者写入失败只记日志，
// 不阻塞其他接收者；全部失败时才返回可重试错误
type NotificationSendBulkConsumer struct {
	notificationModel model.NotificationModel
	logger            logx.Logger
}

func NewNotificationSendBulkConsumer(notificationModel model.NotificationModel) *NotificationSendBulkConsumer {
	return &NotificationSendBulkConsumer{
		notificationModel: notificationModel,
		logger:            logx.WithContext(context.Background()),
	}
}

func (c *NotificationSendBulkConsumer) Subscribe(msgClient *messaging.Client) {
	msgClient.Subscribe(messaging.TopicNotificationSendBulk, "notification-inbox-bulk-writer", c.handleSendBulk)
	c.logger.Infof("已订阅 %s 事件", messaging.TopicNotificationSendBulk)
}

func (c *NotificationSendBulkConsumer) handleSendBulk(msg *message.Message) error {
	ctx := msg.Context()

	var intent messaging.BulkNotificationIntent
	if err := json.Unmarshal(msg.Payload, &intent); err != nil {
		c.logger.Errorf("解析批量通知事件失败: %v, payload=%s", err, string(msg.Payload))
		return messaging.NewNonRetryableError(fmt.Errorf("解析事件失败: %w", err))
	}

	if len(intent.UserIDs) == 0 {
		c.logger.Infof("批量通知没有接收者，跳过: dispatch_id=%s", intent.DispatchID)
		return nil
	}

	c.logger.Infof("收到批量通知事件: dispatch_id=%s, type=%s, recipients=%d",
		intent.DispatchID, intent.Type, len(intent.UserIDs))

	var metadata json.RawMessage
	if len(intent.Metadata) > 0 {
		raw, err := json.Marshal(intent.Metadata)
		if err != nil {
			return messaging.NewNonRetryableError(fmt.Errorf("序列化通知元数据失败: %w", err))
		}
		metadata = raw
	}

	var failed int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(bulkWriteConcurrency)

	for _, userID := range intent.UserIDs {
		userID := userID
		g.Go(func() error {
			notification := &model.Notification{
				UserID:   userID,
				Type:     intent.Type,
				Title:    intent.Title,
				Message:  intent.Message,
				Metadata: metadata,
				Status:   model.StatusSent,
			}
			if err := c.notificationModel.Insert(gCtx, notification); err != nil {
				atomic.AddInt64(&failed, 1)
				c.logger.Errorf("通知落库失败: %v, dispatch_id=%s, user_id=%d",
					err, intent.DispatchID, userID)
			}
			return nil
		})
	}

	// goroutine 内不返回错误，这里不会失败
	_ = g.Wait()

	failedCount := atomic.LoadInt64(&failed)
	if failedCount == int64(len(intent.UserIDs)) {
		// 全军覆没基本是存储故障，整条消息重试
		return messaging.NewRetryableError(
			fmt.Errorf("批量通知全部落库失败: dispatch_id=%s, recipients=%d", intent.DispatchID, len(intent.UserIDs)))
	}

	if failedCount > 0 {
		c.logger.Errorf("批量通知部分落库失败: dispatch_id=%s, failed=%d/%d",
			intent.DispatchID, failedCount, len(intent.UserIDs))
	} else {
		c.logger.Infof("批量通知落库完成: dispatch_id=%s, recipients=%d",
			intent.DispatchID, len(intent.UserIDs))
	}
	return nil
}
