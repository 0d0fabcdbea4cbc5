package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"event-platform/app/notification/model"
	"event-platform/common/messaging"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/zeromicro/go-zero/core/logx"
)

// NotificationSendConsumer 单用户通知事件消费者
// 每条消息写入一条收件箱记录；写入成功后 ack。
// 消息至少投递一次，重复投递会产生重复记录（可通过 dispatch_id 排查）
type NotificationSendConsumer struct {
	notificationModel model.NotificationModel
	logger            logx.Logger
}

func NewNotificationSendConsumer(notificationModel model.NotificationModel) *NotificationSendConsumer {
	return &NotificationSendConsumer{
		notificationModel: notificationModel,
		logger:            logx.WithContext(context.Background()),
	}
}

func (c *NotificationSendConsumer) Subscribe(msgClient *messaging.Client) {
	msgClient.Subscribe(messaging.TopicNotificationSend, "notification-inbox-writer", c.handleSend)
	c.logger.Infof("已订阅 %s 事件", messaging.TopicNotificationSend)
}

func (c *NotificationSendConsumer) handleSend(msg *message.Message) error {
	ctx := msg.Context()

	var intent messaging.NotificationIntent
	if err := json.Unmarshal(msg.Payload, &intent); err != nil {
		// 格式错误的消息重试也无法恢复，直接丢弃
		c.logger.Errorf("解析通知事件失败: %v, payload=%s", err, string(msg.Payload))
		return messaging.NewNonRetryableError(fmt.Errorf("解析事件失败: %w", err))
	}

	if intent.UserID == 0 {
		c.logger.Errorf("通知事件缺少接收者: dispatch_id=%s", intent.DispatchID)
		return messaging.NewNonRetryableError(fmt.Errorf("通知事件缺少接收者"))
	}

	c.logger.Infof("收到通知事件: dispatch_id=%s, user_id=%d, type=%s",
		intent.DispatchID, intent.UserID, intent.Type)

	notification, err := buildNotification(&intent)
	if err != nil {
		return messaging.NewNonRetryableError(err)
	}

	if err := c.notificationModel.Insert(ctx, notification); err != nil {
		// 存储故障可恢复，交给重试中间件
		c.logger.Errorf("通知落库失败: %v, dispatch_id=%s, user_id=%d",
			err, intent.DispatchID, intent.UserID)
		return messaging.NewRetryableError(fmt.Errorf("通知落库失败: %w", err))
	}

	c.logger.Infof("通知落库成功: dispatch_id=%s, user_id=%d, notification_id=%d",
		intent.DispatchID, intent.UserID, notification.ID)
	return nil
}

// buildNotification 将通知意图转换为收件箱记录
func buildNotification(intent *messaging.NotificationIntent) (*model.Notification, error) {
	var metadata json.RawMessage
	if len(intent.Metadata) > 0 {
		raw, err := json.Marshal(intent.Metadata)
		if err != nil {
			return nil, fmt.Errorf("序列化通知元数据失败: %w", err)
		}
		metadata = raw
	}

	return &model.Notification{
		UserID:   intent.UserID,
		Type:     intent.Type,
		Title:    intent.Title,
		Message:  intent.Message,
		Metadata: metadata,
		Status:   model.StatusSent,
	}, nil
}
