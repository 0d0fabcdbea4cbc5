package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"event-platform/common/messaging"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// Producer 活动服务通知发布器
// nil 安全：Producer 或 Client 为 nil 时所有方法静默返回
type Producer struct {
	client *messaging.Client
}

// NewProducer 创建消息发布器
func NewProducer(client *messaging.Client) *Producer {
	if client == nil {
		return nil
	}
	return &Producer{client: client}
}

// publishAsync 异步发布事件（核心方法）
// - 开新 goroutine，不阻塞调用方
// - defer recover 防 panic 传播
// - 3 秒超时，到点放弃本次发布（Client.Publish 感知 ctx 截止时间）
// - 发布失败只记日志，不影响主业务（已提交的活动变更不回滚）
func (p *Producer) publishAsync(topic string, payload interface{}) {
	if p == nil || p.client == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logx.Errorf("[MQ-Producer] panic recovered: topic=%s, err=%v", topic, r)
			}
		}()

		data, err := json.Marshal(payload)
		if err != nil {
			logx.Errorf("[MQ-Producer] 序列化失败: topic=%s, err=%v", topic, err)
			return
		}

		pubCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		if err := p.client.Publish(pubCtx, topic, data); err != nil {
			logx.Errorf("[MQ-Producer] 发布失败: topic=%s, err=%v", topic, err)
			return
		}

		logx.Infof("[MQ-Producer] 发布成功: topic=%s, size=%d", topic, len(data))
	}()
}

// eventMetadata 通知元数据，至少携带来源活动ID
func eventMetadata(eventID uint64) map[string]string {
	return map[string]string{
		"event_id": fmt.Sprintf("%d", eventID),
	}
}

// ==================== 活动通知（Notification MQ 消费）====================

// PublishEventPublished 活动发布通知（群发给所有参与者）
func (p *Producer) PublishEventPublished(ctx context.Context, eventID uint64, title string, userIDs []uint64) {
	if len(userIDs) == 0 {
		return
	}
	p.publishAsync(messaging.TopicNotificationSendBulk, messaging.BulkNotificationIntent{
		DispatchID: uuid.NewString(),
		UserIDs:    userIDs,
		Title:      "活动已发布",
		Message:    fmt.Sprintf("您关注的活动「%s」已发布", title),
		Type:       messaging.NotificationTypeEventPublished,
		Metadata:   eventMetadata(eventID),
		CreatedAt:  time.Now(),
	})
}

// PublishEventCancelled 活动取消通知（群发给取消前的参与者名单）
func (p *Producer) PublishEventCancelled(ctx context.Context, eventID uint64, title string, userIDs []uint64) {
	if len(userIDs) == 0 {
		return
	}
	p.publishAsync(messaging.TopicNotificationSendBulk, messaging.BulkNotificationIntent{
		DispatchID: uuid.NewString(),
		UserIDs:    userIDs,
		Title:      "活动已取消",
		Message:    fmt.Sprintf("您报名的活动「%s」已被取消", title),
		Type:       messaging.NotificationTypeEventCancelled,
		Metadata:   eventMetadata(eventID),
		CreatedAt:  time.Now(),
	})
}

// PublishEventJoined 用户报名通知（发给组织者）
func (p *Producer) PublishEventJoined(ctx context.Context, eventID uint64, title string, organizerID uint64) {
	p.publishAsync(messaging.TopicNotificationSend, messaging.NotificationIntent{
		DispatchID: uuid.NewString(),
		UserID:     organizerID,
		Title:      "新用户报名",
		Message:    fmt.Sprintf("有用户报名了您的活动「%s」", title),
		Type:       messaging.NotificationTypeEventJoined,
		Metadata:   eventMetadata(eventID),
		CreatedAt:  time.Now(),
	})
}

// PublishEventLeft 用户取消报名通知（发给组织者）
func (p *Producer) PublishEventLeft(ctx context.Context, eventID uint64, title string, organizerID uint64) {
	p.publishAsync(messaging.TopicNotificationSend, messaging.NotificationIntent{
		DispatchID: uuid.NewString(),
		UserID:     organizerID,
		Title:      "用户取消报名",
		Message:    fmt.Sprintf("有用户取消报名了您的活动「%s」", title),
		Type:       messaging.NotificationTypeEventLeft,
		Metadata:   eventMetadata(eventID),
		CreatedAt:  time.Now(),
	})
}

// Close 关闭 Producer 底层客户端
func (p *Producer) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
