package messaging

import "time"

// ==================== Topic 定义 ====================

const (
	TopicNotificationSend     = "notification.send"
	TopicNotificationSendBulk = "notification.send.bulk"
)

// ==================== 通知类型 ====================

const (
	NotificationTypeEventPublished = "event_published"
	NotificationTypeEventCancelled = "event_cancelled"
	NotificationTypeEventJoined    = "event_joined"
	NotificationTypeEventLeft      = "event_left"
	NotificationTypeSystem         = "system"
)

// ==================== 事件结构体 ====================
// 字段类型必须与 Notification MQ 消费者完全匹配（uint64 ID + time.Time）

// NotificationIntent 单用户通知意图
// 消费者：Notification MQ（落库到用户收件箱）
// DispatchID 由生产端生成，消费端日志可以用它去重排查
type NotificationIntent struct {
	DispatchID string            `json:"dispatch_id"`
	UserID     uint64            `json:"user_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Type       string            `json:"type"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// BulkNotificationIntent 批量通知意图
// 消费者：Notification MQ（为每个用户各写一条收件箱记录）
type BulkNotificationIntent struct {
	DispatchID string            `json:"dispatch_id"`
	UserIDs    []uint64          `json:"user_ids"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Type       string            `json:"type"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}
