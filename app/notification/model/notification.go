package model

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ==================== 通知状态 ====================

const (
	StatusPending int8 = 0 // 待发送
	StatusSent    int8 = 1 // 已发送
	StatusRead    int8 = 2 // 已读
	StatusFailed  int8 = 3 // 发送失败
)

// ==================== 错误定义 ====================

var ErrNotificationNotFound = errors.New("通知不存在")

// Notification 通知模型（用户收件箱，每个接收者一条记录）
// 对应数据库表：notifications
type Notification struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID uint64 `gorm:"index:idx_user_id_created;column:user_id;type:bigint;not null" json:"user_id"`
	Type   string `gorm:"column:type;type:varchar(32);not null" json:"type"` // 通知类型，如 "event_published"
	Title  string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Message string `gorm:"column:message;type:text;not null" json:"message"`

	// Metadata 对应 MySQL 的 JSON 类型，至少携带来源活动ID
	Metadata json.RawMessage `gorm:"column:metadata;type:json" json:"metadata"`

	Status    int8       `gorm:"index:idx_status;column:status;type:tinyint;not null;default:0" json:"status"`
	ReadAt    *time.Time `gorm:"column:read_at;type:datetime" json:"read_at,omitempty"` // 使用指针处理 NULL
	CreatedAt time.Time  `gorm:"index:idx_user_id_created;column:created_at;type:datetime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

// NotificationModel 通知模型接口
type NotificationModel interface {
	Insert(ctx context.Context, data *Notification) error
	FindOne(ctx context.Context, id uint64) (*Notification, error)
	FindByUserID(ctx context.Context, userID uint64, page, pageSize int) ([]*Notification, int64, error)
	FindUnreadByUserID(ctx context.Context, userID uint64, page, pageSize int) ([]*Notification, int64, error)
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkAsRead(ctx context.Context, userID, id uint64) (*Notification, error)
	MarkAllAsRead(ctx context.Context, userID uint64) (int64, error)
	UpdateStatus(ctx context.Context, id uint64, status int8) error
}

// defaultNotificationModel 通知模型默认实现
type defaultNotificationModel struct {
	db *gorm.DB
}

// NewNotificationModel 创建通知模型实例
func NewNotificationModel(db *gorm.DB) NotificationModel {
	return &defaultNotificationModel{db: db}
}

// Insert 插入通知记录
func (m *defaultNotificationModel) Insert(ctx context.Context, data *Notification) error {
	return m.db.WithContext(ctx).Create(data).Error
}

// FindOne 根据ID查询通知
func (m *defaultNotificationModel) FindOne(ctx context.Context, id uint64) (*Notification, error) {
	var notification Notification
	err := m.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindByUserID 根据用户ID查询通知列表（分页）
func (m *defaultNotificationModel) FindByUserID(ctx context.Context, userID uint64, page, pageSize int) ([]*Notification, int64, error) {
	return m.findByUser(ctx, userID, false, page, pageSize)
}

// FindUnreadByUserID 根据用户ID查询未读通知列表（分页）
func (m *defaultNotificationModel) FindUnreadByUserID(ctx context.Context, userID uint64, page, pageSize int) ([]*Notification, int64, error) {
	return m.findByUser(ctx, userID, true, page, pageSize)
}

func (m *defaultNotificationModel) findByUser(ctx context.Context, userID uint64, unreadOnly bool, page, pageSize int) ([]*Notification, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 50 {
		pageSize = 10
	}

	var notifications []*Notification
	var total int64

	query := m.db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("status != ?", StatusRead)
	}

	if err := query.Model(&Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// GetUnreadCount 获取未读通知数量
func (m *defaultNotificationModel) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND status != ?", userID, StatusRead).
		Count(&count).Error
	return count, err
}

// MarkAsRead 标记通知为已读
// 幂等：已读通知再次标记不报错，直接返回当前记录；
// 只能标记属于自己的通知，否则视为不存在
func (m *defaultNotificationModel) MarkAsRead(ctx context.Context, userID, id uint64) (*Notification, error) {
	var notification Notification
	err := m.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}

	if notification.Status == StatusRead {
		return &notification, nil
	}

	now := time.Now()
	result := m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ? AND user_id = ? AND status != ?", id, userID, StatusRead).
		Updates(map[string]interface{}{
			"status":  StatusRead,
			"read_at": &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	notification.Status = StatusRead
	notification.ReadAt = &now
	return &notification, nil
}

// MarkAllAsRead 标记用户所有通知为已读
func (m *defaultNotificationModel) MarkAllAsRead(ctx context.Context, userID uint64) (int64, error) {
	now := time.Now()
	result := m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("user_id = ? AND status != ?", userID, StatusRead).
		Updates(map[string]interface{}{
			"status":  StatusRead,
			"read_at": &now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateStatus 更新通知状态（发送失败重试等外部流程使用）
func (m *defaultNotificationModel) UpdateStatus(ctx context.Context, id uint64, status int8) error {
	result := m.db.WithContext(ctx).
		Model(&Notification{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
