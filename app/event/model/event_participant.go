package model

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ==================== 错误定义 ====================

var (
	ErrParticipantNotFound  = errors.New("报名记录不存在")
	ErrDuplicateParticipant = errors.New("已报名该活动")
)

// ==================== EventParticipant 报名记录模型 ====================

type EventParticipant struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	EventID uint64 `gorm:"uniqueIndex:uk_event_user,priority:1;index:idx_event_id;not null;comment:活动ID" json:"event_id"`
	UserID  uint64 `gorm:"uniqueIndex:uk_event_user,priority:2;index:idx_user_id;not null;comment:用户ID" json:"user_id"`

	CreatedAt int64 `gorm:"autoCreateTime;index" json:"created_at"`
}

func (EventParticipant) TableName() string {
	return "event_participants"
}

// ==================== EventParticipantModel 数据访问层 ====================
// 报名记录的写入走 EventModel.Join/Leave 的事务（和活动行 CAS 绑定），
// 这里只提供读取；聚合加载（EventModel.FindByID）经由 ListByEventID

type EventParticipantModel struct {
	db *gorm.DB
}

func NewEventParticipantModel(db *gorm.DB) *EventParticipantModel {
	return &EventParticipantModel{db: db}
}

// ListByEventID 获取活动报名记录（按报名先后排序）
func (m *EventParticipantModel) ListByEventID(ctx context.Context, eventID uint64) ([]EventParticipant, error) {
	var participants []EventParticipant
	err := m.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Find(&participants).Error
	return participants, err
}
