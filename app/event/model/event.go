package model

import (
	"context"
	"errors"
	"strings"

	"event-platform/common/errorx"

	mysqlerr "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ==================== 错误定义 ====================

var (
	ErrEventNotFound         = errors.New("活动不存在")
	ErrEventConcurrentUpdate = errors.New("并发更新冲突，请重试")
	ErrPageTooDeep           = errors.New("不支持查看超过100页的数据，请使用搜索功能")
)

// ==================== Event 活动模型 ====================

type Event struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// 基本信息
	Title       string `gorm:"type:varchar(100);not null;comment:活动标题" json:"title"`
	Description string `gorm:"type:text;comment:活动详情" json:"description"`
	Location    string `gorm:"type:varchar(200);default:'';comment:活动地点" json:"location"`

	// 组织者（创建后不可变）
	OrganizerID uint64 `gorm:"index;not null;comment:组织者用户ID" json:"organizer_id"`

	// 时间信息
	StartTime int64 `gorm:"index:idx_status_start,priority:2;not null;comment:活动开始时间" json:"start_time"`
	EndTime   int64 `gorm:"not null;comment:活动结束时间" json:"end_time"`

	// 名额（0=不限）
	MaxParticipants     uint32 `gorm:"default:0;comment:最大参与人数(0=不限)" json:"max_participants"`
	CurrentParticipants uint32 `gorm:"default:0;comment:当前报名人数" json:"current_participants"`

	// 状态
	Status int8 `gorm:"default:0;index:idx_status_start,priority:1;comment:状态" json:"status"`

	// 乐观锁
	Version uint32 `gorm:"default:0;comment:乐观锁版本号" json:"version"`

	// 时间戳
	CreatedAt int64          `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt int64          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 关联数据（非数据库字段，按报名先后排序）
	Participants []EventParticipant `gorm:"-" json:"participants,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

// NewEvent 创建草稿状态的活动（时间区间需已通过 NewDateRange 校验）
func NewEvent(title, description, location string, dateRange DateRange, organizerID uint64, maxParticipants uint32) *Event {
	return &Event{
		Title:           title,
		Description:     description,
		Location:        location,
		OrganizerID:     organizerID,
		StartTime:       dateRange.StartTime,
		EndTime:         dateRange.EndTime,
		MaxParticipants: maxParticipants,
		Status:          StatusDraft,
	}
}

// StatusText 获取状态文本
func (e *Event) StatusText() string {
	if text, ok := StatusText[e.Status]; ok {
		return text
	}
	return "未知"
}

// DateRange 获取活动时间区间
func (e *Event) DateRange() DateRange {
	return DateRange{StartTime: e.StartTime, EndTime: e.EndTime}
}

// ==================== 状态机 ====================
// Draft → Published → Completed；Draft/Published → Cancelled
// Cancelled 和 Completed 为终态，没有出边

// Publish 发布活动
func (e *Event) Publish() error {
	if e.Status != StatusDraft {
		return errorx.ErrInvalidTransition(e.StatusText(), StatusText[StatusPublished])
	}
	e.Status = StatusPublished
	return nil
}

// Complete 结束活动
func (e *Event) Complete() error {
	if e.Status != StatusPublished {
		return errorx.ErrInvalidTransition(e.StatusText(), StatusText[StatusCompleted])
	}
	e.Status = StatusCompleted
	return nil
}

// Cancel 取消活动
func (e *Event) Cancel() error {
	if e.Status == StatusCancelled || e.Status == StatusCompleted {
		return errorx.ErrInvalidTransition(e.StatusText(), StatusText[StatusCancelled])
	}
	e.Status = StatusCancelled
	return nil
}

// ==================== 领域方法 ====================
// 只修改内存中的聚合，持久化和并发控制由 EventModel 负责

// UpdateDetails 更新基本信息
// 已取消的活动不可修改；名额上限不能低于当前报名人数
func (e *Event) UpdateDetails(title, description, location string, maxParticipants uint32) error {
	if e.Status == StatusCancelled {
		return errorx.ErrImmutableState()
	}
	if maxParticipants > 0 && maxParticipants < e.ParticipantCount() {
		return errorx.ErrCapacityViolation()
	}
	e.Title = title
	e.Description = description
	e.Location = location
	e.MaxParticipants = maxParticipants
	return nil
}

// UpdateDates 更新活动时间（重新校验区间）
func (e *Event) UpdateDates(start, end, now int64) error {
	if e.Status == StatusCancelled {
		return errorx.ErrImmutableState()
	}
	dateRange, err := NewDateRange(start, end, now)
	if err != nil {
		return err
	}
	e.StartTime = dateRange.StartTime
	e.EndTime = dateRange.EndTime
	return nil
}

// AddParticipant 添加参与者
func (e *Event) AddParticipant(userID uint64) error {
	if e.Status != StatusPublished {
		return errorx.ErrNotPublished()
	}
	if e.IsFullyBooked() {
		return errorx.ErrCapacityExceeded()
	}
	if e.IsParticipant(userID) {
		return errorx.ErrAlreadyParticipant()
	}
	if e.IsOrganizer(userID) {
		return errorx.ErrOrganizerCannotJoin()
	}
	e.Participants = append(e.Participants, EventParticipant{
		EventID: e.ID,
		UserID:  userID,
	})
	e.CurrentParticipants = uint32(len(e.Participants))
	return nil
}

// RemoveParticipant 移除参与者
func (e *Event) RemoveParticipant(userID uint64) error {
	if e.Status == StatusCompleted {
		return errorx.ErrImmutableState()
	}
	for i := range e.Participants {
		if e.Participants[i].UserID == userID {
			e.Participants = append(e.Participants[:i], e.Participants[i+1:]...)
			e.CurrentParticipants = uint32(len(e.Participants))
			return nil
		}
	}
	return errorx.ErrNotAParticipant()
}

// ParticipantCount 当前报名人数
func (e *Event) ParticipantCount() uint32 {
	if len(e.Participants) > 0 {
		return uint32(len(e.Participants))
	}
	return e.CurrentParticipants
}

// IsFullyBooked 是否已满员（0=不限名额）
func (e *Event) IsFullyBooked() bool {
	return e.MaxParticipants > 0 && e.ParticipantCount() >= e.MaxParticipants
}

// IsOrganizer 是否为组织者
func (e *Event) IsOrganizer(userID uint64) bool {
	return e.OrganizerID == userID
}

// IsParticipant 是否已报名
func (e *Event) IsParticipant(userID uint64) bool {
	for i := range e.Participants {
		if e.Participants[i].UserID == userID {
			return true
		}
	}
	return false
}

// ParticipantIDs 参与者ID列表（报名先后顺序）
func (e *Event) ParticipantIDs() []uint64 {
	ids := make([]uint64, 0, len(e.Participants))
	for i := range e.Participants {
		ids = append(ids, e.Participants[i].UserID)
	}
	return ids
}

// ==================== EventModel 数据访问层 ====================

type EventModel struct {
	db           *gorm.DB
	participants *EventParticipantModel
}

func NewEventModel(db *gorm.DB) *EventModel {
	return &EventModel{
		db:           db,
		participants: NewEventParticipantModel(db),
	}
}

// Create 创建活动
func (m *EventModel) Create(ctx context.Context, event *Event) error {
	return m.db.WithContext(ctx).Create(event).Error
}

// FindByID 根据ID查询（加载参与者列表）
func (m *EventModel) FindByID(ctx context.Context, id uint64) (*Event, error) {
	var event Event
	err := m.db.WithContext(ctx).
		Where("id = ?", id).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	participants, err := m.participants.ListByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Participants = participants
	return &event, nil
}

// FindByIDs 批量查询活动
func (m *EventModel) FindByIDs(ctx context.Context, ids []uint64) ([]Event, error) {
	if len(ids) == 0 {
		return []Event{}, nil
	}
	var events []Event
	err := m.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&events).Error
	return events, err
}

// Update 更新活动（带乐观锁）
// 版本不匹配说明读到了陈旧数据，调用方需要重读、重做领域变更后重试
func (m *EventModel) Update(ctx context.Context, event *Event) error {
	result := m.db.WithContext(ctx).
		Model(&Event{}).
		Where("id = ? AND version = ?", event.ID, event.Version).
		Updates(map[string]interface{}{
			"title":            event.Title,
			"description":      event.Description,
			"location":         event.Location,
			"start_time":       event.StartTime,
			"end_time":         event.EndTime,
			"max_participants": event.MaxParticipants,
			"status":           event.Status,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventConcurrentUpdate
	}
	event.Version++
	return nil
}

// Join 报名（事务：报名记录 + 活动行 CAS）
// 容量检查基于 expectedVersion 对应的读取，CAS 失败说明检查已失效
func (m *EventModel) Join(ctx context.Context, eventID uint64, expectedVersion uint32, userID uint64) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&EventParticipant{
			EventID: eventID,
			UserID:  userID,
		}).Error; err != nil {
			if isDuplicateKeyErr(err) {
				return ErrDuplicateParticipant
			}
			return err
		}

		result := tx.Model(&Event{}).
			Where("id = ? AND version = ?", eventID, expectedVersion).
			Updates(map[string]interface{}{
				"current_participants": gorm.Expr("current_participants + 1"),
				"version":              gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventConcurrentUpdate
		}
		return nil
	})
}

// Leave 取消报名（事务：删除报名记录 + 活动行 CAS）
func (m *EventModel) Leave(ctx context.Context, eventID uint64, expectedVersion uint32, userID uint64) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("event_id = ? AND user_id = ?", eventID, userID).
			Delete(&EventParticipant{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrParticipantNotFound
		}

		result = tx.Model(&Event{}).
			Where("id = ? AND version = ?", eventID, expectedVersion).
			Updates(map[string]interface{}{
				"current_participants": gorm.Expr("current_participants - 1"),
				"version":              gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrEventConcurrentUpdate
		}
		return nil
	})
}

// Delete 软删除
func (m *EventModel) Delete(ctx context.Context, id uint64) error {
	result := m.db.WithContext(ctx).Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// ==================== 列表查询 ====================

// ListQuery 列表查询条件（条件之间为 AND 关系，零值=不约束）
type ListQuery struct {
	Pagination
	Status      int    // -1 = 全部, 具体值 = 筛选该状态
	OrganizerID uint64 // 0 = 全部
	Keyword     string // 标题模糊搜索（不区分大小写）
	From        int64  // 时间区间筛选：活动与 [From, To) 有重叠
	To          int64
}

// ListResult 列表查询结果
type ListResult struct {
	List       []Event
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// List 分页列表查询
func (m *EventModel) List(ctx context.Context, query *ListQuery) (*ListResult, error) {
	query.Pagination.Normalize()

	// 禁止超深分页
	if query.Page > MaxPage {
		return nil, ErrPageTooDeep
	}

	db := m.db.WithContext(ctx).Model(&Event{})
	db = m.buildListConditions(db, query)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	var events []Event
	err := db.Order("created_at DESC").
		Offset(query.Offset()).
		Limit(query.PageSize).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / query.PageSize
	if int(total)%query.PageSize > 0 {
		totalPages++
	}

	return &ListResult{
		List:       events,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: totalPages,
	}, nil
}

// buildListConditions 构建查询条件
func (m *EventModel) buildListConditions(db *gorm.DB, query *ListQuery) *gorm.DB {
	// 状态筛选
	if query.Status >= 0 {
		db = db.Where("status = ?", query.Status)
	}

	// 组织者筛选
	if query.OrganizerID > 0 {
		db = db.Where("organizer_id = ?", query.OrganizerID)
	}

	// 时间区间重叠筛选（半开区间）
	if query.From > 0 && query.To > 0 {
		db = db.Where("start_time < ? AND end_time > ?", query.To, query.From)
	}

	// 标题模糊搜索
	if query.Keyword != "" {
		likePattern := "%" + strings.ToLower(escapeKeyword(query.Keyword)) + "%"
		db = db.Where("LOWER(title) LIKE ?", likePattern)
	}

	return db
}

// ListByOrganizer 获取用户组织的活动列表
func (m *EventModel) ListByOrganizer(ctx context.Context, organizerID uint64, page *Pagination) ([]Event, int64, error) {
	page.Normalize()

	db := m.db.WithContext(ctx).Model(&Event{}).Where("organizer_id = ?", organizerID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := db.Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&events).Error
	return events, total, err
}

// ListByParticipant 获取用户报名的活动列表（联表查询）
func (m *EventModel) ListByParticipant(ctx context.Context, userID uint64, page *Pagination) ([]Event, int64, error) {
	page.Normalize()

	db := m.db.WithContext(ctx).
		Table("events e").
		Joins("INNER JOIN event_participants p ON p.event_id = e.id").
		Where("p.user_id = ? AND e.deleted_at IS NULL", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := db.Select("e.*").
		Order("p.created_at DESC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&events).Error
	return events, total, err
}

// ==================== 内部辅助 ====================

// isDuplicateKeyErr 判断是否为重复键错误
func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqlerr.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}

// escapeKeyword 转义 SQL LIKE 特殊字符
// % 和 _ 是通配符，用户输入需要转义以进行字面匹配
func escapeKeyword(keyword string) string {
	keyword = strings.ReplaceAll(keyword, "\\", "\\\\")
	keyword = strings.ReplaceAll(keyword, "%", "\\%")
	keyword = strings.ReplaceAll(keyword, "_", "\\_")
	return keyword
}
