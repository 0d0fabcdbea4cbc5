package model

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// UserStatus 用户状态
const (
	// UserStatusDisabled 禁用
	UserStatusDisabled int64 = 0
	// UserStatusNormal 正常
	UserStatusNormal int64 = 1
)

// UserRole 用户角色
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("用户不存在")

// User 用户基础信息实体
type User struct {
	// 用户主键ID
	UserID int64 `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	// 邮箱（登录标识）
	Email string `gorm:"uniqueIndex:uk_email;column:email;size:100;not null" json:"email"`
	// 用户昵称
	Nickname string `gorm:"column:nickname;size:50;not null" json:"nickname"`
	// 密码（SHA256 摘要）
	Password string `gorm:"column:password;size:255;not null" json:"-"`
	// 角色：user / admin
	Role string `gorm:"column:role;size:16;not null;default:user" json:"role"`
	// 用户状态：0-禁用，1-正常
	Status int64 `gorm:"column:status;not null;default:1" json:"status"`
	// 用户创建时间
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	// 用户信息更新时间
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IUserModel 用户数据访问层接口
type IUserModel interface {
	// Create 创建用户
	Create(ctx context.Context, user *User) error
	// FindByUserID 根据用户ID查询
	FindByUserID(ctx context.Context, userID int64) (*User, error)
	// FindByEmail 根据邮箱查询
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Update 更新用户信息
	Update(ctx context.Context, user *User) error
	// UpdatePassword 更新密码
	UpdatePassword(ctx context.Context, userID int64, password string) error
	// ExistsByEmail 检查邮箱是否存在
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// FindByIDs 根据ID列表查询
	FindByIDs(ctx context.Context, ids []int64) ([]*User, error)
}

// 确保 UserModel 实现 IUserModel 接口
var _ IUserModel = (*UserModel)(nil)

// UserModel 用户数据访问层
type UserModel struct {
	db *gorm.DB
}

// NewUserModel 创建用户Model实例
func NewUserModel(db *gorm.DB) IUserModel {
	return &UserModel{db: db}
}

// Create 创建用户
func (m *UserModel) Create(ctx context.Context, user *User) error {
	return m.db.WithContext(ctx).Create(user).Error
}

// FindByUserID 根据用户ID查询
func (m *UserModel) FindByUserID(ctx context.Context, userID int64) (*User, error) {
	var user User
	err := m.db.WithContext(ctx).First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail 根据邮箱查询
func (m *UserModel) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := m.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update 更新用户信息
func (m *UserModel) Update(ctx context.Context, user *User) error {
	return m.db.WithContext(ctx).Save(user).Error
}

// UpdatePassword 更新密码
func (m *UserModel) UpdatePassword(ctx context.Context, userID int64, password string) error {
	return m.db.WithContext(ctx).
		Model(&User{}).
		Where("user_id = ?", userID).
		Update("password", password).Error
}

// ExistsByEmail 检查邮箱是否存在
func (m *UserModel) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := m.db.WithContext(ctx).
		Model(&User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByIDs 根据ID列表查询
func (m *UserModel) FindByIDs(ctx context.Context, ids []int64) ([]*User, error) {
	var users []*User
	err := m.db.WithContext(ctx).Where("user_id IN ?", ids).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
