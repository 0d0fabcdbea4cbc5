// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "encoding/json"

// ==================== 通知相关 ====================

// ListNotificationsReq 通知列表请求
type ListNotificationsReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=10"`
}

// NotificationIdReq 通知ID请求
type NotificationIdReq struct {
	Id uint64 `path:"id"`
}

// NotificationInfo 通知信息
type NotificationInfo struct {
	Id        uint64          `json:"id"`
	Type      string          `json:"type"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	Status    int8            `json:"status"`
	IsRead    bool            `json:"is_read"`
	ReadAt    int64           `json:"read_at,omitempty"` // 已读时间（Unix 秒），未读为 0
	CreatedAt int64           `json:"created_at"`
}

// ListNotificationsResp 通知列表响应
type ListNotificationsResp struct {
	Notifications []NotificationInfo `json:"notifications"`
	Total         int64              `json:"total"`
}

// UnreadCountResp 未读数量响应
type UnreadCountResp struct {
	Count int64 `json:"count"`
}

// MarkAllReadResp 全部已读响应
type MarkAllReadResp struct {
	Affected int64 `json:"affected"`
}
