// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

// ==================== 活动请求 ====================

type CreateEventReq struct {
	Title           string `json:"title"`
	Description     string `json:"description,optional"`
	Location        string `json:"location,optional"`
	StartTime       int64  `json:"start_time"`
	EndTime         int64  `json:"end_time"`
	MaxParticipants uint32 `json:"max_participants,optional"`
}

type EventIdReq struct {
	Id uint64 `path:"id"`
}

type UpdateEventReq struct {
	Id              uint64  `path:"id"`
	Title           *string `json:"title,optional"`
	Description     *string `json:"description,optional"`
	Location        *string `json:"location,optional"`
	StartTime       *int64  `json:"start_time,optional"`
	EndTime         *int64  `json:"end_time,optional"`
	MaxParticipants *uint32 `json:"max_participants,optional"`
}

type ListEventsReq struct {
	Status      int    `form:"status,default=-1"`
	Search      string `form:"search,optional"`
	OrganizerId uint64 `form:"organizer_id,optional"`
	From        int64  `form:"from,optional"`
	To          int64  `form:"to,optional"`
	Page        int    `form:"page,default=1"`
	PageSize    int    `form:"page_size,default=10"`
}

type MyEventsReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=10"`
}

// ==================== 活动响应 ====================

type EventInfo struct {
	Id               uint64   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	OrganizerId      uint64   `json:"organizer_id"`
	StartTime        int64    `json:"start_time"`
	EndTime          int64    `json:"end_time"`
	MaxParticipants  uint32   `json:"max_participants"`
	ParticipantCount uint32   `json:"participant_count"`
	IsFullyBooked    bool     `json:"is_fully_booked"`
	Status           int8     `json:"status"`
	StatusText       string   `json:"status_text"`
	Participants     []uint64 `json:"participants,omitempty"`
	Version          uint32   `json:"version"`
	CreatedAt        int64    `json:"created_at"`
	UpdatedAt        int64    `json:"updated_at"`
}

type ListEventsResp struct {
	Events []EventInfo `json:"events"`
	Total  int64       `json:"total"`
}
