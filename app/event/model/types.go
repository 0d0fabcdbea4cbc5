package model

//  活动状态常量

const (
	StatusDraft     int8 = 0 // 草稿
	StatusPublished int8 = 1 // 已发布(报名中)
	StatusCancelled int8 = 2 // 已取消
	StatusCompleted int8 = 3 // 已结束
)

// StatusText 状态文本映射
var StatusText = map[int8]string{
	StatusDraft:     "草稿",
	StatusPublished: "已发布",
	StatusCancelled: "已取消",
	StatusCompleted: "已结束",
}

// 分页参数

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
	MaxPage         = 100 // 禁止超过100页
)

// Pagination 分页请求
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Normalize 规范化分页参数
func (p *Pagination) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Offset 计算偏移量
func (p *Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
