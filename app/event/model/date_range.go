package model

import (
	"event-platform/common/errorx"
)

// DateRange 活动时间区间（unix 秒），构造成功后不可变
type DateRange struct {
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`
}

// NewDateRange 创建并校验时间区间
// start 必须严格晚于 now，end 必须严格晚于 start
func NewDateRange(start, end, now int64) (DateRange, error) {
	if start <= now {
		return DateRange{}, errorx.NewWithMessage(errorx.CodeInvalidRange, "活动开始时间必须晚于当前时间")
	}
	if end <= start {
		return DateRange{}, errorx.NewWithMessage(errorx.CodeInvalidRange, "活动结束时间必须晚于开始时间")
	}
	return DateRange{StartTime: start, EndTime: end}, nil
}

// DurationHours 区间时长（四舍五入到小时）
func (r DateRange) DurationHours() int64 {
	return (r.EndTime - r.StartTime + 1800) / 3600
}

// Overlaps 判断两个区间是否重叠
// 半开区间语义：端点相接不算重叠
func (r DateRange) Overlaps(other DateRange) bool {
	return r.StartTime < other.EndTime && r.EndTime > other.StartTime
}
