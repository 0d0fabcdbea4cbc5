package model

import (
	"testing"
	"time"

	"event-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateRange(t *testing.T) {
	now := time.Now().Unix()

	t.Run("valid range", func(t *testing.T) {
		r, err := NewDateRange(now+3600, now+7200, now)
		require.NoError(t, err)
		assert.Equal(t, now+3600, r.StartTime)
		assert.Equal(t, now+7200, r.EndTime)
	})

	t.Run("start in the past", func(t *testing.T) {
		_, err := NewDateRange(now-3600, now+3600, now)
		require.Error(t, err)
		assert.True(t, errorx.Is(err, errorx.CodeInvalidRange))
	})

	t.Run("start equals now", func(t *testing.T) {
		_, err := NewDateRange(now, now+3600, now)
		require.Error(t, err)
		assert.True(t, errorx.Is(err, errorx.CodeInvalidRange))
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := NewDateRange(now+7200, now+3600, now)
		require.Error(t, err)
		assert.True(t, errorx.Is(err, errorx.CodeInvalidRange))
	})

	t.Run("end equals start", func(t *testing.T) {
		_, err := NewDateRange(now+3600, now+3600, now)
		require.Error(t, err)
		assert.True(t, errorx.Is(err, errorx.CodeInvalidRange))
	})
}

func TestDateRangeDurationHours(t *testing.T) {
	cases := []struct {
		name    string
		seconds int64
		want    int64
	}{
		{"exact hours", 2 * 3600, 2},
		{"rounds up from half", 2*3600 + 1800, 3},
		{"rounds down below half", 2*3600 + 1799, 2},
		{"under one hour rounds down", 1000, 0},
		{"half hour rounds up", 1800, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := DateRange{StartTime: 1000, EndTime: 1000 + tc.seconds}
			assert.Equal(t, tc.want, r.DurationHours())
		})
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	base := DateRange{StartTime: 100, EndTime: 200}

	cases := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{"fully inside", DateRange{StartTime: 120, EndTime: 180}, true},
		{"contains base", DateRange{StartTime: 50, EndTime: 250}, true},
		{"partial left", DateRange{StartTime: 50, EndTime: 150}, true},
		{"partial right", DateRange{StartTime: 150, EndTime: 250}, true},
		{"touching left endpoint", DateRange{StartTime: 50, EndTime: 100}, false},
		{"touching right endpoint", DateRange{StartTime: 200, EndTime: 300}, false},
		{"disjoint before", DateRange{StartTime: 10, EndTime: 50}, false},
		{"disjoint after", DateRange{StartTime: 300, EndTime: 400}, false},
		{"identical", DateRange{StartTime: 100, EndTime: 200}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// 重叠关系是对称的
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}
