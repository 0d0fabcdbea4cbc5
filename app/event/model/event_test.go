package model

import (
	"testing"
	"time"

	"event-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftEvent(maxParticipants uint32) *Event {
	now := time.Now().Unix()
	dateRange, _ := NewDateRange(now+7*86400, now+20*86400, now)
	e := NewEvent("秋季徒步", "周末爬山活动", "香山", dateRange, 1, maxParticipants)
	e.ID = 100
	return e
}

// ==================== 状态机 ====================

func TestEventStateMachine(t *testing.T) {
	type transition struct {
		name string
		do   func(e *Event) error
	}
	publish := transition{"publish", func(e *Event) error { return e.Publish() }}
	cancel := transition{"cancel", func(e *Event) error { return e.Cancel() }}
	complete := transition{"complete", func(e *Event) error { return e.Complete() }}

	cases := []struct {
		name       string
		from       int8
		transition transition
		wantStatus int8
		wantErr    bool
	}{
		{"draft publish", StatusDraft, publish, StatusPublished, false},
		{"draft cancel", StatusDraft, cancel, StatusCancelled, false},
		{"draft complete rejected", StatusDraft, complete, StatusDraft, true},
		{"published complete", StatusPublished, complete, StatusCompleted, false},
		{"published cancel", StatusPublished, cancel, StatusCancelled, false},
		{"published publish rejected", StatusPublished, publish, StatusPublished, true},
		{"cancelled publish rejected", StatusCancelled, publish, StatusCancelled, true},
		{"cancelled cancel rejected", StatusCancelled, cancel, StatusCancelled, true},
		{"cancelled complete rejected", StatusCancelled, complete, StatusCancelled, true},
		{"completed publish rejected", StatusCompleted, publish, StatusCompleted, true},
		{"completed cancel rejected", StatusCompleted, cancel, StatusCompleted, true},
		{"completed complete rejected", StatusCompleted, complete, StatusCompleted, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newDraftEvent(0)
			e.Status = tc.from

			err := tc.transition.do(e)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errorx.Is(err, errorx.CodeInvalidTransition))
			} else {
				require.NoError(t, err)
			}
			// 失败的转换不能改变状态
			assert.Equal(t, tc.wantStatus, e.Status)
		})
	}
}

// ==================== 报名 ====================

func TestEventAddParticipant(t *testing.T) {
	t.Run("draft event rejects join", func(t *testing.T) {
		e := newDraftEvent(10)
		err := e.AddParticipant(2)
		assert.True(t, errorx.Is(err, errorx.CodeNotPublished))
	})

	t.Run("organizer cannot join", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		err := e.AddParticipant(e.OrganizerID)
		assert.True(t, errorx.Is(err, errorx.CodeOrganizerCannotJoin))
	})

	t.Run("duplicate join", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(2))
		err := e.AddParticipant(2)
		assert.True(t, errorx.Is(err, errorx.CodeAlreadyParticipant))
		assert.Equal(t, uint32(1), e.ParticipantCount())
	})

	t.Run("capacity ceiling", func(t *testing.T) {
		e := newDraftEvent(2)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(2))
		require.NoError(t, e.AddParticipant(3))
		assert.Equal(t, uint32(2), e.ParticipantCount())
		assert.True(t, e.IsFullyBooked())

		err := e.AddParticipant(4)
		assert.True(t, errorx.Is(err, errorx.CodeCapacityExceeded))
		assert.Equal(t, uint32(2), e.ParticipantCount())
	})

	t.Run("unlimited capacity never fully booked", func(t *testing.T) {
		e := newDraftEvent(0)
		require.NoError(t, e.Publish())
		for i := uint64(2); i < 60; i++ {
			require.NoError(t, e.AddParticipant(i))
		}
		assert.False(t, e.IsFullyBooked())
	})

	t.Run("insertion order is stable", func(t *testing.T) {
		e := newDraftEvent(0)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(5))
		require.NoError(t, e.AddParticipant(3))
		require.NoError(t, e.AddParticipant(9))
		assert.Equal(t, []uint64{5, 3, 9}, e.ParticipantIDs())
	})
}

func TestEventRemoveParticipant(t *testing.T) {
	t.Run("remove existing", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(2))
		require.NoError(t, e.AddParticipant(3))

		require.NoError(t, e.RemoveParticipant(2))
		assert.Equal(t, []uint64{3}, e.ParticipantIDs())
		assert.False(t, e.IsParticipant(2))
	})

	t.Run("remove absent", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		err := e.RemoveParticipant(42)
		assert.True(t, errorx.Is(err, errorx.CodeNotAParticipant))
	})

	t.Run("completed event is immutable", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(2))
		require.NoError(t, e.Complete())

		err := e.RemoveParticipant(2)
		assert.True(t, errorx.Is(err, errorx.CodeImmutableState))
		assert.True(t, e.IsParticipant(2))
	})
}

// ==================== 信息更新 ====================

func TestEventUpdateDetails(t *testing.T) {
	t.Run("normal update", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.UpdateDetails("新标题", "新描述", "新地点", 20))
		assert.Equal(t, "新标题", e.Title)
		assert.Equal(t, uint32(20), e.MaxParticipants)
	})

	t.Run("cancelled event is immutable", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Cancel())
		err := e.UpdateDetails("新标题", "", "", 20)
		assert.True(t, errorx.Is(err, errorx.CodeImmutableState))
	})

	t.Run("cannot lower capacity below headcount", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Publish())
		require.NoError(t, e.AddParticipant(2))
		require.NoError(t, e.AddParticipant(3))

		err := e.UpdateDetails(e.Title, e.Description, e.Location, 1)
		assert.True(t, errorx.Is(err, errorx.CodeCapacityViolation))
		assert.Equal(t, uint32(10), e.MaxParticipants)

		// 等于当前人数是允许的
		require.NoError(t, e.UpdateDetails(e.Title, e.Description, e.Location, 2))
	})
}

func TestEventUpdateDates(t *testing.T) {
	now := time.Now().Unix()

	t.Run("re-validates range", func(t *testing.T) {
		e := newDraftEvent(10)
		err := e.UpdateDates(now-3600, now+3600, now)
		assert.True(t, errorx.Is(err, errorx.CodeInvalidRange))
	})

	t.Run("cancelled event is immutable", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.Cancel())
		err := e.UpdateDates(now+3600, now+7200, now)
		assert.True(t, errorx.Is(err, errorx.CodeImmutableState))
	})

	t.Run("valid update", func(t *testing.T) {
		e := newDraftEvent(10)
		require.NoError(t, e.UpdateDates(now+3600, now+7200, now))
		assert.Equal(t, now+3600, e.StartTime)
		assert.Equal(t, now+7200, e.EndTime)
	})
}

// ==================== 场景 ====================

// 创建活动（名额2）→ 发布 → 两人报名 → 第三人报名失败
func TestEventCapacityScenario(t *testing.T) {
	now := time.Now().Unix()
	dateRange, err := NewDateRange(now+7*86400, now+20*86400, now)
	require.NoError(t, err)

	e := NewEvent("读书会", "", "图书馆", dateRange, 1, 2)
	require.NoError(t, e.Publish())

	require.NoError(t, e.AddParticipant(2))
	require.NoError(t, e.AddParticipant(3))
	assert.Equal(t, uint32(2), e.ParticipantCount())
	assert.True(t, e.IsFullyBooked())

	err = e.AddParticipant(4)
	assert.True(t, errorx.Is(err, errorx.CodeCapacityExceeded))

	// 取消后参与者名单保持不变
	require.NoError(t, e.Cancel())
	assert.Equal(t, []uint64{2, 3}, e.ParticipantIDs())
}
