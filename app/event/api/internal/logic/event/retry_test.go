package event

import (
	"errors"
	"sync"
	"testing"

	"event-platform/app/event/model"
	"event-platform/common/errorx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry(t *testing.T) {
	// 测试中不真正退避
	oldBackoff := casBackoff
	casBackoff = func(int) {}
	defer func() { casBackoff = oldBackoff }()

	t.Run("succeeds first attempt", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries on version conflict then succeeds", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return model.ErrEventConcurrentUpdate
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after bounded attempts", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return model.ErrEventConcurrentUpdate
		})
		assert.Equal(t, maxCasAttempts, calls)
		assert.True(t, errorx.Is(err, errorx.CodeConcurrencyConflict))
	})

	t.Run("non-conflict errors are not retried", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return wantErr
		})
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("domain guard errors pass through unchanged", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return errorx.ErrCapacityExceeded()
		})
		assert.Equal(t, 1, calls)
		assert.True(t, errorx.Is(err, errorx.CodeCapacityExceeded))
	})
}

// casEventStore 带版本 CAS 的内存活动存储，写入语义同 EventModel.Join：
// 期望版本不匹配返回 ErrEventConcurrentUpdate，匹配则追加报名并递增版本
type casEventStore struct {
	mu    sync.Mutex
	event model.Event
}

func (s *casEventStore) load() *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.event
	snapshot.Participants = append([]model.EventParticipant(nil), s.event.Participants...)
	return &snapshot
}

func (s *casEventStore) join(eventID uint64, expectedVersion uint32, userID uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.event.Version != expectedVersion {
		return model.ErrEventConcurrentUpdate
	}
	s.event.Participants = append(s.event.Participants, model.EventParticipant{EventID: eventID, UserID: userID})
	s.event.CurrentParticipants = uint32(len(s.event.Participants))
	s.event.Version++
	return nil
}

// 并发报名抢最后一个名额：恰好一人成功
// 败者要么 CAS 冲突后重读撞上容量上限，要么首次读取时就已满员
func TestConcurrentJoinsLastSlot(t *testing.T) {
	oldBackoff := casBackoff
	casBackoff = func(int) {}
	defer func() { casBackoff = oldBackoff }()

	store := &casEventStore{event: model.Event{
		ID:              100,
		OrganizerID:     1,
		Status:          model.StatusPublished,
		MaxParticipants: 1,
		Version:         3,
	}}

	joinAs := func(userID uint64) error {
		return withRetry(func() error {
			event := store.load()
			if err := event.AddParticipant(userID); err != nil {
				return err
			}
			return store.join(event.ID, event.Version, userID)
		})
	}

	start := make(chan struct{})
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []uint64{5, 9} {
		wg.Add(1)
		go func(i int, userID uint64) {
			defer wg.Done()
			<-start
			errs[i] = joinAs(userID)
		}(i, userID)
	}
	close(start)
	wg.Wait()

	succeeded, capacityHit := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errorx.Is(err, errorx.CodeCapacityExceeded):
			capacityHit++
		default:
			t.Fatalf("意外错误: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, capacityHit)

	final := store.load()
	assert.Equal(t, uint32(1), final.CurrentParticipants)
	assert.Len(t, final.Participants, 1)
}
