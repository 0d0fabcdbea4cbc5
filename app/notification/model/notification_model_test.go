package model

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func notificationRows(id, userID uint64, status int8, readAt *time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "type", "title", "message", "metadata",
		"status", "read_at", "created_at",
	}).AddRow(id, userID, "event_published", "活动已发布", "你报名的活动已发布", []byte(`{"event_id":"100"}`), status, readAt, time.Unix(1890000000, 0))
}

func TestNotificationModelFindOne(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewNotificationModel(db)

	mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\?").
		WithArgs(10, 1).
		WillReturnRows(notificationRows(10, 5, StatusSent, nil))

	notification, err := m.FindOne(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), notification.ID)
	assert.Equal(t, StatusSent, notification.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationModelFindOneNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewNotificationModel(db)

	mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\?").
		WithArgs(999, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := m.FindOne(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotificationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationModelGetUnreadCount(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewNotificationModel(db)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `notifications` WHERE user_id = \\? AND status != \\?").
		WithArgs(5, StatusRead).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	count, err := m.GetUnreadCount(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationModelMarkAsRead(t *testing.T) {
	t.Run("unread notification gets read_at", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewNotificationModel(db)

		mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\? AND user_id = \\?").
			WithArgs(10, 5, 1).
			WillReturnRows(notificationRows(10, 5, StatusSent, nil))
		mock.ExpectExec("UPDATE `notifications` SET .+ WHERE id = \\? AND user_id = \\? AND status != \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))

		notification, err := m.MarkAsRead(context.Background(), 5, 10)
		require.NoError(t, err)
		assert.Equal(t, StatusRead, notification.Status)
		require.NotNil(t, notification.ReadAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewNotificationModel(db)

		readAt := time.Unix(1890000100, 0)
		// 已读通知只查不改
		mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\? AND user_id = \\?").
			WithArgs(10, 5, 1).
			WillReturnRows(notificationRows(10, 5, StatusRead, &readAt))

		notification, err := m.MarkAsRead(context.Background(), 5, 10)
		require.NoError(t, err)
		assert.Equal(t, StatusRead, notification.Status)
		require.NotNil(t, notification.ReadAt)
		assert.Equal(t, readAt.Unix(), notification.ReadAt.Unix())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other user's notification is invisible", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewNotificationModel(db)

		mock.ExpectQuery("SELECT \\* FROM `notifications` WHERE id = \\? AND user_id = \\?").
			WithArgs(10, 6, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := m.MarkAsRead(context.Background(), 6, 10)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationModelMarkAllAsRead(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewNotificationModel(db)

	mock.ExpectExec("UPDATE `notifications` SET .+ WHERE user_id = \\? AND status != \\?").
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := m.MarkAllAsRead(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationModelUpdateStatus(t *testing.T) {
	t.Run("existing notification", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewNotificationModel(db)

		mock.ExpectExec("UPDATE `notifications` SET .+ WHERE id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := m.UpdateStatus(context.Background(), 10, StatusFailed)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing notification", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewNotificationModel(db)

		mock.ExpectExec("UPDATE `notifications` SET .+ WHERE id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := m.UpdateStatus(context.Background(), 999, StatusFailed)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
