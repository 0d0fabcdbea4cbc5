package model

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqlerr "github.com/go-sql-driver/mysql"
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

func eventRows(id uint64, version uint32, status int8) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "location", "organizer_id",
		"start_time", "end_time", "max_participants", "current_participants",
		"status", "version", "created_at", "updated_at",
	}).AddRow(id, "读书会", "", "图书馆", 1, 1900000000, 1900086400, 2, 0, status, version, 1890000000, 1890000000)
}

func TestEventModelFindByID(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventModel(db)

	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs(100, 1).
		WillReturnRows(eventRows(100, 3, StatusPublished))
	mock.ExpectQuery("SELECT \\* FROM `event_participants` WHERE event_id = \\?").
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}).
			AddRow(1, 100, 5, 1890000100).
			AddRow(2, 100, 3, 1890000200))

	event, err := m.FindByID(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), event.ID)
	assert.Equal(t, uint32(3), event.Version)
	// 参与者按报名先后排序
	assert.Equal(t, []uint64{5, 3}, event.ParticipantIDs())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventModelFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventModel(db)

	mock.ExpectQuery("SELECT \\* FROM `events` WHERE id = \\?").
		WithArgs(999, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := m.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrEventNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventModelUpdateVersionConflict(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventModel(db)

	// 版本不匹配时更新影响 0 行
	mock.ExpectExec("UPDATE `events` SET .+ WHERE id = \\? AND version = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))

	event := &Event{ID: 100, Title: "读书会", Version: 3}
	err := m.Update(context.Background(), event)
	assert.ErrorIs(t, err, ErrEventConcurrentUpdate)
	// 失败时本地版本号不变
	assert.Equal(t, uint32(3), event.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventModelUpdateSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventModel(db)

	mock.ExpectExec("UPDATE `events` SET .+version=version \\+ 1 WHERE id = \\? AND version = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &Event{ID: 100, Title: "读书会", Version: 3}
	err := m.Update(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), event.Version)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventModelJoin(t *testing.T) {
	t.Run("commit path", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewEventModel(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `event_participants`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE `events` SET .+ WHERE id = \\? AND version = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := m.Join(context.Background(), 100, 3, 5)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("version conflict rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewEventModel(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `event_participants`").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE `events` SET .+ WHERE id = \\? AND version = \\?").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := m.Join(context.Background(), 100, 3, 5)
		assert.ErrorIs(t, err, ErrEventConcurrentUpdate)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate participant rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewEventModel(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `event_participants`").
			WillReturnError(&mysqlerr.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		err := m.Join(context.Background(), 100, 3, 5)
		assert.ErrorIs(t, err, ErrDuplicateParticipant)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventModelLeave(t *testing.T) {
	t.Run("commit path", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewEventModel(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `event_participants`").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `events` SET .+ WHERE id = \\? AND version = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := m.Leave(context.Background(), 100, 3, 5)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a participant rolls back", func(t *testing.T) {
		db, mock := newMockDB(t)
		m := NewEventModel(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `event_participants`").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := m.Leave(context.Background(), 100, 3, 5)
		assert.ErrorIs(t, err, ErrParticipantNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsDuplicateKeyErr(t *testing.T) {
	assert.False(t, isDuplicateKeyErr(nil))
	assert.True(t, isDuplicateKeyErr(&mysqlerr.MySQLError{Number: 1062}))
	assert.False(t, isDuplicateKeyErr(&mysqlerr.MySQLError{Number: 1452}))
	assert.True(t, isDuplicateKeyErr(gorm.ErrDuplicatedKey))
}
