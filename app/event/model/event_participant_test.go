package model

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventParticipantModelListByEventID(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventParticipantModel(db)

	mock.ExpectQuery("SELECT \\* FROM `event_participants` WHERE event_id = \\? ORDER BY created_at ASC, id ASC").
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}).
			AddRow(2, 100, 9, 1890000100).
			AddRow(5, 100, 3, 1890000200))

	participants, err := m.ListByEventID(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	// 报名先后顺序
	assert.Equal(t, uint64(9), participants[0].UserID)
	assert.Equal(t, uint64(3), participants[1].UserID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventParticipantModelListByEventIDEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	m := NewEventParticipantModel(db)

	mock.ExpectQuery("SELECT \\* FROM `event_participants` WHERE event_id = \\?").
		WithArgs(100).
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_id", "user_id", "created_at"}))

	participants, err := m.ListByEventID(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, participants)
	require.NoError(t, mock.ExpectationsWereMet())
}
