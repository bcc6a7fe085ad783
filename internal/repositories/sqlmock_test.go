package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

// Driver-error paths that are awkward to provoke against a real database.

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsernameDriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT username, password_hash").
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	user, err := repo.GetByUsername(context.Background(), "alice")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_ListDriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT username, first_name").
		WillReturnError(errors.New("connection reset"))

	users, err := repo.List(context.Background())
	assert.Error(t, err)
	assert.Nil(t, users)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageReadRepository_ListFromDriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewMessageReadRepository(sqlxDB)

	mock.ExpectQuery("SELECT m.message_id").
		WithArgs("alice").
		WillReturnError(errors.New("connection reset"))

	messages, err := repo.ListFrom(context.Background(), "alice")
	assert.Error(t, err)
	assert.Nil(t, messages)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageWriteRepository_SaveDriverError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewMessageWriteRepository(sqlxDB)

	id := uuid.New()
	mock.ExpectQuery("INSERT INTO messages").
		WithArgs(id, "alice", "bob", "hi").
		WillReturnError(errors.New("connection reset"))

	msg, err := repo.Save(context.Background(), id, "alice", "bob", "hi")
	assert.Error(t, err)
	assert.Nil(t, msg)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessageWriteRepository_SetReadAtRows(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewMessageWriteRepository(sqlxDB)

	id := uuid.New()
	readAt := time.Date(2026, 8, 1, 11, 30, 0, 0, time.UTC)

	mock.ExpectQuery("UPDATE messages").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"read_at"}).AddRow(readAt))

	got, err := repo.SetReadAt(context.Background(), id)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.True(t, got.Equal(readAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}
