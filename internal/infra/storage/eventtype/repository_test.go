package eventtype

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const selectEventTypeQuery = `SELECT e.id, e.url, e.title, e.duration, e.active FROM event_types e ` +
	`JOIN users u ON u.id = e.user_id WHERE u.username = $1 AND e.url = $2 LIMIT 1`

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetByUsernameAndURL(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectEventTypeQuery)).
		WithArgs("alice", "intro-call").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "title", "duration", "active"}).
			AddRow(int64(11), "intro-call", "Intro call", 15, true))

	eventType, err := repo.GetByUsernameAndURL(context.Background(), "alice", "intro-call")

	require.NoError(t, err)
	assert.Equal(t, &domain.EventType{ID: 11, URL: "intro-call", Title: "Intro call", DurationMinutes: 15, Active: true}, eventType)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsernameAndURL_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectEventTypeQuery)).
		WithArgs("alice", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "url", "title", "duration", "active"}))

	_, err := repo.GetByUsernameAndURL(context.Background(), "alice", "missing")

	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}

func TestRepository_GetByUsernameAndURL_StoreError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectEventTypeQuery)).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByUsernameAndURL(context.Background(), "alice", "intro-call")

	assert.ErrorIs(t, err, ErrScanRow)
}
