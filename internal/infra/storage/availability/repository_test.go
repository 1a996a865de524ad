package availability

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

const selectWindowQuery = `SELECT a.id, a.day, a.from_time, a.till_time FROM availability a ` +
	`JOIN users u ON u.id = a.user_id WHERE u.username = $1 AND a.day = $2 ORDER BY a.id ASC LIMIT 1`

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetByUsernameAndDay(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWindowQuery)).
		WithArgs("alice", "Monday").
		WillReturnRows(sqlmock.NewRows([]string{"id", "day", "from_time", "till_time"}).
			AddRow(int64(3), "Monday", "09:00", "17:30"))

	window, err := repo.GetByUsernameAndDay(context.Background(), "alice", domain.Monday)

	require.NoError(t, err)
	assert.Equal(t, &domain.WorkingHoursWindow{ID: 3, Day: domain.Monday, FromTime: "09:00", TillTime: "17:30"}, window)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsernameAndDay_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWindowQuery)).
		WithArgs("alice", "Sunday").
		WillReturnRows(sqlmock.NewRows([]string{"id", "day", "from_time", "till_time"}))

	window, err := repo.GetByUsernameAndDay(context.Background(), "alice", domain.Sunday)

	assert.Nil(t, window)
	assert.ErrorIs(t, err, ErrWindowNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUsernameAndDay_NullTimesAreEmpty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWindowQuery)).
		WithArgs("alice", "Friday").
		WillReturnRows(sqlmock.NewRows([]string{"id", "day", "from_time", "till_time"}).
			AddRow(int64(5), "Friday", nil, "18:00"))

	window, err := repo.GetByUsernameAndDay(context.Background(), "alice", domain.Friday)

	require.NoError(t, err)
	assert.Equal(t, "", window.FromTime)
	assert.Equal(t, "18:00", window.TillTime)
}

func TestRepository_GetByUsernameAndDay_StoreError(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectWindowQuery)).
		WithArgs("alice", "Monday").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByUsernameAndDay(context.Background(), "alice", domain.Monday)

	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrWindowNotFound)
}
