package dbmetrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *metrics.Metrics) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	stopCh := make(chan struct{})
	t.Cleanup(func() { close(stopCh) })

	return Wrap(db, m, time.Hour, stopCh), mock, m
}

func TestDB_QueryContext_RecordsMetrics(t *testing.T) {
	db, mock, m := newTestDB(t)

	mock.ExpectQuery("SELECT start_time FROM meetings").
		WillReturnRows(sqlmock.NewRows([]string{"start_time"}))
	mock.ExpectQuery("SELECT start_time FROM meetings").
		WillReturnError(errors.New("connection refused"))

	rows, err := db.QueryContext(context.Background(), "SELECT start_time FROM meetings")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	_, err = db.QueryContext(context.Background(), "SELECT start_time FROM meetings")
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "error")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_QueryRowContext_NoRowsIsNotAnError(t *testing.T) {
	db, mock, m := newTestDB(t)

	mock.ExpectQuery("SELECT id FROM availability").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	var id int64
	err := db.QueryRowContext(context.Background(), "SELECT id FROM availability").Scan(&id)
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "ok")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT 1"))
	assert.Equal(t, "update", operation("update meetings set x = 1"))
	assert.Equal(t, "unknown", operation(""))
}
