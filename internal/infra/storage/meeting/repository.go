package meeting

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий встреч (таблица meetings), только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusyIntervals получает занятые интервалы пользователя за период, отсортированные по началу.
//
// По умолчанию берутся только встречи, целиком лежащие в периоде:
//
//	start_time >= From AND end_time <= Till
//
// С filter.IncludePartial берутся все встречи, пересекающиеся с периодом:
//
//	start_time <= Till AND end_time > From
func (r *Repository) GetBusyIntervals(ctx context.Context, filter domain.BusyIntervalsFilter) ([]domain.BusyInterval, error) {
	selectBuilder := psqlbuilder.Select(
		"m.start_time",
		"m.end_time",
	).
		From("meetings m").
		Join("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"u.username": filter.Username})

	if filter.IncludePartial {
		selectBuilder = selectBuilder.
			Where(squirrel.LtOrEq{"m.start_time": filter.Till}).
			Where(squirrel.Gt{"m.end_time": filter.From})
	} else {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"m.start_time": filter.From}).
			Where(squirrel.LtOrEq{"m.end_time": filter.Till})
	}

	query, args, err := selectBuilder.OrderBy("m.start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusyIntervals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanIntervals(rows)
}

// scanIntervals сканирует результаты запроса в слайс интервалов
func (r *Repository) scanIntervals(rows *sql.Rows) ([]domain.BusyInterval, error) {
	intervals := make([]domain.BusyInterval, 0)

	for rows.Next() {
		var interval domain.BusyInterval
		if err := rows.Scan(&interval.Start, &interval.End); err != nil {
			return nil, fmt.Errorf("%w: scanIntervals - scan row: %v", ErrScanRow, err)
		}
		intervals = append(intervals, interval)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanIntervals - rows error: %v", ErrScanRow, err)
	}

	return intervals, nil
}
