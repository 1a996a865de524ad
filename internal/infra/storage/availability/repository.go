package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий рабочих часов пользователей (таблица availability)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUsernameAndDay получает рабочие часы пользователя на день недели.
// Если записей несколько, берется первая по id.
// Значения from_time/till_time возвращаются как есть, без разбора: это делает калькулятор слотов.
func (r *Repository) GetByUsernameAndDay(ctx context.Context, username string, day domain.Weekday) (*domain.WorkingHoursWindow, error) {
	query, args, err := psqlbuilder.Select(
		"a.id",
		"a.day",
		"a.from_time",
		"a.till_time",
	).
		From("availability a").
		Join("users u ON u.id = a.user_id").
		Where(squirrel.Eq{"u.username": username}).
		Where(squirrel.Eq{"a.day": string(day)}).
		OrderBy("a.id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsernameAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var (
		window   domain.WorkingHoursWindow
		dayName  string
		fromTime sql.NullString
		tillTime sql.NullString
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&dayName,
		&fromTime,
		&tillTime,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsernameAndDay - scan window: %v", ErrScanRow, err)
	}

	window.Day = domain.Weekday(dayName)
	window.FromTime = fromTime.String
	window.TillTime = tillTime.String

	return &window, nil
}
