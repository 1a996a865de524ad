package eventtype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
)

// Repository репозиторий типов встреч (таблица event_types), только чтение
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов встреч
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUsernameAndURL получает тип встречи пользователя по его url (slug страницы бронирования)
func (r *Repository) GetByUsernameAndURL(ctx context.Context, username, url string) (*domain.EventType, error) {
	query, args, err := psqlbuilder.Select(
		"e.id",
		"e.url",
		"e.title",
		"e.duration",
		"e.active",
	).
		From("event_types e").
		Join("users u ON u.id = e.user_id").
		Where(squirrel.Eq{"u.username": username}).
		Where(squirrel.Eq{"e.url": url}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsernameAndURL - build select query: %v", ErrBuildQuery, err)
	}

	var eventType domain.EventType
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&eventType.ID,
		&eventType.URL,
		&eventType.Title,
		&eventType.DurationMinutes,
		&eventType.Active,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsernameAndURL - scan event type: %v", ErrScanRow, err)
	}

	return &eventType, nil
}
