package workinghours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var selectColumns = []string{
	"id",
	"business_id",
	"day_of_week",
	"is_open",
	"open_time",
	"close_time",
}

// Repository репозиторий для работы с рабочими часами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusinessAndDay получает конфигурацию дня недели для бизнеса
func (r *Repository) GetByBusinessAndDay(ctx context.Context, businessID int64, dayOfWeek int) (*domain.WorkingHour, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("working_hours").
		Where(squirrel.Eq{"business_id": businessID, "day_of_week": dayOfWeek}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDay - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHour
	var open, close sql.NullString
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.BusinessID,
		&wh.DayOfWeek,
		&wh.IsOpen,
		&open,
		&close,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWorkingHourNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDay - scan working hour: %v", ErrScanRow, err)
	}

	if err := applyTimes(&wh, open, close); err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndDay - parse time: %v", ErrScanRow, err)
	}

	return &wh, nil
}

// ListByBusiness получает недельное расписание бизнеса, дни по порядку
func (r *Repository) ListByBusiness(ctx context.Context, businessID int64) (domain.WeekSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("working_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeekSchedule, 0, 7)
	for rows.Next() {
		var wh domain.WorkingHour
		var open, close sql.NullString

		err := rows.Scan(
			&wh.ID,
			&wh.BusinessID,
			&wh.DayOfWeek,
			&wh.IsOpen,
			&open,
			&close,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}

		if err := applyTimes(&wh, open, close); err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - parse time: %v", ErrScanRow, err)
		}

		schedule = append(schedule, wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// applyTimes переносит nullable времена открытия/закрытия в модель
func applyTimes(wh *domain.WorkingHour, open, close sql.NullString) error {
	if open.Valid {
		t, err := types.NewTimeStringFromString(open.String)
		if err != nil {
			return err
		}
		wh.OpenTime = &t
	}
	if close.Valid {
		t, err := types.NewTimeStringFromString(close.String)
		if err != nil {
			return err
		}
		wh.CloseTime = &t
	}
	return nil
}

// Replace заменяет недельное расписание бизнеса целиком
// Вызывается внутри транзакции (executor из контекста), чтобы удаление
// и вставка были атомарными
func (r *Repository) Replace(ctx context.Context, businessID int64, schedule domain.WeekSchedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Replace - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute delete: %v", ErrExecQuery, err)
	}

	// INSERT без VALUES не собирается, пустое расписание заканчивается на удалении
	if len(schedule) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns("business_id", "day_of_week", "is_open", "open_time", "close_time")

	for _, wh := range schedule {
		insertBuilder = insertBuilder.Values(
			businessID,
			wh.DayOfWeek,
			wh.IsOpen,
			wh.OpenTime,
			wh.CloseTime,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
