package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Имена ограничений из миграций - по ним распознаём конфликтные вставки
const (
	activeSlotConstraint  = "appointments_active_slot_key"
	bookingCodeConstraint = "appointments_booking_code_key"
)

// Код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// selectColumns колонки записи вместе с денормализованными данными услуги
var selectColumns = []string{
	"a.id",
	"a.business_id",
	"a.service_id",
	"a.customer_name",
	"a.email",
	"a.phone",
	"a.date",
	"a.time",
	"a.status",
	"a.booking_code",
	"s.name AS service_name",
	"s.price AS service_price",
	"s.duration AS service_duration",
	"a.created_at",
	"a.updated_at",
}

// statusPriorityOrder порядок сортировки дашборда:
// pending -> confirmed -> done -> cancelled
const statusPriorityOrder = "CASE a.status " +
	"WHEN 'pending' THEN 1 " +
	"WHEN 'confirmed' THEN 2 " +
	"WHEN 'done' THEN 3 " +
	"ELSE 4 END"

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её.
// Частичный уникальный индекс (business_id, date, time) WHERE status <> 'cancelled'
// страхует от гонки двух конкурентных бронирований на один слот:
// проигравшая вставка получает ErrSlotTaken, а не дубликат.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"business_id",
			"service_id",
			"customer_name",
			"email",
			"phone",
			"date",
			"time",
			"status",
			"booking_code",
		).
		Values(
			appt.BusinessID,
			appt.ServiceID,
			appt.CustomerName,
			appt.Email,
			appt.Phone,
			appt.Date,
			appt.Time,
			appt.Status,
			appt.BookingCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if uniqueErr := mapUniqueViolation(err); uniqueErr != nil {
			return nil, uniqueErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID в рамках бизнеса
func (r *Repository) GetByID(ctx context.Context, id, businessID int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.id": id, "a.business_id": businessID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByBookingCode получает запись по уникальному booking-коду
// вместе с именем бизнеса для публичной страницы отслеживания.
// Поиск только по точному совпадению
func (r *Repository) GetByBookingCode(ctx context.Context, code string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Column("b.business_name").
		Join("businesses b ON b.id = a.business_id").
		Where(squirrel.Eq{"a.booking_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingCode - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.BusinessID,
		&appt.ServiceID,
		&appt.CustomerName,
		&appt.Email,
		&appt.Phone,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.BookingCode,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.ServiceDuration,
		&createdAt,
		&updatedAt,
		&appt.BusinessName,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingCode - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// ListWithFilter получает записи бизнеса с фильтрацией по статусу, дате и услуге
// Сортировка: приоритет статуса, затем дата и время по возрастанию
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().
		Where(squirrel.Eq{"a.business_id": filter.BusinessID}).
		OrderBy(statusPriorityOrder, "a.date ASC", "a.time ASC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.date": *filter.Date})
	}
	if filter.ServiceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"a.service_id": *filter.ServiceID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListForDate получает все записи бизнеса на дату, по возрастанию времени
func (r *Repository) ListForDate(ctx context.Context, businessID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.business_id": businessID, "a.date": date}).
		OrderBy("a.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListUpcoming получает будущие pending/confirmed записи строго после даты
func (r *Repository) ListUpcoming(ctx context.Context, businessID int64, after time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"a.business_id": businessID}).
		Where(squirrel.Gt{"a.date": after}).
		Where(squirrel.Eq{"a.status": blocking}).
		OrderBy("a.date ASC", "a.time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetBookedTimes получает времена активных (pending, confirmed) записей
// на дату для услуги - только они блокируют слоты
func (r *Repository) GetBookedTimes(ctx context.Context, businessID, serviceID int64, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	query, args, err := psqlbuilder.Select("time").
		From("appointments").
		Where(squirrel.Eq{
			"business_id": businessID,
			"service_id":  serviceID,
			"date":        date,
			"status":      blocking,
		}).
		OrderBy("time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	times := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: GetBookedTimes - scan time: %v", ErrScanRow, err)
		}
		times = append(times, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return times, nil
}

// HasActiveAt проверяет, занят ли слот (business, date, time) не-отменённой записью
// Внутри транзакции добавляет FOR UPDATE - используется критической секцией
// создания бронирования
func (r *Repository) HasActiveAt(ctx context.Context, businessID int64, date time.Time, t types.TimeString) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("appointments").
		Where(squirrel.Eq{
			"business_id": businessID,
			"date":        date,
			"time":        t,
		}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasActiveAt - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// ExistsByCode проверяет, существует ли запись с таким booking-кодом
func (r *Repository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("appointments").
		Where(squirrel.Eq{"booking_code": code}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByCode - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус записи в рамках бизнеса
func (r *Repository) UpdateStatus(ctx context.Context, id, businessID int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "business_id": businessID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CountForDate считает записи бизнеса на дату (любой статус)
func (r *Repository) CountForDate(ctx context.Context, businessID int64, date time.Time) (int64, error) {
	return r.count(ctx, squirrel.Eq{"business_id": businessID, "date": date}, "CountForDate")
}

// CountByStatus считает записи бизнеса в статусе (за всё время)
func (r *Repository) CountByStatus(ctx context.Context, businessID int64, status domain.AppointmentStatus) (int64, error) {
	return r.count(ctx, squirrel.Eq{"business_id": businessID, "status": status}, "CountByStatus")
}

// CountActiveByService считает не-отменённые записи на услугу
// Используется referential guard при удалении услуги
func (r *Repository) CountActiveByService(ctx context.Context, serviceID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"service_id": serviceID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByService - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByService - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// MonthlyRevenue считает выручку бизнеса за месяц: сумма цен услуг
// по записям со статусом done. pending/confirmed/cancelled не учитываются
func (r *Repository) MonthlyRevenue(ctx context.Context, businessID int64, year int, month time.Month) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(s.price), 0)").
		From("appointments a").
		Join("services s ON s.id = a.service_id").
		Where(squirrel.Eq{
			"a.business_id": businessID,
			"a.status":      string(domain.StatusDone),
		}).
		Where(squirrel.Expr("EXTRACT(YEAR FROM a.date) = ?", year)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM a.date) = ?", int(month))).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: MonthlyRevenue - execute query: %v", ErrExecQuery, err)
	}

	return revenue, nil
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id")
}

func (r *Repository) count(ctx context.Context, where squirrel.Eq, op string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(where).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var cnt int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cnt); err != nil {
		return 0, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	return cnt, nil
}

func (r *Repository) scanOne(row *sql.Row, op string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.BusinessID,
		&appt.ServiceID,
		&appt.CustomerName,
		&appt.Email,
		&appt.Phone,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.BookingCode,
		&appt.ServiceName,
		&appt.ServicePrice,
		&appt.ServiceDuration,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.BusinessID,
			&appt.ServiceID,
			&appt.CustomerName,
			&appt.Email,
			&appt.Phone,
			&appt.Date,
			&appt.Time,
			&appt.Status,
			&appt.BookingCode,
			&appt.ServiceName,
			&appt.ServicePrice,
			&appt.ServiceDuration,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// mapUniqueViolation транслирует unique_violation в доменные ошибки репозитория
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != pgUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case activeSlotConstraint:
		return ErrSlotTaken
	case bookingCodeConstraint:
		return ErrDuplicateCode
	default:
		return nil
	}
}
