package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		BusinessID:   1,
		ServiceID:    5,
		CustomerName: "Ivan Petrov",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:         "14:00",
		Status:       domain.StatusPending,
		BookingCode:  "GLOWSALON-A1B2C3",
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("returns generated fields", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(42), now, now))

		created, err := repo.Create(ctx, testAppointment())
		require.NoError(t, err)

		assert.Equal(t, int64(42), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("active slot conflict maps to ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: activeSlotConstraint})

		_, err := repo.Create(ctx, testAppointment())
		assert.ErrorIs(t, err, ErrSlotTaken)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate code maps to ErrDuplicateCode", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnError(&pq.Error{Code: pgUniqueViolation, Constraint: bookingCodeConstraint})

		_, err := repo.Create(ctx, testAppointment())
		assert.ErrorIs(t, err, ErrDuplicateCode)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other pq errors pass through", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO appointments").
			WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.Create(ctx, testAppointment())
		assert.ErrorIs(t, err, ErrExecQuery)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByBookingCode(t *testing.T) {
	ctx := context.Background()

	trackingColumns := []string{
		"id", "business_id", "service_id", "customer_name", "email", "phone",
		"date", "time", "status", "booking_code",
		"service_name", "service_price", "service_duration",
		"created_at", "updated_at", "business_name",
	}

	t.Run("returns appointment with business name", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT .+ JOIN businesses b ON b.id = a.business_id .*WHERE a.booking_code").
			WithArgs("GLOWSALON-A1B2C3").
			WillReturnRows(sqlmock.NewRows(trackingColumns).AddRow(
				int64(42), int64(1), int64(5), "Ivan Petrov", nil, nil,
				time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), "14:00:00", "pending", "GLOWSALON-A1B2C3",
				"Haircut", 50.0, 60,
				now, now, "Glow Salon",
			))

		appt, err := repo.GetByBookingCode(ctx, "GLOWSALON-A1B2C3")
		require.NoError(t, err)

		assert.Equal(t, "Glow Salon", appt.BusinessName)
		assert.Equal(t, types.TimeString("14:00"), appt.Time)
		assert.Equal(t, "Haircut", appt.ServiceName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ WHERE a.booking_code").
			WithArgs("NOPE-000000").
			WillReturnRows(sqlmock.NewRows(trackingColumns))

		_, err := repo.GetByBookingCode(ctx, "NOPE-000000")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_HasActiveAt(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("slot taken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id FROM appointments").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		taken, err := repo.HasActiveAt(ctx, 1, date, types.TimeString("14:00"))
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("slot free", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id FROM appointments").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		taken, err := repo.HasActiveAt(ctx, 1, date, types.TimeString("14:00"))
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestRepository_GetBookedTimes(t *testing.T) {
	repo, mock := newMockRepo(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT time FROM appointments").
		WillReturnRows(sqlmock.NewRows([]string{"time"}).
			AddRow("10:00").
			AddRow("14:00"))

	times, err := repo.GetBookedTimes(context.Background(), 1, 5, date)
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"10:00", "14:00"}, times)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("updates row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE appointments SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateStatus(ctx, 42, 1, domain.StatusConfirmed))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE appointments SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, 1, domain.StatusConfirmed)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestRepository_MonthlyRevenue(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(s.price\), 0\) FROM appointments`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(350.5))

	revenue, err := repo.MonthlyRevenue(context.Background(), 1, 2026, time.February)
	require.NoError(t, err)
	assert.Equal(t, 350.5, revenue)
}

func TestRepository_ExistsByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("exists", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id FROM appointments").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		exists, err := repo.ExistsByCode(ctx, "GLOWSALON-A1B2C3")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id FROM appointments").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		exists, err := repo.ExistsByCode(ctx, "NOPE-000000")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
