package workinghours

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_GetByBusinessAndDay(t *testing.T) {
	ctx := context.Background()

	t.Run("returns day config", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id, business_id, day_of_week, is_open, open_time, close_time FROM working_hours").
			WillReturnRows(sqlmock.NewRows(selectColumns).
				AddRow(int64(3), int64(1), 1, true, "09:00:00", "17:00:00"))

		wh, err := repo.GetByBusinessAndDay(ctx, 1, 1)
		require.NoError(t, err)

		assert.True(t, wh.IsOpen)
		assert.Equal(t, types.TimeString("09:00"), *wh.OpenTime)
		assert.Equal(t, types.TimeString("17:00"), *wh.CloseTime)
	})

	t.Run("missing day", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT id, business_id, day_of_week, is_open, open_time, close_time FROM working_hours").
			WillReturnRows(sqlmock.NewRows(selectColumns))

		_, err := repo.GetByBusinessAndDay(ctx, 1, 0)
		assert.ErrorIs(t, err, ErrWorkingHourNotFound)
	})
}

func TestRepository_Replace(t *testing.T) {
	repo, mock := newMockRepo(t)

	schedule := domain.WeekSchedule{
		{BusinessID: 1, DayOfWeek: 0, IsOpen: false},
		{
			BusinessID: 1,
			DayOfWeek:  1,
			IsOpen:     true,
			OpenTime:   ptr.Ptr(types.TimeString("09:00")),
			CloseTime:  ptr.Ptr(types.TimeString("17:00")),
		},
	}

	mock.ExpectExec("DELETE FROM working_hours").
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec("INSERT INTO working_hours").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.Replace(context.Background(), 1, schedule))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Replace_EmptySchedule(t *testing.T) {
	repo, mock := newMockRepo(t)

	// Очистка расписания: только DELETE, INSERT не выполняется
	mock.ExpectExec("DELETE FROM working_hours").
		WillReturnResult(sqlmock.NewResult(0, 7))

	require.NoError(t, repo.Replace(context.Background(), 1, domain.WeekSchedule{}))
	require.NoError(t, mock.ExpectationsWereMet())
}
