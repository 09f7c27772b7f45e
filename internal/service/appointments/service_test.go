package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type fakeRepo struct {
	appointment *domain.Appointment
	list        []*domain.Appointment
	getErr      error
	updateErr   error
	updated     *domain.AppointmentStatus
	listFilter  *domain.AppointmentsFilter
}

func (f *fakeRepo) GetByID(_ context.Context, _, _ int64) (*domain.Appointment, error) {
	return f.appointment, f.getErr
}

func (f *fakeRepo) GetByBookingCode(_ context.Context, _ string) (*domain.Appointment, error) {
	return f.appointment, f.getErr
}

func (f *fakeRepo) ListWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.listFilter = &filter
	return f.list, nil
}

func (f *fakeRepo) ListForDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.list, nil
}

func (f *fakeRepo) ListUpcoming(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _, _ int64, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = &status
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:           7,
		BusinessID:   1,
		ServiceID:    5,
		CustomerName: "Ivan Petrov",
		Date:         time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Time:         "14:00",
		Status:       domain.StatusPending,
		BookingCode:  "GLOWSALON-A1B2C3",
		ServiceName:  "Haircut",
		ServicePrice: 50,
	}
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("pending to confirmed", func(t *testing.T) {
		repo := &fakeRepo{appointment: pendingAppointment()}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		resp, err := svc.UpdateStatus(ctx, models.UpdateStatusRequest{ID: 7, BusinessID: 1, Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, "confirmed", resp.Status)
		require.NotNil(t, repo.updated)
		assert.Equal(t, domain.StatusConfirmed, *repo.updated)
	})

	t.Run("pending to done is rejected", func(t *testing.T) {
		repo := &fakeRepo{appointment: pendingAppointment()}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		_, err := svc.UpdateStatus(ctx, models.UpdateStatusRequest{ID: 7, BusinessID: 1, Status: "done"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Nil(t, repo.updated)
	})

	t.Run("terminal status cannot change", func(t *testing.T) {
		done := pendingAppointment()
		done.Status = domain.StatusDone
		repo := &fakeRepo{appointment: done}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		_, err := svc.UpdateStatus(ctx, models.UpdateStatusRequest{ID: 7, BusinessID: 1, Status: "cancelled"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status value", func(t *testing.T) {
		repo := &fakeRepo{appointment: pendingAppointment()}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		_, err := svc.UpdateStatus(ctx, models.UpdateStatusRequest{ID: 7, BusinessID: 1, Status: "completed"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing appointment", func(t *testing.T) {
		repo := &fakeRepo{getErr: apptRepo.ErrAppointmentNotFound}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		_, err := svc.UpdateStatus(ctx, models.UpdateStatusRequest{ID: 99, BusinessID: 1, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_TrackByCode(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("hides contact details", func(t *testing.T) {
		appointment := pendingAppointment()
		email := "ivan@example.com"
		appointment.Email = &email
		appointment.BusinessName = "Glow Salon"
		repo := &fakeRepo{appointment: appointment}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		resp, err := svc.TrackByCode(ctx, "GLOWSALON-A1B2C3")
		require.NoError(t, err)

		assert.Equal(t, "GLOWSALON-A1B2C3", resp.BookingCode)
		assert.Equal(t, "Glow Salon", resp.BusinessName)
		assert.Equal(t, "2:00 PM", resp.Time)
		assert.Equal(t, "2026-03-02", resp.Date)
		assert.Equal(t, "pending", resp.Status)
	})

	t.Run("empty code", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, fixedClock{now}, noopLogger{})
		_, err := svc.TrackByCode(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown code", func(t *testing.T) {
		repo := &fakeRepo{getErr: apptRepo.ErrAppointmentNotFound}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		_, err := svc.TrackByCode(ctx, "NOPE-000000")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("maps domain models", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Appointment{pendingAppointment()}}
		svc := NewService(repo, fixedClock{now}, noopLogger{})

		list, err := svc.List(ctx, models.ListAppointmentsRequest{BusinessID: 1})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "2:00 PM", list[0].Time)
	})

	t.Run("status all drops the filter", func(t *testing.T) {
		repo := &fakeRepo{list: []*domain.Appointment{pendingAppointment()}}
		svc := NewService(repo, fixedClock{now}, noopLogger{})
		all := models.StatusFilterAll

		list, err := svc.List(ctx, models.ListAppointmentsRequest{BusinessID: 1, Status: &all})
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, repo.listFilter)
		assert.Nil(t, repo.listFilter.Status)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, fixedClock{now}, noopLogger{})
		bad := "archived"

		_, err := svc.List(ctx, models.ListAppointmentsRequest{BusinessID: 1, Status: &bad})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}
