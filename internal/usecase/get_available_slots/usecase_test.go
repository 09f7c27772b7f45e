package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	servicestore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	whstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeBusinessRepo struct {
	business *domain.Business
	err      error
}

func (f *fakeBusinessRepo) GetBySlug(_ context.Context, _ string) (*domain.Business, error) {
	return f.business, f.err
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByIDAndBusiness(_ context.Context, _, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeWorkingHoursRepo struct {
	hours *domain.WorkingHour
	err   error
}

func (f *fakeWorkingHoursRepo) GetByBusinessAndDay(_ context.Context, _ int64, _ int) (*domain.WorkingHour, error) {
	return f.hours, f.err
}

type fakeAppointmentRepo struct {
	booked []types.TimeString
	err    error
}

func (f *fakeAppointmentRepo) GetBookedTimes(_ context.Context, _, _ int64, _ time.Time) ([]types.TimeString, error) {
	return f.booked, f.err
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	business *fakeBusinessRepo,
	service *fakeServiceRepo,
	hours *fakeWorkingHoursRepo,
	appointments *fakeAppointmentRepo,
	now time.Time,
) *UseCase {
	return NewUseCase(business, service, hours, appointments, &fixedClock{now: now}, noopLogger{})
}

func openDay(open, close types.TimeString) *domain.WorkingHour {
	return &domain.WorkingHour{
		ID:         1,
		BusinessID: 1,
		DayOfWeek:  1,
		IsOpen:     true,
		OpenTime:   ptr.Ptr(open),
		CloseTime:  ptr.Ptr(close),
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	business := &fakeBusinessRepo{business: &domain.Business{ID: 1, Slug: "glow-salon", BusinessName: "Glow Salon"}}
	service := &fakeServiceRepo{service: &domain.Service{ID: 5, BusinessID: 1, Name: "Haircut", Price: 50, Duration: 60}}
	futureDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	t.Run("booked slot is excluded with reason booked", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{hours: openDay("09:00", "17:00")}
		appointments := &fakeAppointmentRepo{booked: []types.TimeString{"10:00"}}
		uc := newTestUseCase(business, service, hours, appointments, now)

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: futureDate, DurationMinutes: 60})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"9:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM",
		}, resp.Available)
		assert.Equal(t, []domain.UnavailableSlot{
			{Time: "10:00 AM", Reason: domain.ReasonBooked},
		}, resp.Unavailable)
	})

	t.Run("past slots on today are marked past", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{hours: openDay("09:00", "12:00")}
		appointments := &fakeAppointmentRepo{}
		// Сейчас 10:00 того же дня: 9:00 и 10:00 уже прошли
		today := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(business, service, hours, appointments, time.Date(2026, 2, 20, 10, 0, 0, 0, time.UTC))

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: today, DurationMinutes: 60})
		require.NoError(t, err)

		assert.Equal(t, []string{"11:00 AM"}, resp.Available)
		assert.Equal(t, []domain.UnavailableSlot{
			{Time: "9:00 AM", Reason: domain.ReasonPast},
			{Time: "10:00 AM", Reason: domain.ReasonPast},
		}, resp.Unavailable)
	})

	t.Run("booked wins over past", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{hours: openDay("09:00", "11:00")}
		appointments := &fakeAppointmentRepo{booked: []types.TimeString{"09:00"}}
		today := time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC)
		uc := newTestUseCase(business, service, hours, appointments, time.Date(2026, 2, 20, 10, 30, 0, 0, time.UTC))

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: today, DurationMinutes: 60})
		require.NoError(t, err)

		assert.Equal(t, []domain.UnavailableSlot{
			{Time: "9:00 AM", Reason: domain.ReasonBooked},
			{Time: "10:00 AM", Reason: domain.ReasonPast},
		}, resp.Unavailable)
		assert.Empty(t, resp.Available)
	})

	t.Run("closed day returns empty partition", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{hours: &domain.WorkingHour{ID: 1, BusinessID: 1, DayOfWeek: 0, IsOpen: false}}
		uc := newTestUseCase(business, service, hours, &fakeAppointmentRepo{}, now)

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: futureDate, DurationMinutes: 60})
		require.NoError(t, err)

		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Unavailable)
	})

	t.Run("missing schedule row returns empty partition", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{err: whstore.ErrWorkingHourNotFound}
		uc := newTestUseCase(business, service, hours, &fakeAppointmentRepo{}, now)

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: futureDate, DurationMinutes: 60})
		require.NoError(t, err)

		assert.Empty(t, resp.Available)
		assert.Empty(t, resp.Unavailable)
	})

	t.Run("duration falls back to service duration", func(t *testing.T) {
		hours := &fakeWorkingHoursRepo{hours: openDay("09:00", "11:00")}
		uc := newTestUseCase(business, service, hours, &fakeAppointmentRepo{}, now)

		resp, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: futureDate})
		require.NoError(t, err)

		assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, resp.Available)
	})

	t.Run("unknown business", func(t *testing.T) {
		missing := &fakeBusinessRepo{err: businessstore.ErrBusinessNotFound}
		uc := newTestUseCase(missing, service, &fakeWorkingHoursRepo{}, &fakeAppointmentRepo{}, now)

		_, err := uc.Execute(ctx, Request{Slug: "nope", ServiceID: 5, Date: futureDate, DurationMinutes: 60})
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("service of another business is not found", func(t *testing.T) {
		foreign := &fakeServiceRepo{err: servicestore.ErrServiceNotFound}
		uc := newTestUseCase(business, foreign, &fakeWorkingHoursRepo{}, &fakeAppointmentRepo{}, now)

		_, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 99, Date: futureDate, DurationMinutes: 60})
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("invalid duration", func(t *testing.T) {
		broken := &fakeServiceRepo{service: &domain.Service{ID: 5, BusinessID: 1, Name: "Broken", Duration: 0}}
		uc := newTestUseCase(business, broken, &fakeWorkingHoursRepo{hours: openDay("09:00", "17:00")}, &fakeAppointmentRepo{}, now)

		_, err := uc.Execute(ctx, Request{Slug: "glow-salon", ServiceID: 5, Date: futureDate})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(business, service, &fakeWorkingHoursRepo{}, &fakeAppointmentRepo{}, now)

		_, err := uc.Execute(ctx, Request{Slug: "", ServiceID: 5, Date: futureDate})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
