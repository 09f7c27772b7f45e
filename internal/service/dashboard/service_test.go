package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type fakeAppointmentRepo struct {
	today        int64
	pending      int64
	revenue      float64
	revenueYear  int
	revenueMonth time.Month
}

func (f *fakeAppointmentRepo) CountForDate(_ context.Context, _ int64, _ time.Time) (int64, error) {
	return f.today, nil
}

func (f *fakeAppointmentRepo) CountByStatus(_ context.Context, _ int64, status domain.AppointmentStatus) (int64, error) {
	if status == domain.StatusPending {
		return f.pending, nil
	}
	return 0, nil
}

func (f *fakeAppointmentRepo) MonthlyRevenue(_ context.Context, _ int64, year int, month time.Month) (float64, error) {
	f.revenueYear = year
	f.revenueMonth = month
	return f.revenue, nil
}

type fakeServiceRepo struct {
	count int64
}

func (f *fakeServiceRepo) CountByBusiness(_ context.Context, _ int64) (int64, error) {
	return f.count, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestService_GetStats(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)
	appts := &fakeAppointmentRepo{today: 4, pending: 2, revenue: 350.5}
	svc := NewService(appts, &fakeServiceRepo{count: 6}, fixedClock{now}, noopLogger{})

	stats, err := svc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(4), stats.TodayAppointments)
	assert.Equal(t, int64(2), stats.PendingCount)
	assert.Equal(t, int64(6), stats.ServicesCount)
	assert.Equal(t, 350.5, stats.MonthlyRevenue)

	// Выручка запрашивается за текущий календарный месяц
	assert.Equal(t, 2026, appts.revenueYear)
	assert.Equal(t, time.February, appts.revenueMonth)
}
