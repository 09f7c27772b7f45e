package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id, businessID int64) (*domain.Appointment, error)
	GetByBookingCode(ctx context.Context, code string) (*domain.Appointment, error)
	ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	ListForDate(ctx context.Context, businessID int64, date time.Time) ([]*domain.Appointment, error)
	ListUpcoming(ctx context.Context, businessID int64, after time.Time) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id, businessID int64, status domain.AppointmentStatus) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
