package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	CountForDate(ctx context.Context, businessID int64, date time.Time) (int64, error)
	CountByStatus(ctx context.Context, businessID int64, status domain.AppointmentStatus) (int64, error)
	MonthlyRevenue(ctx context.Context, businessID int64, year int, month time.Month) (float64, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	CountByBusiness(ctx context.Context, businessID int64) (int64, error)
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
