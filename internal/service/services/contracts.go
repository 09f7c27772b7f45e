package services

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	GetByIDAndBusiness(ctx context.Context, id, businessID int64) (*domain.Service, error)
	ListByBusiness(ctx context.Context, businessID int64) ([]*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id, businessID int64) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountActiveByService считает неотменённые записи на услугу
	CountActiveByService(ctx context.Context, serviceID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
