package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	BusinessID      int64   `json:"-"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	ID              int64    `json:"-"`
	BusinessID      int64    `json:"-"`
	Name            *string  `json:"name,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	CreatedAt       string  `json:"createdAt"`
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Price:           s.Price,
		DurationMinutes: s.Duration,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainServices конвертирует список domain моделей
func FromDomainServices(list []*domain.Service) []*ServiceResponse {
	out := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromDomainService(s))
	}
	return out
}
