package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Slug          string
	ServiceID     int64
	CustomerName  string
	CustomerEmail *string
	CustomerPhone *string
	Date          time.Time
	Time          string // Принимаем 12- и 24-часовой формат
}

// Response модель созданной записи
type Response struct {
	Appointment *domain.Appointment
	// Time12 отображаемое время слота для клиента
	Time12 string
}

// normalizedRequest запрос после валидации с канонизированным временем
type normalizedRequest struct {
	Request
	slotTime types.TimeString
}
