package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// StatusFilterAll специальное значение фильтра: все статусы без ограничения
const StatusFilterAll = "all"

// Request модели

// ListAppointmentsRequest запрос списка записей бизнеса
type ListAppointmentsRequest struct {
	BusinessID int64      `json:"businessId"`
	Status     *string    `json:"status,omitempty"`    // Фильтр по статусу (опционально)
	Date       *time.Time `json:"date,omitempty"`      // Фильтр по дате (опционально)
	ServiceID  *int64     `json:"serviceId,omitempty"` // Фильтр по услуге (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BusinessID: r.BusinessID,
		Date:       r.Date,
		ServiceID:  r.ServiceID,
	}

	// "all" эквивалентен отсутствию фильтра по статусу
	if r.Status != nil && *r.Status != StatusFilterAll {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	Status     string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	ServicePrice    float64 `json:"servicePrice"`
	DurationMinutes int     `json:"durationMinutes"`
	CustomerName    string  `json:"customerName"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Date            string  `json:"date"` // "2026-03-02"
	Time            string  `json:"time"` // "2:00 PM"
	Status          string  `json:"status"`
	BookingCode     string  `json:"bookingCode"`
	CreatedAt       string  `json:"createdAt"`
}

// TrackingResponse публичный ответ для отслеживания по коду.
// Контактные данные клиента не раскрываются
type TrackingResponse struct {
	BookingCode  string  `json:"bookingCode"`
	BusinessName string  `json:"businessName"`
	CustomerName string  `json:"customerName"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       string  `json:"status"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		DurationMinutes: a.ServiceDuration,
		CustomerName:    a.CustomerName,
		Email:           a.Email,
		Phone:           a.Phone,
		Date:            a.Date.Format(domain.DateFormat),
		Time:            a.Time.Format12(),
		Status:          string(a.Status),
		BookingCode:     a.BookingCode,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointments конвертирует список domain моделей
func FromDomainAppointments(list []*domain.Appointment) []*AppointmentResponse {
	out := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, FromDomainAppointment(a))
	}
	return out
}

// TrackingFromDomain конвертирует domain модель в публичный tracking response
func TrackingFromDomain(a *domain.Appointment) *TrackingResponse {
	return &TrackingResponse{
		BookingCode:  a.BookingCode,
		BusinessName: a.BusinessName,
		CustomerName: a.CustomerName,
		ServiceName:  a.ServiceName,
		ServicePrice: a.ServicePrice,
		Date:         a.Date.Format(domain.DateFormat),
		Time:         a.Time.Format12(),
		Status:       string(a.Status),
	}
}

// ToDomainStatus конвертирует строковый статус в domain
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
