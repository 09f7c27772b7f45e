package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP запрос на создание записи
type CreateBookingRequest struct {
	Slug         string  `json:"slug"`
	ServiceID    int64   `json:"serviceId"`
	CustomerName string  `json:"customerName"`
	Email        *string `json:"email,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Date         string  `json:"date"` // "2026-03-02"
	Time         string  `json:"time"` // "2:00 PM" или "14:00"
}

// CreateBookingResponse HTTP ответ с созданной записью
type CreateBookingResponse struct {
	ID           int64   `json:"id"`
	BookingCode  string  `json:"bookingCode"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Status       string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateBookingRequest) ToUseCaseRequest() (createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return createBooking.Request{}, err
	}

	return createBooking.Request{
		Slug:          r.Slug,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.Email,
		CustomerPhone: r.Phone,
		Date:          date,
		Time:          r.Time,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	a := resp.Appointment
	return &CreateBookingResponse{
		ID:           a.ID,
		BookingCode:  a.BookingCode,
		ServiceName:  a.ServiceName,
		ServicePrice: a.ServicePrice,
		CustomerName: a.CustomerName,
		Date:         a.Date.Format(domain.DateFormat),
		Time:         resp.Time12,
		Status:       string(a.Status),
	}
}
