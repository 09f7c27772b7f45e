package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusDone      AppointmentStatus = "done"
)

// Appointment represents a customer booking in the system
type Appointment struct {
	ID           int64
	BusinessID   int64
	ServiceID    int64
	CustomerName string
	Email        *string
	Phone        *string
	Date         time.Time // Календарная дата записи (без времени)
	Time         types.TimeString
	Status       AppointmentStatus
	BookingCode  string

	// Denormalized service data for listings and tracking
	ServiceName     string
	ServicePrice    float64
	ServiceDuration int

	// BusinessName заполняется только при поиске по booking-коду
	BusinessName string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if no further status transitions are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusDone
}

// CanTransitionTo reports whether the status state machine allows the transition
//
//	pending   -> confirmed | cancelled
//	confirmed -> done | cancelled
//	cancelled -> (terminal)
//	done      -> (terminal)
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusDone || target == StatusCancelled
	default:
		return false
	}
}

// IsValid reports whether the value is one of the four known statuses
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	default:
		return false
	}
}

// Priority returns the dashboard sort priority of the status
// (pending first, cancelled last)
func (s AppointmentStatus) Priority() int {
	switch s {
	case StatusPending:
		return 1
	case StatusConfirmed:
		return 2
	case StatusDone:
		return 3
	case StatusCancelled:
		return 4
	default:
		return 5
	}
}

// AppointmentsFilter фильтр для получения записей бизнеса
type AppointmentsFilter struct {
	BusinessID int64              // Обязательный параметр
	Status     *AppointmentStatus // Фильтр по статусу (опционально)
	Date       *time.Time         // Точная дата (опционально)
	ServiceID  *int64             // Фильтр по услуге (опционально)
}
