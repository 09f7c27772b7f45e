package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string            `json:"date"`
	BusinessSlug     string            `json:"businessSlug"`
	ServiceID        int64             `json:"serviceId"`
	AvailableSlots   []string          `json:"availableSlots"`
	UnavailableSlots []UnavailableSlot `json:"unavailableSlots"`
}

// UnavailableSlot недоступный слот с причиной
type UnavailableSlot struct {
	Time   string `json:"time"`
	Reason string `json:"reason"` // "booked" или "past"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	unavailable := make([]UnavailableSlot, len(resp.Unavailable))
	for i, slot := range resp.Unavailable {
		unavailable[i] = UnavailableSlot{Time: slot.Time, Reason: slot.Reason}
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.Format(domain.DateFormat),
		BusinessSlug:     resp.Slug,
		ServiceID:        resp.ServiceID,
		AvailableSlots:   resp.Available,
		UnavailableSlots: unavailable,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(slug, dateStr string, serviceID int64, duration int) (getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return getAvailableSlots.Request{}, err
	}

	return getAvailableSlots.Request{
		Slug:            slug,
		ServiceID:       serviceID,
		Date:            date,
		DurationMinutes: duration,
	}, nil
}
