package models

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidDay возвращается при дне недели вне диапазона 0-6
	ErrInvalidDay = errors.New("day of week must be between 0 and 6")

	// ErrMissingTimes возвращается, когда открытый день не имеет времени
	// открытия или закрытия
	ErrMissingTimes = errors.New("open and close times are required for an open day")

	// ErrInvalidTimeRange возвращается, когда закрытие не позже открытия
	ErrInvalidTimeRange = errors.New("close time must be after open time")
)

// Request модели

// DayScheduleRequest расписание одного дня недели
type DayScheduleRequest struct {
	DayOfWeek int     `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // "09:00", только для открытых дней
	CloseTime *string `json:"closeTime,omitempty"` // "17:00", только для открытых дней
}

// ReplaceScheduleRequest запрос на полную замену недельного расписания
type ReplaceScheduleRequest struct {
	BusinessID int64                `json:"-"`
	Days       []DayScheduleRequest `json:"workingHours"`
}

// ToDomainSchedule валидирует запрос и конвертирует его в domain расписание.
// Времена требуются только для открытых дней; у закрытых они обнуляются
func (r *ReplaceScheduleRequest) ToDomainSchedule() (domain.WeekSchedule, error) {
	schedule := make(domain.WeekSchedule, 0, len(r.Days))
	seen := make(map[int]struct{}, len(r.Days))

	for _, day := range r.Days {
		if day.DayOfWeek < domain.MinWeekday || day.DayOfWeek > domain.MaxWeekday {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidDay, day.DayOfWeek)
		}
		if _, ok := seen[day.DayOfWeek]; ok {
			return nil, fmt.Errorf("%w: duplicate day %d", ErrInvalidDay, day.DayOfWeek)
		}
		seen[day.DayOfWeek] = struct{}{}

		wh := domain.WorkingHour{
			BusinessID: r.BusinessID,
			DayOfWeek:  day.DayOfWeek,
			IsOpen:     day.IsOpen,
		}

		if day.IsOpen {
			if day.OpenTime == nil || day.CloseTime == nil {
				return nil, fmt.Errorf("%w: day %d", ErrMissingTimes, day.DayOfWeek)
			}

			open, err := types.NewTimeStringFromString(*day.OpenTime)
			if err != nil {
				return nil, fmt.Errorf("invalid open time for day %d: %w", day.DayOfWeek, err)
			}
			close, err := types.NewTimeStringFromString(*day.CloseTime)
			if err != nil {
				return nil, fmt.Errorf("invalid close time for day %d: %w", day.DayOfWeek, err)
			}
			if !close.IsAfter(open) {
				return nil, fmt.Errorf("%w: day %d", ErrInvalidTimeRange, day.DayOfWeek)
			}

			wh.OpenTime = &open
			wh.CloseTime = &close
		}

		schedule = append(schedule, wh)
	}

	return schedule, nil
}

// Response модели

// DayScheduleResponse расписание одного дня в ответе
type DayScheduleResponse struct {
	DayOfWeek int     `json:"dayOfWeek"`
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// ScheduleResponse недельное расписание бизнеса
type ScheduleResponse struct {
	WorkingHours []DayScheduleResponse `json:"workingHours"`
}

// FromDomainSchedule конвертирует domain расписание в response
func FromDomainSchedule(schedule domain.WeekSchedule) *ScheduleResponse {
	days := make([]DayScheduleResponse, 0, len(schedule))
	for _, wh := range schedule {
		day := DayScheduleResponse{
			DayOfWeek: wh.DayOfWeek,
			IsOpen:    wh.IsOpen,
		}
		if wh.OpenTime != nil {
			s := wh.OpenTime.String()
			day.OpenTime = &s
		}
		if wh.CloseTime != nil {
			s := wh.CloseTime.String()
			day.CloseTime = &s
		}
		days = append(days, day)
	}
	return &ScheduleResponse{WorkingHours: days}
}
