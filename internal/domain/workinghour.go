package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// WorkingHour represents the open/close configuration of a business
// for one weekday. Exactly one record exists per (business, weekday).
// When IsOpen is false the open/close times are null and ignored.
type WorkingHour struct {
	ID         int64
	BusinessID int64
	DayOfWeek  int // 0 = воскресенье ... 6 = суббота
	IsOpen     bool
	OpenTime   *types.TimeString
	CloseTime  *types.TimeString
}

// WeekSchedule полное расписание бизнеса на неделю
type WeekSchedule []WorkingHour

// ForDay возвращает конфигурацию для дня недели, если она есть
func (w WeekSchedule) ForDay(dayOfWeek int) (WorkingHour, bool) {
	for _, wh := range w {
		if wh.DayOfWeek == dayOfWeek {
			return wh, true
		}
	}
	return WorkingHour{}, false
}
