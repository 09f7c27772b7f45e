package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format")

	// ErrInvalidMinutes возвращается при некорректном количестве минут
	ErrInvalidMinutes = errors.New("types: invalid minutes value")
)

// TimeString время в формате "HH:MM" (wall-clock, без даты и таймзоны)
// Используется для хранения времени записи и рабочих часов.
// Каноническое представление - 24-часовое, с ведущим нулём.
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
// Принимает также "HH:MM:SS" - секунды отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	h, m, err := parse24(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// ParseFlexible принимает время в 12-часовом ("2:30 PM") или 24-часовом ("14:30")
// формате и возвращает каноническую 24-часовую TimeString
func ParseFlexible(s string) (TimeString, error) {
	if strings.Contains(s, "AM") || strings.Contains(s, "PM") {
		return Parse12Hour(s)
	}
	return NewTimeStringFromString(s)
}

// Parse12Hour конвертирует "H:MM AM/PM" в каноническую 24-часовую TimeString
func Parse12Hour(s string) (TimeString, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 || (parts[1] != "AM" && parts[1] != "PM") {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 || len(hm[1]) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// 12 AM -> 00, 12 PM -> 12, остальные PM +12
	if parts[1] == "AM" && hour == 12 {
		hour = 0
	} else if parts[1] == "PM" && hour != 12 {
		hour += 12
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Format12 возвращает время в 12-часовом формате "H:MM AM/PM"
// Час без ведущего нуля; 00 и 12 отображаются как 12
func (t TimeString) Format12() string {
	h, m, err := parse24(string(t))
	if err != nil {
		return string(t)
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}

	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, m, ampm)
}

// IsZero проверяет, что значение не установлено
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (t TimeString) Validate() error {
	_, _, err := parse24(string(t))
	return err
}

// Minutes возвращает время как число минут от полуночи
func (t TimeString) Minutes() int {
	h, m, err := parse24(string(t))
	if err != nil {
		return 0
	}
	return h*60 + m
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперёд
// Выход за границы суток считается ошибкой - слоты не пересекают полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMinutes, minutes)
	}

	h, m, err := parse24(string(t))
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total > 24*60 {
		return "", fmt.Errorf("%w: result is past midnight", ErrInvalidMinutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)), nil
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Value реализует driver.Valuer для записи в колонку TIME
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t) + ":00", nil
}

// Scan реализует sql.Scanner для чтения из колонки TIME
// Postgres возвращает "HH:MM:SS" - секунды отбрасываются
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

// GenerateSlots генерирует последовательность стартов слотов от open с шагом
// durationMinutes, строго меньше close. Конец слота может выходить за close -
// это намеренное упрощение модели, проверяется только время начала.
func GenerateSlots(open, close TimeString, durationMinutes int) []TimeString {
	slots := make([]TimeString, 0)
	if durationMinutes <= 0 {
		return slots
	}

	current := open
	for current.IsBefore(close) {
		slots = append(slots, current)

		next, err := current.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		current = next
	}

	return slots
}

// GenerateSlots12 то же, что GenerateSlots, но в 12-часовом отображаемом формате
// (контракт публичной страницы бронирования)
func GenerateSlots12(open, close TimeString, durationMinutes int) []string {
	slots := GenerateSlots(open, close, durationMinutes)

	result := make([]string, len(slots))
	for i, s := range slots {
		result[i] = s.Format12()
	}
	return result
}

// parse24 разбирает "HH:MM" или "HH:MM:SS" (24-часовой формат)
func parse24(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hour, minute, nil
}
