package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking code generation constants
const (
	BookingCodePrefixMaxLen = 10 // Префикс из имени бизнеса (только A-Z)
	BookingCodeSuffixLen    = 6  // Случайный суффикс
	BookingCodeMaxAttempts  = 5  // Лимит попыток генерации уникального кода
)

// Business validation constants
const (
	MinServiceDurationMinutes = 1
	MaxCustomerNameLength     = 255
	MinWeekday                = 0
	MaxWeekday                = 6
)

// BlockingStatuses статусы, при которых запись занимает слот
// Используются движком доступности: cancelled и done слот не блокируют
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все допустимые значения статуса записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusDone,
}
