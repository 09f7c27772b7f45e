package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на расчёт доступности слотов
type Request struct {
	Slug            string    // Публичный slug бизнеса
	ServiceID       int64     // ID услуги
	Date            time.Time // Дата, на которую считаются слоты (без времени)
	DurationMinutes int       // Шаг слотов; 0 = взять длительность услуги
}

// Response модель ответа с разбиением слотов
// Оба списка сохраняют порядок генерации
type Response struct {
	Slug        string
	ServiceID   int64
	Date        time.Time
	Available   []string // 12-часовой отображаемый формат
	Unavailable []domain.UnavailableSlot
}
