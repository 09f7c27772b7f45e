package models

// StatsResponse сводка по бизнесу для дашборда
type StatsResponse struct {
	TodayAppointments int64   `json:"todayAppointments"` // Записи на сегодня (все статусы)
	PendingCount      int64   `json:"pendingCount"`      // Записи, ожидающие подтверждения
	ServicesCount     int64   `json:"servicesCount"`     // Услуги в каталоге
	MonthlyRevenue    float64 `json:"monthlyRevenue"`    // Выручка по done-записям за текущий месяц
}
