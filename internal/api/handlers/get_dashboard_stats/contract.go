package get_dashboard_stats

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/dashboard/models"
)

type DashboardService interface {
	GetStats(ctx context.Context, businessID int64) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
