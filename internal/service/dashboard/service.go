package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/dashboard/models"
)

// Service сервис сводной статистики для дашборда бизнеса
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetStats собирает сводку бизнеса: записи на сегодня, ожидающие подтверждения,
// размер каталога услуг и выручку за текущий календарный месяц.
// Выручка считается только по записям со статусом done
func (s *Service) GetStats(ctx context.Context, businessID int64) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()

	today, err := s.appointmentRepo.CountForDate(ctx, businessID, now)
	if err != nil {
		s.logger.Error("GetStats: ошибка подсчёта записей на сегодня для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	pending, err := s.appointmentRepo.CountByStatus(ctx, businessID, domain.StatusPending)
	if err != nil {
		s.logger.Error("GetStats: ошибка подсчёта pending-записей для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	servicesCount, err := s.serviceRepo.CountByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("GetStats: ошибка подсчёта услуг для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	revenue, err := s.appointmentRepo.MonthlyRevenue(ctx, businessID, now.Year(), now.Month())
	if err != nil {
		s.logger.Error("GetStats: ошибка подсчёта выручки для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		TodayAppointments: today,
		PendingCount:      pending,
		ServicesCount:     servicesCount,
		MonthlyRevenue:    revenue,
	}, nil
}
