package schedule

import (
	"context"
	"errors"
	"fmt"

	businessstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

// Service сервис управления рабочими часами бизнеса
type Service struct {
	workingHoursRepo WorkingHoursRepository
	businessRepo     BusinessRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	workingHoursRepo WorkingHoursRepository,
	businessRepo BusinessRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		businessRepo:     businessRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Get получает недельное расписание бизнеса
func (s *Service) Get(ctx context.Context, businessID int64) (*models.ScheduleResponse, error) {
	schedule, err := s.workingHoursRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("Get: ошибка получения расписания бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSchedule(schedule), nil
}

// GetBySlug получает расписание по публичному slug бизнеса
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ScheduleResponse, error) {
	business, err := s.businessRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, businessstore.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBySlug: ошибка получения бизнеса %s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}
	return s.Get(ctx, business.ID)
}

// Replace полностью заменяет недельное расписание бизнеса.
// Удаление старых строк и вставка новых идут в одной транзакции
func (s *Service) Replace(ctx context.Context, req models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	schedule, err := req.ToDomainSchedule()
	if err != nil {
		s.logger.Warn("Replace: некорректное расписание для бизнеса %d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	txErr := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.workingHoursRepo.Replace(ctx, req.BusinessID, schedule)
	})
	if txErr != nil {
		s.logger.Error("Replace: ошибка замены расписания бизнеса %d: %v", req.BusinessID, txErr)
		return nil, fmt.Errorf("%w: Replace - transaction error: %v", ErrInternal, txErr)
	}

	s.logger.Info("Replace: расписание бизнеса %d обновлено, дней: %d", req.BusinessID, len(schedule))
	return s.Get(ctx, req.BusinessID)
}
