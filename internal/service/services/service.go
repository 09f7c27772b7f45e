package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	servicestore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/service/services/models"
)

// Service сервис управления каталогом услуг бизнеса
type Service struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса каталога услуг
func NewService(serviceRepo ServiceRepository, appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Create добавляет услугу в каталог бизнеса
func (s *Service) Create(ctx context.Context, req models.CreateServiceRequest) (*models.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if req.DurationMinutes < domain.MinServiceDurationMinutes {
		return nil, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinServiceDurationMinutes)
	}

	created, err := s.serviceRepo.Create(ctx, &domain.Service{
		BusinessID: req.BusinessID,
		Name:       name,
		Price:      req.Price,
		Duration:   req.DurationMinutes,
	})
	if err != nil {
		s.logger.Error("Create: ошибка создания услуги для бизнеса %d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: услуга %d создана для бизнеса %d", created.ID, req.BusinessID)
	return models.FromDomainService(created), nil
}

// List получает каталог услуг бизнеса
func (s *Service) List(ctx context.Context, businessID int64) ([]*models.ServiceResponse, error) {
	list, err := s.serviceRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("List: ошибка репозитория для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(list), nil
}

// Update изменяет поля услуги. Неуказанные поля остаются прежними
func (s *Service) Update(ctx context.Context, req models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	current, err := s.serviceRepo.GetByIDAndBusiness(ctx, req.ID, req.BusinessID)
	if err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: ошибка получения услуги %d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		current.Name = name
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		current.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		if *req.DurationMinutes < domain.MinServiceDurationMinutes {
			return nil, fmt.Errorf("%w: duration must be at least %d minutes", ErrInvalidInput, domain.MinServiceDurationMinutes)
		}
		current.Duration = *req.DurationMinutes
	}

	if err := s.serviceRepo.Update(ctx, current); err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: ошибка обновления услуги %d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(current), nil
}

// Delete удаляет услугу из каталога.
// Услуга с активными записями удалению не подлежит
func (s *Service) Delete(ctx context.Context, id, businessID int64) error {
	if _, err := s.serviceRepo.GetByIDAndBusiness(ctx, id, businessID); err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: ошибка получения услуги %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	active, err := s.appointmentRepo.CountActiveByService(ctx, id)
	if err != nil {
		s.logger.Error("Delete: ошибка подсчёта записей услуги %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	if active > 0 {
		s.logger.Warn("Delete: услуга %d имеет %d активных записей, удаление отклонено", id, active)
		return fmt.Errorf("%w: %d active appointments", ErrServiceInUse, active)
	}

	if err := s.serviceRepo.Delete(ctx, id, businessID); err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: ошибка удаления услуги %d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: услуга %d удалена у бизнеса %d", id, businessID)
	return nil
}
