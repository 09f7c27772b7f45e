package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями бизнеса
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// List получает записи бизнеса с опциональными фильтрами.
// Сортировка: по приоритету статуса, затем по дате и времени
func (s *Service) List(ctx context.Context, req models.ListAppointmentsRequest) ([]*models.AppointmentResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: некорректный статус %v для бизнеса %d", req.Status, req.BusinessID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	list, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: ошибка репозитория для бизнеса %d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(list), nil
}

// ListToday получает записи бизнеса на сегодня, отсортированные по времени
func (s *Service) ListToday(ctx context.Context, businessID int64) ([]*models.AppointmentResponse, error) {
	today := s.timeProvider.Now()

	list, err := s.appointmentRepo.ListForDate(ctx, businessID, today)
	if err != nil {
		s.logger.Error("ListToday: ошибка репозитория для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListToday - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(list), nil
}

// ListUpcoming получает будущие активные записи бизнеса (после сегодняшнего дня)
func (s *Service) ListUpcoming(ctx context.Context, businessID int64) ([]*models.AppointmentResponse, error) {
	list, err := s.appointmentRepo.ListUpcoming(ctx, businessID, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("ListUpcoming: ошибка репозитория для бизнеса %d: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(list), nil
}

// UpdateStatus переводит запись в новый статус.
// Допустимые переходы: pending -> confirmed/cancelled, confirmed -> done/cancelled.
// Терминальные статусы (cancelled, done) менять нельзя
func (s *Service) UpdateStatus(ctx context.Context, req models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	target, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: неизвестный статус %q для записи %d", req.Status, req.ID)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, req.ID, req.BusinessID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: запись %d не найдена у бизнеса %d", req.ID, req.BusinessID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: ошибка репозитория для записи %d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !appointment.Status.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: недопустимый переход %s -> %s для записи %d", appointment.Status, target, req.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appointment.Status, target)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, req.ID, req.BusinessID, target); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: ошибка обновления записи %d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = target
	s.logger.Info("UpdateStatus: запись %d переведена в статус %s", req.ID, target)
	return models.FromDomainAppointment(appointment), nil
}

// TrackByCode находит запись по её публичному коду.
// Возвращает урезанный ответ без контактных данных
func (s *Service) TrackByCode(ctx context.Context, code string) (*models.TrackingResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: booking code is required", ErrInvalidInput)
	}

	appointment, err := s.appointmentRepo.GetByBookingCode(ctx, code)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("TrackByCode: ошибка репозитория для кода %s: %v", code, err)
		return nil, fmt.Errorf("%w: TrackByCode - repository error: %v", ErrInternal, err)
	}

	return models.TrackingFromDomain(appointment), nil
}
