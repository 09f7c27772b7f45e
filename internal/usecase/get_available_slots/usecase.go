package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	businessstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	servicestore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	whstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/workinghours"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type UseCase struct {
	businessRepo     BusinessRepository
	serviceRepo      ServiceRepository
	workingHoursRepo WorkingHoursRepository
	appointmentRepo  AppointmentRepository
	timeProvider     TimeProvider
	logger           Logger
}

func NewUseCase(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	workingHoursRepo WorkingHoursRepository,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:     businessRepo,
		serviceRepo:      serviceRepo,
		workingHoursRepo: workingHoursRepo,
		appointmentRepo:  appointmentRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute рассчитывает доступность слотов бизнеса на указанную дату
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: некорректный запрос: %v", err)
		return nil, err
	}

	business, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessstore.ErrBusinessNotFound) {
			return nil, fmt.Errorf("%w: slug %s", ErrBusinessNotFound, req.Slug)
		}
		uc.logger.Error("GetAvailableSlots: ошибка получения бизнеса %s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByIDAndBusiness(ctx, req.ServiceID, business.ID)
	if err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("GetAvailableSlots: ошибка получения услуги %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = service.Duration
	}
	if duration <= 0 {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, duration)
	}

	hours, err := uc.workingHoursRepo.GetByBusinessAndDay(ctx, business.ID, int(req.Date.Weekday()))
	if err != nil {
		if errors.Is(err, whstore.ErrWorkingHourNotFound) {
			// Расписание на день не задано — бизнес закрыт
			return uc.emptyResponse(req), nil
		}
		uc.logger.Error("GetAvailableSlots: ошибка получения расписания бизнеса %d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return uc.emptyResponse(req), nil
	}

	slots := types.GenerateSlots12(*hours.OpenTime, *hours.CloseTime, duration)
	if len(slots) == 0 {
		return uc.emptyResponse(req), nil
	}

	booked, err := uc.appointmentRepo.GetBookedTimes(ctx, business.ID, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: ошибка получения занятых слотов бизнеса %d: %v", business.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	partition := partitionSlots(slots, booked, req.Date, uc.timeProvider.Now())

	return &Response{
		Slug:        req.Slug,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Available:   partition.Available,
		Unavailable: partition.Unavailable,
	}, nil
}

func (uc *UseCase) emptyResponse(req Request) *Response {
	return &Response{
		Slug:        req.Slug,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Available:   []string{},
		Unavailable: []domain.UnavailableSlot{},
	}
}
