package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	apptstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	businessstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/business"
	servicestore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

type UseCase struct {
	businessRepo    BusinessRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	txManager       TxManager
	logger          Logger
}

func NewUseCase(
	businessRepo BusinessRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		businessRepo:    businessRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute создаёт запись клиента на слот.
// Проверка конфликта и вставка идут в одной SERIALIZABLE-транзакции,
// уникальный частичный индекс в БД страхует от гонки между инстансами
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	normalized, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: некорректный запрос: %v", err)
		return nil, err
	}

	business, err := uc.businessRepo.GetBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, businessstore.ErrBusinessNotFound) {
			return nil, fmt.Errorf("%w: slug %s", ErrBusinessNotFound, req.Slug)
		}
		uc.logger.Error("CreateBooking: ошибка получения бизнеса %s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByIDAndBusiness(ctx, req.ServiceID, business.ID)
	if err != nil {
		if errors.Is(err, servicestore.ErrServiceNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrServiceNotFound, req.ServiceID)
		}
		uc.logger.Error("CreateBooking: ошибка получения услуги %d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	var created *domain.Appointment
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		taken, err := uc.appointmentRepo.HasActiveAt(ctx, business.ID, normalized.Date, normalized.slotTime)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if taken {
			return fmt.Errorf("%w: %s %s", ErrSlotTaken, normalized.Date.Format(domain.DateFormat), normalized.slotTime)
		}

		code, err := uc.uniqueCode(ctx, business.BusinessName)
		if err != nil {
			return err
		}

		appointment := &domain.Appointment{
			BusinessID:    business.ID,
			ServiceID:     service.ID,
			CustomerName:  normalized.CustomerName,
			Email:         normalized.CustomerEmail,
			Phone:         normalized.CustomerPhone,
			Date:          normalized.Date,
			Time:          normalized.slotTime,
			Status:        domain.StatusPending,
			BookingCode:   code,
		}

		created, err = uc.appointmentRepo.Create(ctx, appointment)
		if err != nil {
			if errors.Is(err, apptstore.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotTaken, normalized.Date.Format(domain.DateFormat), normalized.slotTime)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrSlotTaken) || errors.Is(txErr, ErrCodeGeneration) {
			return nil, txErr
		}
		uc.logger.Error("CreateBooking: транзакция не выполнена: %v", txErr)
		if errors.Is(txErr, ErrInternal) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, txErr)
	}

	created.ServiceName = service.Name
	created.ServicePrice = service.Price
	created.ServiceDuration = service.Duration

	uc.logger.Info("CreateBooking: создана запись %s для бизнеса %d на %s %s",
		created.BookingCode, business.ID, created.Date.Format(domain.DateFormat), created.Time)

	return &Response{
		Appointment: created,
		Time12:      created.Time.Format12(),
	}, nil
}

// uniqueCode подбирает уникальный код записи с ограниченным числом попыток
func (uc *UseCase) uniqueCode(ctx context.Context, businessName string) (string, error) {
	for attempt := 0; attempt < domain.BookingCodeMaxAttempts; attempt++ {
		code := generateBookingCode(businessName)

		exists, err := uc.appointmentRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeGeneration
}
