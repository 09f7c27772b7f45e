package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден по slug
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	// или не принадлежит бизнесу
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotTaken возвращается, когда слот уже занят активной записью
	ErrSlotTaken = errors.New("create_booking: time slot already taken")

	// ErrCodeGeneration возвращается, когда не удалось сгенерировать
	// уникальный код записи за отведённое число попыток
	ErrCodeGeneration = errors.New("create_booking: failed to generate unique booking code")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
