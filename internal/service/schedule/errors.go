package schedule

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден по slug
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidSchedule возвращается при некорректном расписании
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
