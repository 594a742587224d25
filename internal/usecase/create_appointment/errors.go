package create_appointment

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("create_appointment: establishment not found")

	// ErrProfessionalNotFound возвращается, когда мастер не числится в заведении
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrOutsideBusinessHours возвращается, когда время вне рабочих
	// часов активных смен области
	ErrOutsideBusinessHours = errors.New("create_appointment: time is outside business hours")

	// ErrTimeNoLongerAvailable возвращается, когда время перестало быть
	// доступным между показом списка и коммитом брони. Отличается от
	// общих ошибок сервера: клиенту нужно обновить список доступного
	// времени и выбрать заново
	ErrTimeNoLongerAvailable = errors.New("create_appointment: time is no longer available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
