package get_bookable_times

import "errors"

var (
	// ErrEstablishmentNotFound возвращается, когда заведение не найдено
	ErrEstablishmentNotFound = errors.New("get_bookable_times: establishment not found")

	// ErrProfessionalNotFound возвращается, когда мастер не числится в заведении
	ErrProfessionalNotFound = errors.New("get_bookable_times: professional not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("get_bookable_times: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_bookable_times: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_bookable_times: internal error")
)
