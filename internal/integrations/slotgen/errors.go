package slotgen

import "errors"

var (
	// ErrInvalidResponse возвращается при некорректном ответе генератора
	ErrInvalidResponse = errors.New("slotgen: invalid response")

	// ErrInternal возвращается при ошибках выполнения запроса
	ErrInternal = errors.New("slotgen: internal error")
)
