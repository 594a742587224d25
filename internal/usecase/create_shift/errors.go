package create_shift

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных:
	// пустые или недопустимые дни недели, start >= end, плохая область.
	// Отклоняется до какого-либо обращения к хранилищу
	ErrInvalidInput = errors.New("create_shift: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_shift: internal error")
)
