package gallery

import "errors"

var (
	// ErrInvalidInput возвращается при ошибках валидации входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
