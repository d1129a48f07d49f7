package contacts

import "errors"

var (
	// ErrInvalidInput возвращается при ошибках валидации входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = errors.New("contact message not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
