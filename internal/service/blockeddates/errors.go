package blockeddates

import "errors"

var (
	// ErrInvalidCategory возвращается при неизвестной категории бронирования
	ErrInvalidCategory = errors.New("invalid booking category")

	// ErrDateRequired возвращается, когда дата блокировки не указана
	ErrDateRequired = errors.New("date is required")

	// ErrInvalidDate возвращается при неразбираемой дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrBlockedDateNotFound возвращается, когда запись о блокировке не найдена
	ErrBlockedDateNotFound = errors.New("blocked date not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
