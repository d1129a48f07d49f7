package rooms

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип комнаты не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrDuplicateRoom возвращается при конфликте номера комнаты в хранилище
	ErrDuplicateRoom = errors.New("duplicate room number")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
