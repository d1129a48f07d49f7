package update_room_status

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната или её тип не найдены в хранилище
	ErrRoomNotFound = errors.New("update_room_status: room not found")

	// ErrInvalidStatus возвращается при неизвестном статусе обслуживания
	ErrInvalidStatus = errors.New("update_room_status: invalid maintenance status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_room_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_room_status: internal error")
)
