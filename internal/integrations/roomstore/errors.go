package roomstore

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип комнаты не найден в хранилище
	ErrRoomTypeNotFound = errors.New("roomstore client: room type not found")

	// ErrRoomNotFound возвращается, когда комната не найдена внутри типа
	ErrRoomNotFound = errors.New("roomstore client: room not found")

	// ErrDuplicateRoom возвращается при конфликте номера комнаты в хранилище
	ErrDuplicateRoom = errors.New("roomstore client: duplicate room number")

	// ErrStoreRejected возвращается, когда хранилище отклонило запрос (прочие не-2xx)
	ErrStoreRejected = errors.New("roomstore client: request rejected by store")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("roomstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("roomstore client: invalid response")
)
