package datestore

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда запись о блокировке не найдена
	ErrBlockedDateNotFound = errors.New("datestore client: blocked date not found")

	// ErrStoreRejected возвращается, когда хранилище отклонило запрос
	ErrStoreRejected = errors.New("datestore client: request rejected by store")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("datestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("datestore client: invalid response")
)
