package sitestore

import "errors"

var (
	// ErrImageNotFound возвращается, когда изображение галереи не найдено
	ErrImageNotFound = errors.New("sitestore client: gallery image not found")

	// ErrMessageNotFound возвращается, когда сообщение обратной связи не найдено
	ErrMessageNotFound = errors.New("sitestore client: contact message not found")

	// ErrStoreRejected возвращается, когда хранилище отклонило запрос
	ErrStoreRejected = errors.New("sitestore client: request rejected by store")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("sitestore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе хранилища
	ErrInvalidResponse = errors.New("sitestore client: invalid response")
)
