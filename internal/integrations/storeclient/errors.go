package storeclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// RejectionError ошибка, которой внешнее хранилище отклонило запрос.
// Message хранит текст из тела ответа дословно: политика сервиса — показывать
// сообщение хранилища пользователю без изменений.
type RejectionError struct {
	Err        error // сентинел категории ошибки из пакета клиента
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

// Reject создает RejectionError, вычитывая сообщение из тела ответа
func Reject(sentinel error, resp *http.Response) *RejectionError {
	return &RejectionError{
		Err:        sentinel,
		StatusCode: resp.StatusCode,
		Message:    readMessage(resp),
	}
}

// RejectionMessage извлекает дословное сообщение хранилища из цепочки ошибок
func RejectionMessage(err error) (string, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) && rej.Message != "" {
		return rej.Message, true
	}
	return "", false
}

// readMessage достает поле message из JSON-тела ответа;
// если тело не JSON или поле пустое — возвращает сырое тело
func readMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return ""
	}

	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}

	return string(body)
}
