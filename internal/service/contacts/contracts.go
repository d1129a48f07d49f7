package contacts

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// SiteStoreClient интерфейс клиента хранилища контента сайта
type SiteStoreClient interface {
	ListContactMessages(ctx context.Context) ([]domain.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
