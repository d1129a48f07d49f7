package blockeddates

import (
	"context"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// DateStoreClient интерфейс клиента хранилища заблокированных дат
type DateStoreClient interface {
	List(ctx context.Context, category domain.Category) ([]domain.BlockedDate, error)
	Block(ctx context.Context, category domain.Category, date time.Time) (*domain.BlockedDate, error)
	Unblock(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
