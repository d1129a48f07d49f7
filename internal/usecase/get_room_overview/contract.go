package get_room_overview

import (
	"context"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// RoomStoreClient интерфейс клиента хранилища типов комнат
type RoomStoreClient interface {
	List(ctx context.Context) ([]domain.RoomType, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
