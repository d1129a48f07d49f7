package update_room_status

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

// RoomStoreClient интерфейс клиента хранилища типов комнат
type RoomStoreClient interface {
	UpdateRoomStatus(ctx context.Context, key domain.RoomKey, patch *roomstore.RoomStatusPatch) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
