package rooms

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

// RoomStoreClient интерфейс клиента хранилища типов комнат
type RoomStoreClient interface {
	List(ctx context.Context) ([]domain.RoomType, error)
	Create(ctx context.Context, req *roomstore.CreateRoomTypeRequest) (*domain.RoomType, error)
	Delete(ctx context.Context, roomTypeID string) error
	AddRoom(ctx context.Context, roomTypeID, number string) (*domain.RoomType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
