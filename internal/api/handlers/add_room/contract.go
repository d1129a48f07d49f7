package add_room

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

type RoomService interface {
	AddRoom(ctx context.Context, req *models.AddRoomRequest) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
