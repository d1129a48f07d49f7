package list_room_types

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context) (*models.RoomTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
