package update_room_status

import (
	"context"

	updateRoomStatus "github.com/m04kA/HLB-AdminService/internal/usecase/update_room_status"
)

type UpdateRoomStatusUseCase interface {
	Execute(ctx context.Context, req *updateRoomStatus.Request) (*updateRoomStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
