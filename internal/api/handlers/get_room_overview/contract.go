package get_room_overview

import (
	"context"

	getRoomOverview "github.com/m04kA/HLB-AdminService/internal/usecase/get_room_overview"
)

type GetRoomOverviewUseCase interface {
	Execute(ctx context.Context, req *getRoomOverview.Request) (*getRoomOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
