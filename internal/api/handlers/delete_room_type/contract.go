package delete_room_type

import "context"

type RoomService interface {
	Delete(ctx context.Context, roomTypeID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
