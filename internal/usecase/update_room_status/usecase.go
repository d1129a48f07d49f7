package update_room_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

// UseCase use case обновления статуса одной комнаты
type UseCase struct {
	roomClient RoomStoreClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomClient RoomStoreClient, logger Logger) *UseCase {
	return &UseCase{
		roomClient: roomClient,
		logger:     logger,
	}
}

// Execute выполняет use case обновления статуса комнаты.
// После успешной записи полный список типов перечитывается из хранилища.
// Отказ хранилища (неизвестный тип/номер) отдается именованной ошибкой
// и не ретраится.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateRoomStatus: roomType=%s, room=%s, isBooked=%v, maintenance=%q",
		req.Key.RoomTypeID, req.Key.Number, req.IsBooked, req.MaintenanceStatus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateRoomStatus: validation failed: %v", err)
		return nil, err
	}

	key := domain.RoomKey{
		RoomTypeID: strings.TrimSpace(req.Key.RoomTypeID),
		Number:     strings.TrimSpace(req.Key.Number),
	}

	// 2. Отправляем обновление ровно для указанной комнаты
	if _, err := uc.roomClient.UpdateRoomStatus(ctx, key, req.toPatch()); err != nil {
		if errors.Is(err, roomstore.ErrRoomNotFound) || errors.Is(err, roomstore.ErrRoomTypeNotFound) {
			uc.logger.Warn("UpdateRoomStatus: room not found: roomType=%s, room=%s", key.RoomTypeID, key.Number)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("UpdateRoomStatus: store update failed: roomType=%s, room=%s: %v",
			key.RoomTypeID, key.Number, err)
		return nil, fmt.Errorf("%w: store update failed: %v", ErrInternal, err)
	}

	// 3. Перечитываем полный список типов комнат
	roomTypes, err := uc.roomClient.List(ctx)
	if err != nil {
		uc.logger.Error("UpdateRoomStatus: refetch after update failed: %v", err)
		return nil, fmt.Errorf("%w: refetch after update failed: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateRoomStatus: room updated and %d room types refetched: roomType=%s, room=%s",
		len(roomTypes), key.RoomTypeID, key.Number)
	return &Response{
		Updated:   key,
		RoomTypes: roomTypes,
	}, nil
}
