package get_room_overview

import (
	"context"
	"fmt"
	"slices"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// UseCase use case построения сводки доступности по типам комнат
type UseCase struct {
	roomClient   RoomStoreClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomClient RoomStoreClient, logger Logger) *UseCase {
	return &UseCase{
		roomClient:   roomClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сводки по комнатам.
// Счётчики всегда считаются по полному списку комнат типа; фильтры
// поиска и выезда влияют только на список комнат в ответе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomOverview: search=%q, checkingOutToday=%v", req.Search, req.CheckingOutToday)

	roomTypes, err := uc.roomClient.List(ctx)
	if err != nil {
		uc.logger.Error("GetRoomOverview: failed to list room types: %v", err)
		return nil, fmt.Errorf("%w: failed to list room types: %v", ErrInternal, err)
	}

	today := uc.timeProvider.Now().Format(domain.DateFormat)

	overviews := make([]RoomTypeOverview, len(roomTypes))
	for i := range roomTypes {
		rt := &roomTypes[i]
		overviews[i] = RoomTypeOverview{
			ID:            rt.ID,
			Name:          rt.Name,
			BasePrice:     rt.BasePrice,
			SeasonalPrice: rt.SeasonalPrice,
			Counts:        rt.Counts(),
			Rooms:         slices.Collect(FilterRooms(rt.Rooms, req.Search, req.CheckingOutToday, today)),
		}
		if overviews[i].Rooms == nil {
			overviews[i].Rooms = []domain.Room{}
		}
	}

	uc.logger.Info("GetRoomOverview: built overview for %d room types, date=%s", len(overviews), today)
	return &Response{
		Date:      today,
		RoomTypes: overviews,
	}, nil
}
