package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

// Service сервис для работы с типами комнат
type Service struct {
	roomClient RoomStoreClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса типов комнат
func NewService(roomClient RoomStoreClient, logger Logger) *Service {
	return &Service{
		roomClient: roomClient,
		logger:     logger,
	}
}

// List получает список типов комнат с производными счётчиками.
// Порядок — порядок хранилища, пересортировки нет.
func (s *Service) List(ctx context.Context) (*models.RoomTypeListResponse, error) {
	s.logger.Info("List: fetching room types")

	roomTypes, err := s.roomClient.List(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d room types", len(roomTypes))
	return models.FromDomainRoomTypeList(roomTypes), nil
}

// Create создает тип комнаты.
// Валидация выполняется до любого обращения к хранилищу: при её провале
// запрос в сеть не уходит.
func (s *Service) Create(ctx context.Context, req *models.CreateRoomTypeRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("Create: creating room type name=%q, rooms=%d, photos=%d",
		req.Name, len(req.RoomNumbers), len(req.Photos))

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomClient.Create(ctx, req.ToClientRequest())
	if err != nil {
		if errors.Is(err, roomstore.ErrDuplicateRoom) {
			s.logger.Warn("Create: duplicate room number for name=%q: %v", req.Name, err)
			// Сообщение хранилища сохраняется в цепочке дословно
			return nil, fmt.Errorf("%w: %w", ErrDuplicateRoom, err)
		}
		s.logger.Error("Create: store error for name=%q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created room type id=%s", created.ID)
	return models.FromDomainRoomType(created), nil
}

// Delete удаляет тип комнаты по идентификатору
func (s *Service) Delete(ctx context.Context, roomTypeID string) error {
	s.logger.Info("Delete: deleting room type id=%s", roomTypeID)

	if strings.TrimSpace(roomTypeID) == "" {
		s.logger.Warn("Delete: empty room type id")
		return fmt.Errorf("%w: roomTypeId is required", ErrInvalidInput)
	}

	if err := s.roomClient.Delete(ctx, roomTypeID); err != nil {
		if errors.Is(err, roomstore.ErrRoomTypeNotFound) {
			s.logger.Warn("Delete: room type id=%s not found", roomTypeID)
			return ErrRoomTypeNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", roomTypeID, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted room type id=%s", roomTypeID)
	return nil
}

// AddRoom добавляет комнату в тип.
// Номер обрезается по пробелам; пустой после обрезки номер — локальный отказ,
// запрос в хранилище не уходит. Конфликт дубликата отдается с дословным
// сообщением хранилища.
func (s *Service) AddRoom(ctx context.Context, req *models.AddRoomRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("AddRoom: roomType=%s, number=%q", req.RoomTypeID, req.Number)

	if strings.TrimSpace(req.RoomTypeID) == "" {
		s.logger.Warn("AddRoom: empty room type id")
		return nil, fmt.Errorf("%w: roomTypeId is required", ErrInvalidInput)
	}

	number := strings.TrimSpace(req.Number)
	if number == "" {
		s.logger.Warn("AddRoom: empty room number for roomType=%s", req.RoomTypeID)
		return nil, fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if len(number) > domain.MaxRoomNumberLength {
		s.logger.Warn("AddRoom: room number too long for roomType=%s", req.RoomTypeID)
		return nil, fmt.Errorf("%w: room number is too long", ErrInvalidInput)
	}

	updated, err := s.roomClient.AddRoom(ctx, req.RoomTypeID, number)
	if err != nil {
		switch {
		case errors.Is(err, roomstore.ErrRoomTypeNotFound), errors.Is(err, roomstore.ErrRoomNotFound):
			s.logger.Warn("AddRoom: room type id=%s not found", req.RoomTypeID)
			return nil, ErrRoomTypeNotFound
		case errors.Is(err, roomstore.ErrDuplicateRoom):
			s.logger.Warn("AddRoom: duplicate number=%q in roomType=%s", number, req.RoomTypeID)
			return nil, fmt.Errorf("%w: %w", ErrDuplicateRoom, err)
		default:
			s.logger.Error("AddRoom: store error for roomType=%s: %v", req.RoomTypeID, err)
			return nil, fmt.Errorf("%w: AddRoom - store error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("AddRoom: successfully added room number=%q to roomType=%s", number, req.RoomTypeID)
	return models.FromDomainRoomType(updated), nil
}

// validateCreateRequest валидирует форму создания типа комнаты
func validateCreateRequest(req *models.CreateRoomTypeRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxRoomTypeNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if req.BasePrice <= 0 {
		return fmt.Errorf("%w: basePrice must be positive", ErrInvalidInput)
	}
	if req.SeasonalPrice != nil && *req.SeasonalPrice <= 0 {
		return fmt.Errorf("%w: seasonalPrice must be positive", ErrInvalidInput)
	}

	for _, number := range req.RoomNumbers {
		trimmed := strings.TrimSpace(number)
		if trimmed == "" {
			return fmt.Errorf("%w: room numbers must be non-empty", ErrInvalidInput)
		}
		if len(trimmed) > domain.MaxRoomNumberLength {
			return fmt.Errorf("%w: room number %q is too long", ErrInvalidInput, trimmed)
		}
	}

	return nil
}
