package add_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/integrations/storeclient"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRoomNumber  = "номер комнаты не заполнен или некорректен"
	msgNotFound           = "тип комнаты не найден"
	msgDuplicateRoom      = "номер комнаты уже существует"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/room-types/{roomTypeId}/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeID := vars["roomTypeId"]

	var req AddRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-types/{id}/rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddRoom(r.Context(), req.ToServiceRequest(roomTypeID))
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /room-types/{id}/rooms - Invalid room number: roomType=%s, error=%v", roomTypeID, err)
			handlers.RespondBadRequest(w, msgInvalidRoomNumber)

		case errors.Is(err, rooms.ErrRoomTypeNotFound):
			h.logger.Warn("POST /room-types/{id}/rooms - Room type not found: id=%s", roomTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rooms.ErrDuplicateRoom):
			h.logger.Warn("POST /room-types/{id}/rooms - Duplicate room number: roomType=%s, number=%q",
				roomTypeID, req.Number)
			if msg, ok := storeclient.RejectionMessage(err); ok {
				handlers.RespondConflict(w, msg)
			} else {
				handlers.RespondConflict(w, msgDuplicateRoom)
			}

		default:
			h.logger.Error("POST /room-types/{id}/rooms - Failed to add room: roomType=%s, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-types/{id}/rooms - Room added successfully: roomType=%s, number=%q",
		roomTypeID, req.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
