package delete_room_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms"
)

const (
	msgInvalidRoomTypeID = "некорректный ID типа комнаты"
	msgNotFound          = "тип комнаты не найден"
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

// Handle DELETE /api/v1/room-types/{roomTypeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeID := vars["roomTypeId"]

	err := h.service.Delete(r.Context(), roomTypeID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("DELETE /room-types/{id} - Invalid room type id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomTypeID)

		case errors.Is(err, rooms.ErrRoomTypeNotFound):
			h.logger.Warn("DELETE /room-types/{id} - Room type not found: id=%s", roomTypeID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /room-types/{id} - Failed to delete room type: id=%s, error=%v", roomTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /room-types/{id} - Room type deleted successfully: id=%s", roomTypeID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
