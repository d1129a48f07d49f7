package update_room_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	updateRoomStatus "github.com/m04kA/HLB-AdminService/internal/usecase/update_room_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные статуса комнаты"
	msgInvalidStatus      = "неизвестный статус обслуживания"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase UpdateRoomStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRoomStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/room-types/{roomTypeId}/rooms/{number}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	roomTypeID := vars["roomTypeId"]
	number := vars["number"]

	var req UpdateRoomStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /room-types/{id}/rooms/{number}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(roomTypeID, number))
	if err != nil {
		switch {
		case errors.Is(err, updateRoomStatus.ErrInvalidStatus):
			h.logger.Warn("PUT /room-types/{id}/rooms/{number}/status - Invalid maintenance status: roomType=%s, number=%q, status=%q",
				roomTypeID, number, req.MaintenanceStatus)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, updateRoomStatus.ErrInvalidInput):
			h.logger.Warn("PUT /room-types/{id}/rooms/{number}/status - Invalid input: roomType=%s, number=%q, error=%v",
				roomTypeID, number, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateRoomStatus.ErrRoomNotFound):
			h.logger.Warn("PUT /room-types/{id}/rooms/{number}/status - Room not found: roomType=%s, number=%q",
				roomTypeID, number)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PUT /room-types/{id}/rooms/{number}/status - Failed to update room status: roomType=%s, number=%q, error=%v",
				roomTypeID, number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /room-types/{id}/rooms/{number}/status - Room status updated successfully: roomType=%s, number=%q",
		roomTypeID, number)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
