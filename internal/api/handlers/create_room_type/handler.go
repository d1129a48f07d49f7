package create_room_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/integrations/storeclient"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms"
)

const (
	msgInvalidForm   = "некорректная форма создания типа комнаты"
	msgInvalidInput  = "некорректные данные типа комнаты"
	msgDuplicateRoom = "номер комнаты уже существует"
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

// Handle POST /api/v1/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, openFiles, err := parseForm(r)
	if err != nil {
		h.logger.Warn("POST /room-types - Invalid form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}
	defer closeAll(openFiles)

	result, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /room-types - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rooms.ErrDuplicateRoom):
			h.logger.Warn("POST /room-types - Duplicate room number: %v", err)
			// Хранилище объясняет конфликт точнее, чем мы: отдаем его текст дословно
			if msg, ok := storeclient.RejectionMessage(err); ok {
				handlers.RespondConflict(w, msg)
			} else {
				handlers.RespondConflict(w, msgDuplicateRoom)
			}

		default:
			h.logger.Error("POST /room-types - Failed to create room type: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-types - Room type created successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
