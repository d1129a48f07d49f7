package list_room_types

import (
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
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

// Handle GET /api/v1/room-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /room-types - Failed to list room types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /room-types - Returned %d room types", len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}
