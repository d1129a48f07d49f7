package get_room_overview

import (
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	getRoomOverview "github.com/m04kA/HLB-AdminService/internal/usecase/get_room_overview"
)

type Handler struct {
	useCase GetRoomOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/room-types/overview?search=&checkingOutToday=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &getRoomOverview.Request{
		Search:           query.Get("search"),
		CheckingOutToday: query.Get("checkingOutToday") == "true",
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /room-types/overview - Failed to build overview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /room-types/overview - Returned overview for %d room types, date=%s",
		len(result.RoomTypes), result.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
