package list_blocked_dates

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates"
)

const msgInvalidCategory = "некорректная категория бронирования"

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocked-dates?type=Room|Lawn
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	category := domain.Category(r.URL.Query().Get("type"))

	result, err := h.service.List(r.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidCategory):
			h.logger.Warn("GET /blocked-dates - Invalid category: %q", category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /blocked-dates - Failed to list blocked dates: category=%s, error=%v", category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blocked-dates - Returned %d blocked dates: category=%s", len(result.BlockedDates), category)
	handlers.RespondJSON(w, http.StatusOK, result)
}
