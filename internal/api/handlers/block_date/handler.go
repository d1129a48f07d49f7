package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCategory    = "некорректная категория бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired       = "дата блокировки не указана"
)

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

// Handle POST /api/v1/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /blocked-dates - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidCategory):
			h.logger.Warn("POST /blocked-dates - Invalid category: %q", req.Type)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, blockeddates.ErrDateRequired):
			h.logger.Warn("POST /blocked-dates - Missing date: category=%s", req.Type)
			handlers.RespondBadRequest(w, msgDateRequired)

		default:
			h.logger.Error("POST /blocked-dates - Failed to block date: category=%s, error=%v", req.Type, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocked-dates - Date blocked successfully: id=%s, category=%s, date=%s",
		result.ID, result.Type, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
