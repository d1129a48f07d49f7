package unblock_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

const (
	msgInvalidCategory = "некорректная категория бронирования"
	msgNotFound        = "запись о блокировке не найдена"
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

// Handle DELETE /api/v1/blocked-dates/{id}?type=Room|Lawn
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]
	category := domain.Category(r.URL.Query().Get("type"))

	err := h.service.Unblock(r.Context(), &models.UnblockDateRequest{
		Category: category,
		ID:       id,
	})
	if err != nil {
		switch {
		case errors.Is(err, blockeddates.ErrInvalidCategory):
			h.logger.Warn("DELETE /blocked-dates/{id} - Invalid category: %q", category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, blockeddates.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /blocked-dates/{id} - Blocked date not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /blocked-dates/{id} - Failed to unblock date: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /blocked-dates/{id} - Date unblocked successfully: id=%s, category=%s", id, category)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
