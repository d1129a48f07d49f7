package delete_contact_message

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/service/contacts"
)

const (
	msgInvalidMessageID = "некорректный ID сообщения"
	msgNotFound         = "сообщение не найдено"
)

type Handler struct {
	service ContactsService
	logger  Logger
}

func NewHandler(service ContactsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/contact-messages/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("DELETE /contact-messages/{id} - Invalid message id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessageID)

		case errors.Is(err, contacts.ErrMessageNotFound):
			h.logger.Warn("DELETE /contact-messages/{id} - Message not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /contact-messages/{id} - Failed to delete message: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /contact-messages/{id} - Message deleted successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
