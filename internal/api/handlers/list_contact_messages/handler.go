package list_contact_messages

import (
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
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

// Handle GET /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /contact-messages - Failed to list contact messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /contact-messages - Returned %d messages", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
