package list_gallery

import (
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
)

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list gallery images: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /gallery - Returned %d images", len(result.Images))
	handlers.RespondJSON(w, http.StatusOK, result)
}
