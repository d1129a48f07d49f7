package delete_gallery_image

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/service/gallery"
)

const (
	msgInvalidImageID = "некорректный ID изображения"
	msgNotFound       = "изображение не найдено"
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

// Handle DELETE /api/v1/gallery/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	err := h.service.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrInvalidInput):
			h.logger.Warn("DELETE /gallery/{id} - Invalid image id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidImageID)

		case errors.Is(err, gallery.ErrImageNotFound):
			h.logger.Warn("DELETE /gallery/{id} - Image not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /gallery/{id} - Failed to delete image: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /gallery/{id} - Image deleted successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
