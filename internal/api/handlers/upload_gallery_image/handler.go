package upload_gallery_image

import (
	"errors"
	"net/http"

	"github.com/m04kA/HLB-AdminService/internal/api/handlers"
	"github.com/m04kA/HLB-AdminService/internal/service/gallery"
	"github.com/m04kA/HLB-AdminService/internal/service/gallery/models"
)

const (
	msgInvalidForm  = "некорректная форма загрузки изображения"
	msgInvalidInput = "заголовок и файл изображения обязательны"
)

// maxFormMemory лимит памяти на разбор multipart-формы
const maxFormMemory = 32 << 20

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

// Handle POST /api/v1/gallery
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.logger.Warn("POST /gallery - Invalid multipart form: %v", err)
		handlers.RespondBadRequest(w, msgInvalidForm)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.logger.Warn("POST /gallery - Missing image file: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}
	defer file.Close()

	result, err := h.service.Upload(r.Context(), &models.UploadImageRequest{
		Title:    r.FormValue("title"),
		Filename: header.Filename,
		Reader:   file,
	})
	if err != nil {
		switch {
		case errors.Is(err, gallery.ErrInvalidInput):
			h.logger.Warn("POST /gallery - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /gallery - Failed to upload image: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /gallery - Image uploaded successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
