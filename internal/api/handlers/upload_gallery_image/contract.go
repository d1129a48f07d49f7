package upload_gallery_image

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/gallery/models"
)

type GalleryService interface {
	Upload(ctx context.Context, req *models.UploadImageRequest) (*models.GalleryImageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
