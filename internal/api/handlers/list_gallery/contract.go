package list_gallery

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/gallery/models"
)

type GalleryService interface {
	List(ctx context.Context) (*models.GalleryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
