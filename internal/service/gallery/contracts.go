package gallery

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/sitestore"
)

// SiteStoreClient интерфейс клиента хранилища контента сайта
type SiteStoreClient interface {
	ListGallery(ctx context.Context) ([]domain.GalleryImage, error)
	UploadGalleryImage(ctx context.Context, req *sitestore.UploadImageRequest) (*domain.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
