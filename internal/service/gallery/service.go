package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLB-AdminService/internal/integrations/sitestore"
	"github.com/m04kA/HLB-AdminService/internal/service/gallery/models"
)

// Service сервис для работы с галереей сайта
type Service struct {
	siteClient SiteStoreClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса галереи
func NewService(siteClient SiteStoreClient, logger Logger) *Service {
	return &Service{
		siteClient: siteClient,
		logger:     logger,
	}
}

// List получает список изображений галереи
func (s *Service) List(ctx context.Context) (*models.GalleryListResponse, error) {
	s.logger.Info("List: fetching gallery images")

	images, err := s.siteClient.ListGallery(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d gallery images", len(images))
	return models.FromDomainGalleryImageList(images), nil
}

// Upload загружает изображение в галерею.
// Пустой после обрезки заголовок — локальный отказ без обращения к хранилищу.
func (s *Service) Upload(ctx context.Context, req *models.UploadImageRequest) (*models.GalleryImageResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		s.logger.Warn("Upload: empty image title")
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if req.Reader == nil {
		s.logger.Warn("Upload: missing image file for title=%q", title)
		return nil, fmt.Errorf("%w: image file is required", ErrInvalidInput)
	}

	s.logger.Info("Upload: uploading image title=%q, filename=%q", title, req.Filename)

	created, err := s.siteClient.UploadGalleryImage(ctx, &sitestore.UploadImageRequest{
		Title:    title,
		Filename: req.Filename,
		Reader:   req.Reader,
	})
	if err != nil {
		s.logger.Error("Upload: store error for title=%q: %v", title, err)
		return nil, fmt.Errorf("%w: Upload - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Upload: successfully uploaded image id=%s", created.ID)
	resp := models.FromDomainGalleryImage(created)
	return &resp, nil
}

// Delete удаляет изображение галереи по идентификатору
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting gallery image id=%s", id)

	if strings.TrimSpace(id) == "" {
		s.logger.Warn("Delete: empty image id")
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.siteClient.DeleteGalleryImage(ctx, id); err != nil {
		if errors.Is(err, sitestore.ErrImageNotFound) {
			s.logger.Warn("Delete: gallery image id=%s not found", id)
			return ErrImageNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted gallery image id=%s", id)
	return nil
}
