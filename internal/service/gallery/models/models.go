package models

import (
	"io"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// Request модели

// UploadImageRequest запрос на загрузку изображения в галерею
type UploadImageRequest struct {
	Title    string
	Filename string
	Reader   io.Reader
}

// Response модели

// GalleryImageResponse ответ с данными изображения
type GalleryImageResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// GalleryListResponse ответ со списком изображений галереи
type GalleryListResponse struct {
	Images []GalleryImageResponse `json:"images"`
}

// Методы конвертации

// FromDomainGalleryImage конвертирует domain модель в DTO
func FromDomainGalleryImage(img *domain.GalleryImage) GalleryImageResponse {
	return GalleryImageResponse{
		ID:        img.ID,
		Title:     img.Title,
		URL:       img.URL,
		CreatedAt: img.CreatedAt,
	}
}

// FromDomainGalleryImageList конвертирует список domain моделей в DTO
func FromDomainGalleryImageList(images []domain.GalleryImage) *GalleryListResponse {
	resp := &GalleryListResponse{
		Images: make([]GalleryImageResponse, len(images)),
	}
	for i := range images {
		resp.Images[i] = FromDomainGalleryImage(&images[i])
	}
	return resp
}
