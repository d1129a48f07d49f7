package sitestore

import (
	"io"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// galleryImagePayload модель изображения галереи из хранилища
type galleryImagePayload struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// contactMessagePayload модель сообщения обратной связи из хранилища
type contactMessagePayload struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadImageRequest данные формы загрузки изображения галереи
type UploadImageRequest struct {
	Title    string
	Filename string
	Reader   io.Reader
}

func (p *galleryImagePayload) toDomain() domain.GalleryImage {
	return domain.GalleryImage{
		ID:        p.ID,
		Title:     p.Title,
		URL:       p.URL,
		CreatedAt: p.CreatedAt,
	}
}

func (p *contactMessagePayload) toDomain() domain.ContactMessage {
	return domain.ContactMessage{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Message:   p.Message,
		CreatedAt: p.CreatedAt,
	}
}
