package models

import (
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// ContactMessageResponse ответ с данными сообщения обратной связи
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse ответ со списком сообщений обратной связи
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

// FromDomainContactMessage конвертирует domain модель в DTO
func FromDomainContactMessage(m *domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainContactMessageList конвертирует список domain моделей в DTO
func FromDomainContactMessageList(messages []domain.ContactMessage) *ContactMessageListResponse {
	resp := &ContactMessageListResponse{
		Messages: make([]ContactMessageResponse, len(messages)),
	}
	for i := range messages {
		resp.Messages[i] = FromDomainContactMessage(&messages[i])
	}
	return resp
}
