package models

import (
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// Request модели

// BlockDateRequest запрос на блокировку даты категории
type BlockDateRequest struct {
	Category domain.Category
	Date     time.Time
}

// UnblockDateRequest запрос на снятие блокировки
type UnblockDateRequest struct {
	Category domain.Category
	ID       string
}

// Response модели

// BlockedDateResponse ответ с данными блокировки
type BlockedDateResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Date string `json:"date"` // YYYY-MM-DD
}

// BlockedDateListResponse ответ со списком блокировок одной категории
type BlockedDateListResponse struct {
	Type         string                `json:"type"`
	BlockedDates []BlockedDateResponse `json:"blockedDates"`
}

// CalendarResponse набор исключаемых дат для date-picker одной категории
type CalendarResponse struct {
	Type          string   `json:"type"`
	ExcludedDates []string `json:"excludedDates"` // YYYY-MM-DD, отсортированы, без дублей
}

// Методы конвертации

// FromDomainBlockedDate конвертирует domain модель в DTO
func FromDomainBlockedDate(b *domain.BlockedDate) BlockedDateResponse {
	return BlockedDateResponse{
		ID:   b.ID,
		Type: string(b.Category),
		Date: b.DateOnly(),
	}
}

// FromDomainBlockedDateList конвертирует список domain моделей в DTO
func FromDomainBlockedDateList(category domain.Category, dates []domain.BlockedDate) *BlockedDateListResponse {
	resp := &BlockedDateListResponse{
		Type:         string(category),
		BlockedDates: make([]BlockedDateResponse, len(dates)),
	}
	for i := range dates {
		resp.BlockedDates[i] = FromDomainBlockedDate(&dates[i])
	}
	return resp
}
