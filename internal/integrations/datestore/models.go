package datestore

import (
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// blockedDatePayload модель записи блокировки из хранилища
type blockedDatePayload struct {
	ID   string `json:"_id"`
	Type string `json:"type"`
	Date string `json:"date"`
}

// blockDateRequest тело запроса на блокировку даты.
// Дата сериализуется полной ISO 8601-меткой — так её пишет хранилище.
type blockDateRequest struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

func (p *blockedDatePayload) toDomain() (domain.BlockedDate, error) {
	date, err := parseStoreDate(p.Date)
	if err != nil {
		return domain.BlockedDate{}, err
	}
	return domain.BlockedDate{
		ID:       p.ID,
		Category: domain.Category(p.Type),
		Date:     date,
	}, nil
}

// parseStoreDate разбирает дату хранилища: полная метка времени или только дата
func parseStoreDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(domain.DateFormat, value)
}
