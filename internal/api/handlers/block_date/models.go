package block_date

import (
	"fmt"
	"time"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

// BlockDateRequest HTTP request model
type BlockDateRequest struct {
	Type string  `json:"type"`
	Date *string `json:"date"` // "2025-10-15" либо полная ISO-метка
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// Отсутствующая дата (null) отдается сервису нулевым значением — он
// отклонит её до обращения к хранилищу.
func (r *BlockDateRequest) ToServiceRequest() (*models.BlockDateRequest, error) {
	req := &models.BlockDateRequest{
		Category: domain.Category(r.Type),
	}

	if r.Date == nil {
		return req, nil
	}

	date, err := parseDate(*r.Date)
	if err != nil {
		return nil, err
	}
	req.Date = date
	return req, nil
}

// parseDate разбирает дату в формате YYYY-MM-DD или полной ISO-метки
func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse(domain.DateFormat, raw); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", raw, err)
	}
	return date, nil
}
