package blocked_dates_calendar

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

type BlockedDatesService interface {
	Calendar(ctx context.Context, category domain.Category) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
