package unblock_date

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

type BlockedDatesService interface {
	Unblock(ctx context.Context, req *models.UnblockDateRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
