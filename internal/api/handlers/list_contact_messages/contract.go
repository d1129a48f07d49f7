package list_contact_messages

import (
	"context"

	"github.com/m04kA/HLB-AdminService/internal/service/contacts/models"
)

type ContactsService interface {
	List(ctx context.Context) (*models.ContactMessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
