package contacts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/HLB-AdminService/internal/integrations/sitestore"
	"github.com/m04kA/HLB-AdminService/internal/service/contacts/models"
)

// Service сервис для работы с сообщениями обратной связи
type Service struct {
	siteClient SiteStoreClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса сообщений обратной связи
func NewService(siteClient SiteStoreClient, logger Logger) *Service {
	return &Service{
		siteClient: siteClient,
		logger:     logger,
	}
}

// List получает список сообщений обратной связи
func (s *Service) List(ctx context.Context) (*models.ContactMessageListResponse, error) {
	s.logger.Info("List: fetching contact messages")

	messages, err := s.siteClient.ListContactMessages(ctx)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d contact messages", len(messages))
	return models.FromDomainContactMessageList(messages), nil
}

// Delete удаляет сообщение обратной связи по идентификатору
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting contact message id=%s", id)

	if strings.TrimSpace(id) == "" {
		s.logger.Warn("Delete: empty message id")
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.siteClient.DeleteContactMessage(ctx, id); err != nil {
		if errors.Is(err, sitestore.ErrMessageNotFound) {
			s.logger.Warn("Delete: contact message id=%s not found", id)
			return ErrMessageNotFound
		}
		s.logger.Error("Delete: store error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted contact message id=%s", id)
	return nil
}
