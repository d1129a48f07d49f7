package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/datestore"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

// categorySnapshot последний установленный список блокировок одной категории
type categorySnapshot struct {
	generation uint64
	dates      []domain.BlockedDate
}

// Service сервис для работы с заблокированными датами.
// Категории полностью независимы: чтение и мутация одной категории
// не трогают снимок другой.
type Service struct {
	dateClient DateStoreClient
	logger     Logger

	mu        sync.Mutex
	snapshots map[domain.Category]*categorySnapshot
}

// NewService создает новый экземпляр сервиса заблокированных дат
func NewService(dateClient DateStoreClient, logger Logger) *Service {
	return &Service{
		dateClient: dateClient,
		logger:     logger,
		snapshots:  make(map[domain.Category]*categorySnapshot),
	}
}

// List получает список блокировок категории.
// Каждый вызов ходит в хранилище; снимок обновляется только если за время
// запроса категорию не успела изменить более поздняя операция — устаревший
// ответ отбрасывается и не перетирает свежие данные.
func (s *Service) List(ctx context.Context, category domain.Category) (*models.BlockedDateListResponse, error) {
	if !category.IsValid() {
		s.logger.Warn("List: invalid category %q", category)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, category)
	}

	s.logger.Info("List: fetching blocked dates for category=%s", category)

	gen := s.beginFetch(category)

	dates, err := s.dateClient.List(ctx, category)
	if err != nil {
		s.logger.Error("List: store error for category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: List - store error: %v", ErrInternal, err)
	}

	installed := s.installSnapshot(category, gen, dates)
	if !installed {
		s.logger.Warn("List: stale response for category=%s discarded from cache", category)
	}

	s.logger.Info("List: fetched %d blocked dates for category=%s", len(dates), category)
	return models.FromDomainBlockedDateList(category, dates), nil
}

// Block блокирует дату категории.
// Нулевая дата — локальный отказ, запрос в хранилище не уходит.
func (s *Service) Block(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error) {
	if !req.Category.IsValid() {
		s.logger.Warn("Block: invalid category %q", req.Category)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.Date.IsZero() {
		s.logger.Warn("Block: missing date for category=%s", req.Category)
		return nil, ErrDateRequired
	}

	s.logger.Info("Block: blocking date=%s for category=%s", req.Date.Format(domain.DateFormat), req.Category)

	// Любая мутация делает текущий снимок категории устаревшим
	s.invalidate(req.Category)

	created, err := s.dateClient.Block(ctx, req.Category, req.Date)
	if err != nil {
		s.logger.Error("Block: store error for category=%s: %v", req.Category, err)
		return nil, fmt.Errorf("%w: Block - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: successfully blocked date id=%s for category=%s", created.ID, req.Category)
	resp := models.FromDomainBlockedDate(created)
	return &resp, nil
}

// Unblock снимает блокировку по идентификатору, присвоенному хранилищем
func (s *Service) Unblock(ctx context.Context, req *models.UnblockDateRequest) error {
	if !req.Category.IsValid() {
		s.logger.Warn("Unblock: invalid category %q", req.Category)
		return fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.ID == "" {
		s.logger.Warn("Unblock: empty id for category=%s", req.Category)
		return fmt.Errorf("%w: id is required", ErrBlockedDateNotFound)
	}

	s.logger.Info("Unblock: removing blocked date id=%s for category=%s", req.ID, req.Category)

	s.invalidate(req.Category)

	if err := s.dateClient.Unblock(ctx, req.ID); err != nil {
		if errors.Is(err, datestore.ErrBlockedDateNotFound) {
			s.logger.Warn("Unblock: blocked date id=%s not found", req.ID)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Unblock: store error for id=%s: %v", req.ID, err)
		return fmt.Errorf("%w: Unblock - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: successfully removed blocked date id=%s", req.ID)
	return nil
}

// Calendar возвращает отсортированный набор исключаемых дат категории
// без дублей, в формате YYYY-MM-DD.
func (s *Service) Calendar(ctx context.Context, category domain.Category) (*models.CalendarResponse, error) {
	list, err := s.List(ctx, category)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(list.BlockedDates))
	excluded := make([]string, 0, len(list.BlockedDates))
	for _, d := range list.BlockedDates {
		if _, ok := seen[d.Date]; ok {
			continue
		}
		seen[d.Date] = struct{}{}
		excluded = append(excluded, d.Date)
	}
	sort.Strings(excluded)

	return &models.CalendarResponse{
		Type:          string(category),
		ExcludedDates: excluded,
	}, nil
}

// CachedList возвращает последний установленный снимок категории, если он есть.
// Используется как деградация при недоступности хранилища.
func (s *Service) CachedList(category domain.Category) (*models.BlockedDateListResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[category]
	if !ok || snap.dates == nil {
		return nil, false
	}
	return models.FromDomainBlockedDateList(category, snap.dates), true
}

// beginFetch помечает начало чтения категории и возвращает его поколение
func (s *Service) beginFetch(category domain.Category) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[category]
	if !ok {
		snap = &categorySnapshot{}
		s.snapshots[category] = snap
	}
	snap.generation++
	return snap.generation
}

// installSnapshot устанавливает результат чтения, если поколение не изменилось
func (s *Service) installSnapshot(category domain.Category, gen uint64, dates []domain.BlockedDate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[category]
	if !ok || snap.generation != gen {
		return false
	}
	snap.dates = dates
	return true
}

// invalidate сбрасывает снимок категории и двигает поколение, обгоняя
// все запущенные ранее чтения
func (s *Service) invalidate(category domain.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, ok := s.snapshots[category]
	if !ok {
		snap = &categorySnapshot{}
		s.snapshots[category] = snap
	}
	snap.generation++
	snap.dates = nil
}
