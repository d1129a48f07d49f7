package blockeddates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/datestore"
	"github.com/m04kA/HLB-AdminService/internal/service/blockeddates/models"
)

type mockDateClient struct {
	listResults map[domain.Category][]domain.BlockedDate
	listErr     error
	listCalls   []domain.Category

	blockResult *domain.BlockedDate
	blockErr    error
	blockCalls  int

	unblockErr   error
	unblockCalls int
	lastID       string
}

func (m *mockDateClient) List(ctx context.Context, category domain.Category) ([]domain.BlockedDate, error) {
	m.listCalls = append(m.listCalls, category)
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listResults[category], nil
}

func (m *mockDateClient) Block(ctx context.Context, category domain.Category, date time.Time) (*domain.BlockedDate, error) {
	m.blockCalls++
	if m.blockErr != nil {
		return nil, m.blockErr
	}
	if m.blockResult != nil {
		return m.blockResult, nil
	}
	return &domain.BlockedDate{ID: "bd-1", Category: category, Date: date}, nil
}

func (m *mockDateClient) Unblock(ctx context.Context, id string) error {
	m.unblockCalls++
	m.lastID = id
	return m.unblockErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func TestListCategoriesAreIndependent(t *testing.T) {
	client := &mockDateClient{
		listResults: map[domain.Category][]domain.BlockedDate{
			domain.CategoryRoom: {{ID: "r-1", Category: domain.CategoryRoom, Date: day(2025, 7, 1)}},
			domain.CategoryLawn: {
				{ID: "l-1", Category: domain.CategoryLawn, Date: day(2025, 7, 2)},
				{ID: "l-2", Category: domain.CategoryLawn, Date: day(2025, 7, 3)},
			},
		},
	}
	svc := NewService(client, nopLogger{})

	roomResp, err := svc.List(context.Background(), domain.CategoryRoom)
	require.NoError(t, err)
	lawnResp, err := svc.List(context.Background(), domain.CategoryLawn)
	require.NoError(t, err)

	assert.Len(t, roomResp.BlockedDates, 1)
	assert.Len(t, lawnResp.BlockedDates, 2)
	assert.Equal(t, "Room", roomResp.Type)
	assert.Equal(t, "Lawn", lawnResp.Type)

	// Each category keeps its own snapshot
	cachedRoom, ok := svc.CachedList(domain.CategoryRoom)
	require.True(t, ok)
	assert.Len(t, cachedRoom.BlockedDates, 1)

	cachedLawn, ok := svc.CachedList(domain.CategoryLawn)
	require.True(t, ok)
	assert.Len(t, cachedLawn.BlockedDates, 2)
}

func TestListInvalidCategory(t *testing.T) {
	client := &mockDateClient{}
	svc := NewService(client, nopLogger{})

	_, err := svc.List(context.Background(), domain.Category("Pool"))

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Empty(t, client.listCalls)
}

func TestBlockRejectsMissingDateLocally(t *testing.T) {
	client := &mockDateClient{}
	svc := NewService(client, nopLogger{})

	_, err := svc.Block(context.Background(), &models.BlockDateRequest{
		Category: domain.CategoryRoom,
	})

	assert.ErrorIs(t, err, ErrDateRequired)
	assert.Zero(t, client.blockCalls)
}

func TestBlockInvalidCategory(t *testing.T) {
	client := &mockDateClient{}
	svc := NewService(client, nopLogger{})

	_, err := svc.Block(context.Background(), &models.BlockDateRequest{
		Category: "Pool",
		Date:     day(2025, 7, 1),
	})

	assert.ErrorIs(t, err, ErrInvalidCategory)
	assert.Zero(t, client.blockCalls)
}

func TestBlockSuccess(t *testing.T) {
	client := &mockDateClient{}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Block(context.Background(), &models.BlockDateRequest{
		Category: domain.CategoryLawn,
		Date:     day(2025, 7, 4),
	})
	require.NoError(t, err)

	assert.Equal(t, "bd-1", resp.ID)
	assert.Equal(t, "Lawn", resp.Type)
	assert.Equal(t, "2025-07-04", resp.Date)
}

func TestBlockInvalidatesSnapshot(t *testing.T) {
	client := &mockDateClient{
		listResults: map[domain.Category][]domain.BlockedDate{
			domain.CategoryRoom: {{ID: "r-1", Category: domain.CategoryRoom, Date: day(2025, 7, 1)}},
		},
	}
	svc := NewService(client, nopLogger{})

	_, err := svc.List(context.Background(), domain.CategoryRoom)
	require.NoError(t, err)
	_, ok := svc.CachedList(domain.CategoryRoom)
	require.True(t, ok)

	_, err = svc.Block(context.Background(), &models.BlockDateRequest{
		Category: domain.CategoryRoom,
		Date:     day(2025, 7, 5),
	})
	require.NoError(t, err)

	_, ok = svc.CachedList(domain.CategoryRoom)
	assert.False(t, ok)
}

func TestStaleListResultIsDiscarded(t *testing.T) {
	client := &mockDateClient{
		listResults: map[domain.Category][]domain.BlockedDate{
			domain.CategoryRoom: {{ID: "r-old", Category: domain.CategoryRoom, Date: day(2025, 7, 1)}},
		},
	}
	svc := NewService(client, nopLogger{})

	// A fetch that started before the mutation must not win the cache
	gen := svc.beginFetch(domain.CategoryRoom)
	svc.invalidate(domain.CategoryRoom)

	installed := svc.installSnapshot(domain.CategoryRoom, gen,
		[]domain.BlockedDate{{ID: "r-old"}})
	assert.False(t, installed)

	_, ok := svc.CachedList(domain.CategoryRoom)
	assert.False(t, ok)
}

func TestUnblock(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := &mockDateClient{}
		svc := NewService(client, nopLogger{})

		err := svc.Unblock(context.Background(), &models.UnblockDateRequest{
			Category: domain.CategoryRoom,
			ID:       "bd-7",
		})
		require.NoError(t, err)

		assert.Equal(t, "bd-7", client.lastID)
	})

	t.Run("not found", func(t *testing.T) {
		client := &mockDateClient{unblockErr: datestore.ErrBlockedDateNotFound}
		svc := NewService(client, nopLogger{})

		err := svc.Unblock(context.Background(), &models.UnblockDateRequest{
			Category: domain.CategoryRoom,
			ID:       "bd-404",
		})

		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
	})

	t.Run("empty id rejected locally", func(t *testing.T) {
		client := &mockDateClient{}
		svc := NewService(client, nopLogger{})

		err := svc.Unblock(context.Background(), &models.UnblockDateRequest{
			Category: domain.CategoryRoom,
		})

		assert.ErrorIs(t, err, ErrBlockedDateNotFound)
		assert.Zero(t, client.unblockCalls)
	})
}

func TestCalendarDeduplicatesAndSorts(t *testing.T) {
	client := &mockDateClient{
		listResults: map[domain.Category][]domain.BlockedDate{
			domain.CategoryLawn: {
				{ID: "l-3", Category: domain.CategoryLawn, Date: day(2025, 7, 9)},
				{ID: "l-1", Category: domain.CategoryLawn, Date: day(2025, 7, 2)},
				{ID: "l-2", Category: domain.CategoryLawn, Date: day(2025, 7, 2)},
			},
		},
	}
	svc := NewService(client, nopLogger{})

	resp, err := svc.Calendar(context.Background(), domain.CategoryLawn)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-07-02", "2025-07-09"}, resp.ExcludedDates)
}

func TestCalendarStoreError(t *testing.T) {
	client := &mockDateClient{listErr: errors.New("store down")}
	svc := NewService(client, nopLogger{})

	_, err := svc.Calendar(context.Background(), domain.CategoryRoom)

	assert.ErrorIs(t, err, ErrInternal)
}
