package get_room_overview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/pkg/ptr"
)

type mockRoomClient struct {
	roomTypes []domain.RoomType
	err       error
	calls     int
}

func (m *mockRoomClient) List(ctx context.Context) ([]domain.RoomType, error) {
	m.calls++
	return m.roomTypes, m.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(client *mockRoomClient, now time.Time) *UseCase {
	uc := NewUseCase(client, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute(t *testing.T) {
	client := &mockRoomClient{
		roomTypes: []domain.RoomType{
			{
				ID:        "rt-1",
				Name:      "Deluxe",
				BasePrice: 120,
				Rooms: []domain.Room{
					{Number: "10", IsBooked: true, BookedTo: ptr.Ptr("2024-06-01T10:00:00.000Z")},
					{Number: "100", MaintenanceStatus: domain.MaintenanceCleaning},
					{Number: "201"},
				},
			},
			{ID: "rt-2", Name: "Lawn", BasePrice: 40},
		},
	}
	uc := newTestUseCase(client, time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "2024-06-01", resp.Date)
	require.Len(t, resp.RoomTypes, 2)
	assert.Equal(t, "rt-1", resp.RoomTypes[0].ID)
	assert.Equal(t, domain.AvailabilityCounts{Total: 3, Available: 1, Booked: 1, Maintenance: 1},
		resp.RoomTypes[0].Counts)
	assert.Len(t, resp.RoomTypes[0].Rooms, 3)
	assert.Equal(t, domain.AvailabilityCounts{}, resp.RoomTypes[1].Counts)
}

func TestExecuteCountsIgnoreFilters(t *testing.T) {
	client := &mockRoomClient{
		roomTypes: []domain.RoomType{
			{
				ID: "rt-1",
				Rooms: []domain.Room{
					{Number: "10", IsBooked: true},
					{Number: "100"},
					{Number: "201"},
				},
			},
		},
	}
	uc := newTestUseCase(client, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Search: "10"})
	require.NoError(t, err)

	// The room list narrows, the counts stay derived from the full inventory
	overview := resp.RoomTypes[0]
	assert.Len(t, overview.Rooms, 2)
	assert.Equal(t, domain.AvailabilityCounts{Total: 3, Available: 2, Booked: 1}, overview.Counts)
}

func TestExecuteCheckingOutToday(t *testing.T) {
	client := &mockRoomClient{
		roomTypes: []domain.RoomType{
			{
				ID: "rt-1",
				Rooms: []domain.Room{
					{Number: "10", IsBooked: true, BookedTo: ptr.Ptr("2024-06-01T10:00:00.000Z")},
					{Number: "100", IsBooked: true, BookedTo: ptr.Ptr("2024-06-02T10:00:00.000Z")},
					{Number: "201"},
				},
			},
		},
	}
	uc := newTestUseCase(client, time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{CheckingOutToday: true})
	require.NoError(t, err)

	require.Len(t, resp.RoomTypes[0].Rooms, 1)
	assert.Equal(t, "10", resp.RoomTypes[0].Rooms[0].Number)
}

func TestExecuteEmptyMatchIsNotNil(t *testing.T) {
	client := &mockRoomClient{
		roomTypes: []domain.RoomType{
			{ID: "rt-1", Rooms: []domain.Room{{Number: "101"}}},
		},
	}
	uc := newTestUseCase(client, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Search: "zzz"})
	require.NoError(t, err)

	assert.NotNil(t, resp.RoomTypes[0].Rooms)
	assert.Empty(t, resp.RoomTypes[0].Rooms)
}

func TestExecuteStoreError(t *testing.T) {
	client := &mockRoomClient{err: errors.New("connection refused")}
	uc := newTestUseCase(client, time.Now())

	resp, err := uc.Execute(context.Background(), &Request{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
