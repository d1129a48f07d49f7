package update_room_status

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

type mockRoomClient struct {
	updateErr   error
	updateCalls int
	lastKey     domain.RoomKey
	lastPatch   *roomstore.RoomStatusPatch

	listResult []domain.RoomType
	listErr    error
	listCalls  int
}

func (m *mockRoomClient) UpdateRoomStatus(ctx context.Context, key domain.RoomKey, patch *roomstore.RoomStatusPatch) (*domain.RoomType, error) {
	m.updateCalls++
	m.lastKey = key
	m.lastPatch = patch
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &domain.RoomType{ID: key.RoomTypeID}, nil
}

func (m *mockRoomClient) List(ctx context.Context) ([]domain.RoomType, error) {
	m.listCalls++
	return m.listResult, m.listErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Key:               domain.RoomKey{RoomTypeID: "rt-1", Number: "101"},
		IsBooked:          true,
		MaintenanceStatus: domain.MaintenanceNone,
	}
}

func TestExecuteUpdatesAndRefetches(t *testing.T) {
	client := &mockRoomClient{
		listResult: []domain.RoomType{{ID: "rt-1"}, {ID: "rt-2"}},
	}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, client.updateCalls)
	assert.Equal(t, 1, client.listCalls)
	assert.Equal(t, domain.RoomKey{RoomTypeID: "rt-1", Number: "101"}, resp.Updated)
	assert.Len(t, resp.RoomTypes, 2)
	assert.True(t, client.lastPatch.IsBooked)
}

func TestExecuteTrimsKey(t *testing.T) {
	client := &mockRoomClient{}
	uc := NewUseCase(client, nopLogger{})

	req := validRequest()
	req.Key = domain.RoomKey{RoomTypeID: " rt-1 ", Number: " 101 "}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.RoomKey{RoomTypeID: "rt-1", Number: "101"}, client.lastKey)
	assert.Equal(t, client.lastKey, resp.Updated)
}

func TestExecuteValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{"empty room type id", func(req *Request) { req.Key.RoomTypeID = "  " }, ErrInvalidInput},
		{"empty room number", func(req *Request) { req.Key.Number = "" }, ErrInvalidInput},
		{"unknown maintenance status", func(req *Request) { req.MaintenanceStatus = "Renovation" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockRoomClient{}
			uc := NewUseCase(client, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			// Validation failures never reach the store
			assert.Zero(t, client.updateCalls)
			assert.Zero(t, client.listCalls)
		})
	}
}

func TestExecuteRoomNotFound(t *testing.T) {
	for _, storeErr := range []error{roomstore.ErrRoomNotFound, roomstore.ErrRoomTypeNotFound} {
		client := &mockRoomClient{updateErr: storeErr}
		uc := NewUseCase(client, nopLogger{})

		_, err := uc.Execute(context.Background(), validRequest())

		assert.ErrorIs(t, err, ErrRoomNotFound)
		// No retry, no refetch after a failed write
		assert.Equal(t, 1, client.updateCalls)
		assert.Zero(t, client.listCalls)
	}
}

func TestExecuteRefetchFailure(t *testing.T) {
	client := &mockRoomClient{listErr: errors.New("store down")}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, client.updateCalls)
	assert.Equal(t, 1, client.listCalls)
}
