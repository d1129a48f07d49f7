package add_room

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
	"github.com/m04kA/HLB-AdminService/internal/integrations/storeclient"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms"
	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

type mockRoomService struct {
	result *models.RoomTypeResponse
	err    error
}

func (m *mockRoomService) AddRoom(ctx context.Context, req *models.AddRoomRequest) (*models.RoomTypeResponse, error) {
	return m.result, m.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, service *mockRoomService, body string) *httptest.ResponseRecorder {
	t.Helper()

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/room-types/{roomTypeId}/rooms",
		NewHandler(service, nopLogger{}).Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/room-types/rt-1/rooms",
		bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		service := &mockRoomService{result: &models.RoomTypeResponse{ID: "rt-1"}}

		rec := doRequest(t, service, `{"number": "205"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := doRequest(t, &mockRoomService{}, `{broken`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty number", func(t *testing.T) {
		service := &mockRoomService{err: fmt.Errorf("%w: room number is required", rooms.ErrInvalidInput)}

		rec := doRequest(t, service, `{"number": "  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("conflict surfaces the store message verbatim", func(t *testing.T) {
		storeErr := &storeclient.RejectionError{
			Err:        roomstore.ErrDuplicateRoom,
			StatusCode: http.StatusConflict,
			Message:    "Комната с номером 205 уже существует",
		}
		service := &mockRoomService{err: fmt.Errorf("%w: %w", rooms.ErrDuplicateRoom, storeErr)}

		rec := doRequest(t, service, `{"number": "205"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Комната с номером 205 уже существует", resp["message"])
	})

	t.Run("unknown room type", func(t *testing.T) {
		service := &mockRoomService{err: rooms.ErrRoomTypeNotFound}

		rec := doRequest(t, service, `{"number": "205"}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
