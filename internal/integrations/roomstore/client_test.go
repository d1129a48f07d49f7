package roomstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/storeclient"
	"github.com/m04kA/HLB-AdminService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 0, nil, nopLogger{})
}

func TestList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/room-types", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"_id": "rt-1",
				"name": "Deluxe",
				"basePrice": 120,
				"rooms": [
					{"number": "101", "isBooked": true, "bookedTo": "2024-06-01T10:00:00.000Z"},
					{"number": "102", "maintenanceStatus": "Cleaning"}
				]
			}
		]`))
	})

	roomTypes, err := client.List(context.Background())
	require.NoError(t, err)

	require.Len(t, roomTypes, 1)
	rt := roomTypes[0]
	assert.Equal(t, "rt-1", rt.ID)
	assert.Equal(t, "Deluxe", rt.Name)
	require.Len(t, rt.Rooms, 2)
	assert.True(t, rt.Rooms[0].IsBooked)
	assert.Equal(t, ptr.Ptr("2024-06-01T10:00:00.000Z"), rt.Rooms[0].BookedTo)
	assert.Equal(t, domain.MaintenanceCleaning, rt.Rooms[1].MaintenanceStatus)
}

func TestListStoreRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "store exploded"}`, http.StatusInternalServerError)
	})

	_, err := client.List(context.Background())

	assert.ErrorIs(t, err, ErrStoreRejected)
	msg, ok := storeclient.RejectionMessage(err)
	require.True(t, ok)
	assert.Equal(t, "store exploded", msg)
}

func TestCreateSendsMultipartForm(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Deluxe", r.FormValue("name"))
		assert.Equal(t, "120", r.FormValue("basePrice"))
		assert.Equal(t, "90", r.FormValue("seasonalPrice"))
		assert.JSONEq(t, `["wifi","tv"]`, r.FormValue("amenities"))
		assert.JSONEq(t, `["101","102"]`, r.FormValue("roomNumbers"))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"_id":       "rt-1",
			"name":      "Deluxe",
			"basePrice": 120,
		})
	})

	created, err := client.Create(context.Background(), &CreateRoomTypeRequest{
		Name:          "Deluxe",
		BasePrice:     120,
		SeasonalPrice: ptr.Ptr(90.0),
		Amenities:     []string{"wifi", "tv"},
		RoomNumbers:   []string{"101", "102"},
	})
	require.NoError(t, err)

	assert.Equal(t, "rt-1", created.ID)
}

func TestCreateConflictKeepsVerbatimMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "Room number 101 already exists"}`))
	})

	_, err := client.Create(context.Background(), &CreateRoomTypeRequest{
		Name:        "Deluxe",
		BasePrice:   120,
		RoomNumbers: []string{"101"},
	})

	assert.ErrorIs(t, err, ErrDuplicateRoom)
	msg, ok := storeclient.RejectionMessage(err)
	require.True(t, ok)
	assert.Equal(t, "Room number 101 already exists", msg)
}

func TestDelete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/room-types/rt-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		})

		assert.NoError(t, client.Delete(context.Background(), "rt-1"))
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		assert.ErrorIs(t, client.Delete(context.Background(), "rt-404"), ErrRoomTypeNotFound)
	})
}

func TestAddRoom(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/room-types/rt-1/add-room", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "205", body["number"])

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"_id":   "rt-1",
			"rooms": []map[string]interface{}{{"number": "205"}},
		})
	})

	updated, err := client.AddRoom(context.Background(), "rt-1", "205")
	require.NoError(t, err)

	require.Len(t, updated.Rooms, 1)
	assert.Equal(t, "205", updated.Rooms[0].Number)
}

func TestUpdateRoomStatus(t *testing.T) {
	t.Run("sends the full patch to the keyed room", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/api/room-types/rt-1/room-status/101", r.URL.Path)

			var patch RoomStatusPatch
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			assert.True(t, patch.IsBooked)
			assert.Equal(t, "Cleaning", patch.MaintenanceStatus)

			_ = json.NewEncoder(w).Encode(map[string]interface{}{"_id": "rt-1"})
		})

		_, err := client.UpdateRoomStatus(context.Background(),
			domain.RoomKey{RoomTypeID: "rt-1", Number: "101"},
			&RoomStatusPatch{IsBooked: true, MaintenanceStatus: "Cleaning"})
		require.NoError(t, err)
	})

	t.Run("room numbers with slashes stay a single path segment", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/room-types/rt-1/room-status/A%2F1", r.URL.EscapedPath())
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"_id": "rt-1"})
		})

		_, err := client.UpdateRoomStatus(context.Background(),
			domain.RoomKey{RoomTypeID: "rt-1", Number: "A/1"},
			&RoomStatusPatch{})
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.UpdateRoomStatus(context.Background(),
			domain.RoomKey{RoomTypeID: "rt-1", Number: "999"},
			&RoomStatusPatch{})

		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}
