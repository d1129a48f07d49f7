package add_room

import (
	"github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
)

// AddRoomRequest HTTP request model
type AddRoomRequest struct {
	Number string `json:"number"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddRoomRequest) ToServiceRequest(roomTypeID string) *models.AddRoomRequest {
	return &models.AddRoomRequest{
		RoomTypeID: roomTypeID,
		Number:     r.Number,
	}
}
