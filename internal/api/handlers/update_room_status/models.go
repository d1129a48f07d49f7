package update_room_status

import (
	"github.com/m04kA/HLB-AdminService/internal/domain"
	roomsmodels "github.com/m04kA/HLB-AdminService/internal/service/rooms/models"
	updateRoomStatus "github.com/m04kA/HLB-AdminService/internal/usecase/update_room_status"
)

// UpdateRoomStatusRequest HTTP request model
type UpdateRoomStatusRequest struct {
	IsBooked          bool    `json:"isBooked"`
	BookedFrom        *string `json:"bookedFrom,omitempty"`
	BookedTo          *string `json:"bookedTo,omitempty"`
	BookedToTime      *string `json:"bookedToTime,omitempty"`
	MaintenanceStatus string  `json:"maintenanceStatus"`
}

// UpdatedRoomResponse обновленный ключ комнаты
type UpdatedRoomResponse struct {
	RoomTypeID string `json:"roomTypeId"`
	Number     string `json:"number"`
}

// UpdateRoomStatusResponse HTTP response model: ключ обновленной комнаты
// и свежий полный список типов комнат
type UpdateRoomStatusResponse struct {
	Updated   UpdatedRoomResponse            `json:"updated"`
	RoomTypes []roomsmodels.RoomTypeResponse `json:"roomTypes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateRoomStatusRequest) ToUseCaseRequest(roomTypeID, number string) *updateRoomStatus.Request {
	return &updateRoomStatus.Request{
		Key: domain.RoomKey{
			RoomTypeID: roomTypeID,
			Number:     number,
		},
		IsBooked:          r.IsBooked,
		BookedFrom:        r.BookedFrom,
		BookedTo:          r.BookedTo,
		BookedToTime:      r.BookedToTime,
		MaintenanceStatus: domain.MaintenanceStatus(r.MaintenanceStatus),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateRoomStatus.Response) *UpdateRoomStatusResponse {
	return &UpdateRoomStatusResponse{
		Updated: UpdatedRoomResponse{
			RoomTypeID: resp.Updated.RoomTypeID,
			Number:     resp.Updated.Number,
		},
		RoomTypes: roomsmodels.FromDomainRoomTypeList(resp.RoomTypes).RoomTypes,
	}
}
