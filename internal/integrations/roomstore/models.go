package roomstore

import (
	"io"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// roomTypePayload модель типа комнаты из хранилища
type roomTypePayload struct {
	ID            string        `json:"_id"`
	Name          string        `json:"name"`
	BasePrice     float64       `json:"basePrice"`
	SeasonalPrice *float64      `json:"seasonalPrice,omitempty"`
	Amenities     []string      `json:"amenities"`
	Photos        []string      `json:"photos"`
	Rooms         []roomPayload `json:"rooms"`
}

// roomPayload модель комнаты из хранилища
type roomPayload struct {
	Number            string  `json:"number"`
	IsBooked          bool    `json:"isBooked"`
	BookedFrom        *string `json:"bookedFrom,omitempty"`
	BookedTo          *string `json:"bookedTo,omitempty"`
	BookedToTime      *string `json:"bookedToTime,omitempty"`
	MaintenanceStatus string  `json:"maintenanceStatus,omitempty"`
}

// RoomStatusPatch частичное обновление статуса комнаты.
// Поля отправляются как есть — хранилище принимает полный набор.
type RoomStatusPatch struct {
	IsBooked          bool    `json:"isBooked"`
	BookedFrom        *string `json:"bookedFrom"`
	BookedTo          *string `json:"bookedTo"`
	BookedToTime      *string `json:"bookedToTime"`
	MaintenanceStatus string  `json:"maintenanceStatus"`
}

// Photo файл фотографии для multipart-загрузки
type Photo struct {
	Filename string
	Reader   io.Reader
}

// CreateRoomTypeRequest данные формы создания типа комнаты
type CreateRoomTypeRequest struct {
	Name          string
	BasePrice     float64
	SeasonalPrice *float64
	Amenities     []string
	RoomNumbers   []string
	Photos        []Photo
}

// addRoomPayload тело запроса добавления комнаты
type addRoomPayload struct {
	Number string `json:"number"`
}

func (p *roomTypePayload) toDomain() domain.RoomType {
	rt := domain.RoomType{
		ID:            p.ID,
		Name:          p.Name,
		BasePrice:     p.BasePrice,
		SeasonalPrice: p.SeasonalPrice,
		Amenities:     p.Amenities,
		Photos:        p.Photos,
		Rooms:         make([]domain.Room, len(p.Rooms)),
	}
	for i, room := range p.Rooms {
		rt.Rooms[i] = domain.Room{
			Number:            room.Number,
			IsBooked:          room.IsBooked,
			BookedFrom:        room.BookedFrom,
			BookedTo:          room.BookedTo,
			BookedToTime:      room.BookedToTime,
			MaintenanceStatus: domain.MaintenanceStatus(room.MaintenanceStatus),
		}
	}
	return rt
}

func toDomainList(payloads []roomTypePayload) []domain.RoomType {
	result := make([]domain.RoomType, len(payloads))
	for i := range payloads {
		result[i] = payloads[i].toDomain()
	}
	return result
}
