package models

import (
	"io"

	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

// Request модели

// Photo файл фотографии из multipart-формы
type Photo struct {
	Filename string
	Reader   io.Reader
}

// CreateRoomTypeRequest запрос на создание типа комнаты
type CreateRoomTypeRequest struct {
	Name          string
	BasePrice     float64
	SeasonalPrice *float64
	Amenities     []string
	RoomNumbers   []string
	Photos        []Photo
}

// ToClientRequest конвертирует запрос в модель клиента хранилища
func (r *CreateRoomTypeRequest) ToClientRequest() *roomstore.CreateRoomTypeRequest {
	photos := make([]roomstore.Photo, len(r.Photos))
	for i, p := range r.Photos {
		photos[i] = roomstore.Photo{Filename: p.Filename, Reader: p.Reader}
	}
	return &roomstore.CreateRoomTypeRequest{
		Name:          r.Name,
		BasePrice:     r.BasePrice,
		SeasonalPrice: r.SeasonalPrice,
		Amenities:     r.Amenities,
		RoomNumbers:   r.RoomNumbers,
		Photos:        photos,
	}
}

// AddRoomRequest запрос на добавление комнаты в тип
type AddRoomRequest struct {
	RoomTypeID string
	Number     string
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	Number            string  `json:"number"`
	IsBooked          bool    `json:"isBooked"`
	BookedFrom        *string `json:"bookedFrom,omitempty"`
	BookedTo          *string `json:"bookedTo,omitempty"`
	BookedToTime      *string `json:"bookedToTime,omitempty"`
	MaintenanceStatus string  `json:"maintenanceStatus,omitempty"`
}

// CountsResponse производные счётчики типа комнат.
// Available может быть отрицательным: комната, одновременно помеченная
// забронированной и на обслуживании, вычитается дважды.
type CountsResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Booked      int `json:"booked"`
	Maintenance int `json:"maintenance"`
}

// RoomTypeResponse ответ с данными типа комнаты
type RoomTypeResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	BasePrice     float64        `json:"basePrice"`
	SeasonalPrice *float64       `json:"seasonalPrice,omitempty"`
	Amenities     []string       `json:"amenities"`
	Photos        []string       `json:"photos"`
	Rooms         []RoomResponse `json:"rooms"`
	Counts        CountsResponse `json:"counts"`
}

// RoomTypeListResponse ответ со списком типов комнат
type RoomTypeListResponse struct {
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// Методы конвертации

// FromDomainRoomType конвертирует domain модель в DTO
func FromDomainRoomType(rt *domain.RoomType) *RoomTypeResponse {
	if rt == nil {
		return nil
	}

	rooms := make([]RoomResponse, len(rt.Rooms))
	for i, room := range rt.Rooms {
		rooms[i] = RoomResponse{
			Number:            room.Number,
			IsBooked:          room.IsBooked,
			BookedFrom:        room.BookedFrom,
			BookedTo:          room.BookedTo,
			BookedToTime:      room.BookedToTime,
			MaintenanceStatus: string(room.MaintenanceStatus),
		}
	}

	counts := rt.Counts()

	return &RoomTypeResponse{
		ID:            rt.ID,
		Name:          rt.Name,
		BasePrice:     rt.BasePrice,
		SeasonalPrice: rt.SeasonalPrice,
		Amenities:     rt.Amenities,
		Photos:        rt.Photos,
		Rooms:         rooms,
		Counts: CountsResponse{
			Total:       counts.Total,
			Available:   counts.Available,
			Booked:      counts.Booked,
			Maintenance: counts.Maintenance,
		},
	}
}

// FromDomainRoomTypeList конвертирует список domain моделей в DTO
func FromDomainRoomTypeList(roomTypes []domain.RoomType) *RoomTypeListResponse {
	resp := &RoomTypeListResponse{
		RoomTypes: make([]RoomTypeResponse, len(roomTypes)),
	}
	for i := range roomTypes {
		resp.RoomTypes[i] = *FromDomainRoomType(&roomTypes[i])
	}
	return resp
}
