package get_room_overview

import (
	getRoomOverview "github.com/m04kA/HLB-AdminService/internal/usecase/get_room_overview"
)

// RoomResponse HTTP модель комнаты в сводке
type RoomResponse struct {
	Number            string  `json:"number"`
	IsBooked          bool    `json:"isBooked"`
	BookedFrom        *string `json:"bookedFrom,omitempty"`
	BookedTo          *string `json:"bookedTo,omitempty"`
	BookedToTime      *string `json:"bookedToTime,omitempty"`
	MaintenanceStatus string  `json:"maintenanceStatus,omitempty"`
}

// CountsResponse HTTP модель счётчиков типа комнат
type CountsResponse struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Booked      int `json:"booked"`
	Maintenance int `json:"maintenance"`
}

// RoomTypeOverviewResponse HTTP модель сводки одного типа комнат
type RoomTypeOverviewResponse struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	BasePrice     float64        `json:"basePrice"`
	SeasonalPrice *float64       `json:"seasonalPrice,omitempty"`
	Counts        CountsResponse `json:"counts"`
	Rooms         []RoomResponse `json:"rooms"`
}

// OverviewResponse HTTP модель полной сводки
type OverviewResponse struct {
	Date      string                     `json:"date"`
	RoomTypes []RoomTypeOverviewResponse `json:"roomTypes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomOverview.Response) *OverviewResponse {
	roomTypes := make([]RoomTypeOverviewResponse, len(resp.RoomTypes))
	for i, rt := range resp.RoomTypes {
		rooms := make([]RoomResponse, len(rt.Rooms))
		for j, room := range rt.Rooms {
			rooms[j] = RoomResponse{
				Number:            room.Number,
				IsBooked:          room.IsBooked,
				BookedFrom:        room.BookedFrom,
				BookedTo:          room.BookedTo,
				BookedToTime:      room.BookedToTime,
				MaintenanceStatus: string(room.MaintenanceStatus),
			}
		}
		roomTypes[i] = RoomTypeOverviewResponse{
			ID:            rt.ID,
			Name:          rt.Name,
			BasePrice:     rt.BasePrice,
			SeasonalPrice: rt.SeasonalPrice,
			Counts: CountsResponse{
				Total:       rt.Counts.Total,
				Available:   rt.Counts.Available,
				Booked:      rt.Counts.Booked,
				Maintenance: rt.Counts.Maintenance,
			},
			Rooms: rooms,
		}
	}
	return &OverviewResponse{
		Date:      resp.Date,
		RoomTypes: roomTypes,
	}
}
