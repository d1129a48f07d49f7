package get_room_overview

import "github.com/m04kA/HLB-AdminService/internal/domain"

// Request модель запроса сводки по комнатам
type Request struct {
	Search           string // подстрока номера комнаты, регистронезависимо
	CheckingOutToday bool   // только комнаты с выездом сегодня
}

// Response модель ответа со сводкой по всем типам комнат
type Response struct {
	Date      string             // календарная дата, на которую строилась сводка
	RoomTypes []RoomTypeOverview // в порядке, возвращенном хранилищем
}

// RoomTypeOverview сводка одного типа комнат
type RoomTypeOverview struct {
	ID            string
	Name          string
	BasePrice     float64
	SeasonalPrice *float64
	Counts        domain.AvailabilityCounts
	Rooms         []domain.Room // после фильтрации, в исходном порядке
}
