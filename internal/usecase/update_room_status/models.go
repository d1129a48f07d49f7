package update_room_status

import (
	"github.com/m04kA/HLB-AdminService/internal/domain"
	"github.com/m04kA/HLB-AdminService/internal/integrations/roomstore"
)

// Request модель запроса обновления статуса комнаты
type Request struct {
	Key               domain.RoomKey
	IsBooked          bool
	BookedFrom        *string // ISO-метки передаются в хранилище как есть
	BookedTo          *string
	BookedToTime      *string
	MaintenanceStatus domain.MaintenanceStatus
}

// Response модель ответа: обновленный ключ и свежий полный список типов.
// Список перечитывается целиком после записи — локальных оптимистичных
// правок нет, состояние консистентно только после полного круга.
type Response struct {
	Updated   domain.RoomKey
	RoomTypes []domain.RoomType
}

// toPatch конвертирует запрос в патч клиента хранилища
func (r *Request) toPatch() *roomstore.RoomStatusPatch {
	return &roomstore.RoomStatusPatch{
		IsBooked:          r.IsBooked,
		BookedFrom:        r.BookedFrom,
		BookedTo:          r.BookedTo,
		BookedToTime:      r.BookedToTime,
		MaintenanceStatus: string(r.MaintenanceStatus),
	}
}
