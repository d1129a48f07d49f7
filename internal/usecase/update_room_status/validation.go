package update_room_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/HLB-AdminService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Номер комнаты — непрозрачная строка: проверяется только непустота
// после обрезки пробелов и разумная длина.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Key.RoomTypeID) == "" {
		return fmt.Errorf("%w: roomTypeId is required", ErrInvalidInput)
	}

	number := strings.TrimSpace(req.Key.Number)
	if number == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidInput)
	}
	if len(number) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: room number is too long", ErrInvalidInput)
	}

	if !req.MaintenanceStatus.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.MaintenanceStatus)
	}

	return nil
}
