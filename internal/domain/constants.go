package domain

// Time format constants
const (
	DateFormat      = "2006-01-02"                // YYYY-MM-DD
	TimestampFormat = "2006-01-02T15:04:05Z07:00" // ISO 8601, what the stores send and accept
)

// Business validation constants
const (
	MaxRoomNumberLength   = 32
	MaxRoomTypeNameLength = 120
)

// ActiveMaintenanceStatuses lists the statuses that take a room out of
// service. Used when counting maintenance rooms per type.
var ActiveMaintenanceStatuses = []MaintenanceStatus{
	MaintenanceCleaning,
	MaintenanceRepair,
	MaintenanceBlocked,
}

// Categories lists the booking categories with independent blocked-date sets
var Categories = []Category{
	CategoryRoom,
	CategoryLawn,
}
