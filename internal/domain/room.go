package domain

import "strings"

// MaintenanceStatus represents a non-booking reason a room is out of service
type MaintenanceStatus string

const (
	MaintenanceNone     MaintenanceStatus = ""
	MaintenanceCleaning MaintenanceStatus = "Cleaning"
	MaintenanceRepair   MaintenanceStatus = "Repair"
	MaintenanceBlocked  MaintenanceStatus = "Blocked"
)

// IsActive returns true if the status takes the room out of service
func (m MaintenanceStatus) IsActive() bool {
	return m == MaintenanceCleaning || m == MaintenanceRepair || m == MaintenanceBlocked
}

// IsValid returns true if the status is one of the known values
func (m MaintenanceStatus) IsValid() bool {
	return m == MaintenanceNone || m.IsActive()
}

// Room represents a physical room inside a room type.
// BookedFrom/BookedTo/BookedToTime are kept as raw store strings: the store
// does not guarantee a parseable timestamp and the checkout comparison is
// textual on purpose (see ChecksOutOn).
type Room struct {
	Number            string
	IsBooked          bool
	BookedFrom        *string
	BookedTo          *string
	BookedToTime      *string
	MaintenanceStatus MaintenanceStatus
}

// IsUnderMaintenance returns true if the room has an active maintenance status
func (r *Room) IsUnderMaintenance() bool {
	return r.MaintenanceStatus.IsActive()
}

// IsAvailable returns true if the room is neither booked nor under maintenance
func (r *Room) IsAvailable() bool {
	return !r.IsBooked && !r.IsUnderMaintenance()
}

// ChecksOutOn reports whether the room's bookedTo value falls on the given
// calendar date (YYYY-MM-DD). The comparison is on the text before any "T"
// separator, not on a parsed timestamp: a missing or malformed bookedTo
// simply does not match.
func (r *Room) ChecksOutOn(date string) bool {
	if r.BookedTo == nil || date == "" {
		return false
	}
	datePart, _, _ := strings.Cut(*r.BookedTo, "T")
	return datePart == date
}

// MatchesSearch reports whether the room number contains the search term,
// case-insensitively. An empty term matches every room.
func (r *Room) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Number), strings.ToLower(term))
}

// RoomKey addresses a single room across the whole inventory.
// Structured on purpose: room numbers are opaque strings and may contain
// any delimiter, so rooms are never addressed by concatenated IDs.
type RoomKey struct {
	RoomTypeID string
	Number     string
}

// RoomType represents a category of rooms with shared pricing and amenities.
// The room list order is the store's returned order and is never re-sorted.
type RoomType struct {
	ID            string
	Name          string
	BasePrice     float64
	SeasonalPrice *float64
	Amenities     []string
	Photos        []string
	Rooms         []Room
}

// FindRoom returns the room with the given number, or nil.
// Numbers are compared case-sensitively as opaque strings.
func (rt *RoomType) FindRoom(number string) *Room {
	for i := range rt.Rooms {
		if rt.Rooms[i].Number == number {
			return &rt.Rooms[i]
		}
	}
	return nil
}
