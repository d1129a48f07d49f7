package domain

// AvailabilityCounts holds the derived per-type room tallies.
//
// Booked and Maintenance are counted independently because the store keeps
// isBooked and maintenanceStatus as independent fields: a room flagged with
// both is subtracted twice and Available goes negative. Callers must not
// assume Available >= 0.
type AvailabilityCounts struct {
	Total       int
	Available   int
	Booked      int
	Maintenance int
}

// IsOverSubtracted returns true if at least one room was counted both as
// booked and as under maintenance
func (c AvailabilityCounts) IsOverSubtracted() bool {
	return c.Available+c.Booked+c.Maintenance > c.Total
}

// OccupancyRate returns the booked share as a percentage (0-100)
func (c AvailabilityCounts) OccupancyRate() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Booked) / float64(c.Total) * 100
}

// Counts derives the aggregate availability tallies for the room type.
// Pure: it never mutates the receiver.
func (rt *RoomType) Counts() AvailabilityCounts {
	counts := AvailabilityCounts{Total: len(rt.Rooms)}

	for i := range rt.Rooms {
		if rt.Rooms[i].IsBooked {
			counts.Booked++
		}
		if rt.Rooms[i].IsUnderMaintenance() {
			counts.Maintenance++
		}
	}

	counts.Available = counts.Total - counts.Booked - counts.Maintenance
	return counts
}
