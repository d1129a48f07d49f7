package domain

import "time"

// Category is a booking category with its own independent blocked-date set
type Category string

const (
	CategoryRoom Category = "Room"
	CategoryLawn Category = "Lawn"
)

// IsValid returns true if the category is one of the known values
func (c Category) IsValid() bool {
	return c == CategoryRoom || c == CategoryLawn
}

// BlockedDate represents a calendar date on which an entire booking category
// is closed to new reservations, independent of individual room status.
// Past blocked dates are never expired automatically.
type BlockedDate struct {
	ID       string
	Category Category
	Date     time.Time
}

// DateOnly returns the calendar date in YYYY-MM-DD form
func (b *BlockedDate) DateOnly() string {
	return b.Date.Format(DateFormat)
}
