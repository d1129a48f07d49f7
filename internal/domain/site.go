package domain

import "time"

// GalleryImage represents one image in the public site gallery
type GalleryImage struct {
	ID        string
	Title     string
	URL       string
	CreatedAt time.Time
}

// ContactMessage represents a message submitted through the site contact form
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}
