package domain

import "time"

// Testimonial is a customer quote shown on the marketing site once approved.
type Testimonial struct {
	ID          string
	AuthorName  string
	AuthorTitle string
	Quote       string
	Rating      int
	ProjectID   *string
	IsApproved  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
