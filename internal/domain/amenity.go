package domain

import "time"

// Amenity is a reusable project feature (pool, gym, parking).
type Amenity struct {
	ID        string
	Name      string
	Icon      string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
