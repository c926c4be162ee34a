package domain

import "time"

// ProjectStatus enumerates lifecycle states for developments.
type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusOngoing   ProjectStatus = "ongoing"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// ProjectType enumerates development categories.
type ProjectType string

const (
	ProjectTypeResidential ProjectType = "residential"
	ProjectTypeCommercial  ProjectType = "commercial"
	ProjectTypeMixedUse    ProjectType = "mixed_use"
)

// Project is the aggregate for a real-estate development listing.
type Project struct {
	ID          string
	Slug        string
	Title       string
	Description string
	Location    string
	Type        ProjectType
	Status      ProjectStatus
	PriceMin    *float64
	PriceMax    *float64
	AmenityIDs  []string
	Featured    bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
