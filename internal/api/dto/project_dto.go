package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// ProjectCreateRequest payload.
type ProjectCreateRequest struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	AmenityIDs  []string `json:"amenity_ids"`
	Featured    *bool    `json:"featured"`
}

// ProjectUpdateRequest payload; only present fields are applied.
type ProjectUpdateRequest struct {
	Slug        *string  `json:"slug"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Type        *string  `json:"type"`
	Status      *string  `json:"status"`
	PriceMin    *float64 `json:"price_min"`
	PriceMax    *float64 `json:"price_max"`
	AmenityIDs  []string `json:"amenity_ids"`
	Featured    *bool    `json:"featured"`
}

// ProjectResponse is the wire shape of a project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	PriceMin    *float64  `json:"price_min"`
	PriceMax    *float64  `json:"price_max"`
	AmenityIDs  []string  `json:"amenity_ids"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromProject maps the domain model.
func FromProject(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Type:        string(p.Type),
		Status:      string(p.Status),
		PriceMin:    p.PriceMin,
		PriceMax:    p.PriceMax,
		AmenityIDs:  p.AmenityIDs,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

var projectTypes = []string{
	string(domain.ProjectTypeResidential),
	string(domain.ProjectTypeCommercial),
	string(domain.ProjectTypeMixedUse),
}

var projectStatuses = []string{
	string(domain.ProjectStatusUpcoming),
	string(domain.ProjectStatusOngoing),
	string(domain.ProjectStatusCompleted),
}

// ProjectCreateSchema validates creation bodies.
var ProjectCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "title", Kind: validation.KindString, Required: true, MinLen: 3, MaxLen: 200},
		{Name: "slug", Kind: validation.KindString, Format: validation.FormatSlug, MaxLen: 200},
		{Name: "description", Kind: validation.KindString, Required: true, MinLen: 10, MaxLen: 10000},
		{Name: "location", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 200},
		{Name: "type", Kind: validation.KindString, Enum: projectTypes, Default: string(domain.ProjectTypeResidential)},
		{Name: "status", Kind: validation.KindString, Enum: projectStatuses, Default: string(domain.ProjectStatusUpcoming)},
		{Name: "price_min", Kind: validation.KindFloat, Min: validation.Bound(0)},
		{Name: "price_max", Kind: validation.KindFloat, Min: validation.Bound(0)},
		{Name: "amenity_ids", Kind: validation.KindStringSlice, MaxLen: 50},
		{Name: "featured", Kind: validation.KindBool, Default: false},
	},
}

// ProjectUpdateSchema validates update bodies; an empty patch is rejected.
var ProjectUpdateSchema = validation.Schema{
	RequireSome: true,
	Fields: []validation.Field{
		{Name: "title", Kind: validation.KindString, MinLen: 3, MaxLen: 200},
		{Name: "slug", Kind: validation.KindString, Format: validation.FormatSlug, MaxLen: 200},
		{Name: "description", Kind: validation.KindString, MinLen: 10, MaxLen: 10000},
		{Name: "location", Kind: validation.KindString, MinLen: 2, MaxLen: 200},
		{Name: "type", Kind: validation.KindString, Enum: projectTypes},
		{Name: "status", Kind: validation.KindString, Enum: projectStatuses},
		{Name: "price_min", Kind: validation.KindFloat, Min: validation.Bound(0)},
		{Name: "price_max", Kind: validation.KindFloat, Min: validation.Bound(0)},
		{Name: "amenity_ids", Kind: validation.KindStringSlice, MaxLen: 50},
		{Name: "featured", Kind: validation.KindBool},
	},
}
