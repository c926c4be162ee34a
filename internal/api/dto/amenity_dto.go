package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// AmenityRequest payload for create and update.
type AmenityRequest struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// AmenityResponse is the wire shape of an amenity.
type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromAmenity maps the domain model.
func FromAmenity(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		Icon:      a.Icon,
		Category:  a.Category,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AmenityCreateSchema validates creation bodies.
var AmenityCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 100},
		{Name: "icon", Kind: validation.KindString, MaxLen: 100, Default: ""},
		{Name: "category", Kind: validation.KindString, MaxLen: 100, Default: ""},
	},
}

// AmenityUpdateSchema validates update bodies; an empty patch is rejected.
var AmenityUpdateSchema = validation.Schema{
	RequireSome: true,
	Fields: []validation.Field{
		{Name: "name", Kind: validation.KindString, MinLen: 2, MaxLen: 100},
		{Name: "icon", Kind: validation.KindString, MaxLen: 100},
		{Name: "category", Kind: validation.KindString, MaxLen: 100},
	},
}
