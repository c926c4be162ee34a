package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// TestimonialCreateRequest payload.
type TestimonialCreateRequest struct {
	AuthorName  string  `json:"author_name"`
	AuthorTitle string  `json:"author_title"`
	Quote       string  `json:"quote"`
	Rating      int     `json:"rating"`
	ProjectID   *string `json:"project_id"`
}

// TestimonialResponse is the wire shape of a testimonial.
type TestimonialResponse struct {
	ID          string    `json:"id"`
	AuthorName  string    `json:"author_name"`
	AuthorTitle string    `json:"author_title"`
	Quote       string    `json:"quote"`
	Rating      int       `json:"rating"`
	ProjectID   *string   `json:"project_id"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromTestimonial maps the domain model.
func FromTestimonial(t *domain.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:          t.ID,
		AuthorName:  t.AuthorName,
		AuthorTitle: t.AuthorTitle,
		Quote:       t.Quote,
		Rating:      t.Rating,
		ProjectID:   t.ProjectID,
		IsApproved:  t.IsApproved,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// TestimonialCreateSchema validates submissions. Ratings are 1..5 inclusive.
var TestimonialCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "author_name", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 120},
		{Name: "author_title", Kind: validation.KindString, MaxLen: 120, Default: ""},
		{Name: "quote", Kind: validation.KindString, Required: true, MinLen: 10, MaxLen: 1000},
		{Name: "rating", Kind: validation.KindInt, Required: true, Min: validation.Bound(1), Max: validation.Bound(5)},
		{Name: "project_id", Kind: validation.KindString},
	},
}
