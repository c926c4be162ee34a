package dto

import (
	"time"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/validation"
)

// BlogCreateRequest payload.
type BlogCreateRequest struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Body     string   `json:"body"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Status   string   `json:"status"`
}

// BlogUpdateRequest payload; only present fields are applied.
type BlogUpdateRequest struct {
	Slug     *string  `json:"slug"`
	Title    *string  `json:"title"`
	Excerpt  *string  `json:"excerpt"`
	Body     *string  `json:"body"`
	Category *string  `json:"category"`
	Tags     []string `json:"tags"`
	Status   *string  `json:"status"`
}

// BlogResponse is the wire shape of a post.
type BlogResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Body        string     `json:"body,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	Status      string     `json:"status"`
	AuthorID    string     `json:"author_id"`
	PublishedAt *time.Time `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FromBlogPost maps the domain model. Summaries omit the body.
func FromBlogPost(p *domain.BlogPost, includeBody bool) BlogResponse {
	resp := BlogResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Category:    p.Category,
		Tags:        p.Tags,
		Status:      string(p.Status),
		AuthorID:    p.AuthorID,
		PublishedAt: p.PublishedAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if includeBody {
		resp.Body = p.Body
	}
	return resp
}

var blogStatuses = []string{
	string(domain.BlogStatusDraft),
	string(domain.BlogStatusPublished),
}

// BlogCreateSchema validates creation bodies.
var BlogCreateSchema = validation.Schema{
	Fields: []validation.Field{
		{Name: "title", Kind: validation.KindString, Required: true, MinLen: 3, MaxLen: 200},
		{Name: "slug", Kind: validation.KindString, Format: validation.FormatSlug, MaxLen: 200},
		{Name: "excerpt", Kind: validation.KindString, MaxLen: 500, Default: ""},
		{Name: "body", Kind: validation.KindString, Required: true, MinLen: 10},
		{Name: "category", Kind: validation.KindString, Required: true, MinLen: 2, MaxLen: 100},
		{Name: "tags", Kind: validation.KindStringSlice, MaxLen: 20},
		{Name: "status", Kind: validation.KindString, Enum: blogStatuses, Default: string(domain.BlogStatusDraft)},
	},
}

// BlogUpdateSchema validates update bodies; an empty patch is rejected.
var BlogUpdateSchema = validation.Schema{
	RequireSome: true,
	Fields: []validation.Field{
		{Name: "title", Kind: validation.KindString, MinLen: 3, MaxLen: 200},
		{Name: "slug", Kind: validation.KindString, Format: validation.FormatSlug, MaxLen: 200},
		{Name: "excerpt", Kind: validation.KindString, MaxLen: 500},
		{Name: "body", Kind: validation.KindString, MinLen: 10},
		{Name: "category", Kind: validation.KindString, MinLen: 2, MaxLen: 100},
		{Name: "tags", Kind: validation.KindStringSlice, MaxLen: 20},
		{Name: "status", Kind: validation.KindString, Enum: blogStatuses},
	},
}
