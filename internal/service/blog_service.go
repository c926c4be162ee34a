package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/pkg/util"
)

// BlogService coordinates blog post workflows.
type BlogService struct {
	posts repository.BlogRepository
}

// NewBlogService constructs the service.
func NewBlogService(posts repository.BlogRepository) *BlogService {
	return &BlogService{posts: posts}
}

// BlogCreateInput describes post creation payload.
type BlogCreateInput struct {
	Slug     string
	Title    string
	Excerpt  string
	Body     string
	Category string
	Tags     []string
	Status   domain.BlogStatus
}

// BlogUpdateInput carries only the fields present in the request.
type BlogUpdateInput struct {
	Slug     *string
	Title    *string
	Excerpt  *string
	Body     *string
	Category *string
	Tags     []string
	Status   *domain.BlogStatus
}

// Create stores a new post. Publishing stamps published_at.
func (s *BlogService) Create(ctx context.Context, authorID string, input BlogCreateInput) (*domain.BlogPost, error) {
	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Title)
	}
	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	post := &domain.BlogPost{
		Slug:     slug,
		Title:    input.Title,
		Excerpt:  input.Excerpt,
		Body:     input.Body,
		Category: input.Category,
		Tags:     input.Tags,
		Status:   input.Status,
		AuthorID: authorID,
	}
	if post.Status == domain.BlogStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Update applies the present fields to an existing post. Transitioning to
// published stamps published_at once; re-publishing keeps the original date.
func (s *BlogService) Update(ctx context.Context, id string, input BlogUpdateInput) (*domain.BlogPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("blog post")
		}
		return nil, err
	}

	if input.Slug != nil && *input.Slug != post.Slug {
		if err := s.ensureSlugFree(ctx, *input.Slug, post.ID); err != nil {
			return nil, err
		}
		post.Slug = *input.Slug
	}
	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Body != nil {
		post.Body = *input.Body
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.Status != nil {
		if *input.Status == domain.BlogStatusPublished && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *input.Status
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return util.NewNotFound("blog post")
		}
		return err
	}
	return nil
}

// GetBySlug resolves a post for public detail pages. Drafts are hidden from
// anonymous callers.
func (s *BlogService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*domain.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("blog post")
		}
		return nil, err
	}
	if post.Status != domain.BlogStatusPublished && !includeDrafts {
		return nil, util.NewNotFound("blog post")
	}
	return post, nil
}

// List returns posts matching the filter plus total count.
func (s *BlogService) List(ctx context.Context, filter repository.BlogFilter) ([]domain.BlogPost, int, error) {
	return s.posts.List(ctx, filter)
}

func (s *BlogService) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	existing, err := s.posts.GetBySlug(ctx, slug)
	if err == pgx.ErrNoRows {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return util.NewConflict("slug already in use")
	}
	return nil
}
