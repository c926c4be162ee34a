package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/pkg/util"
)

// ProjectService coordinates development-listing workflows.
type ProjectService struct {
	projects  repository.ProjectRepository
	amenities repository.AmenityRepository
}

// NewProjectService constructs the service.
func NewProjectService(projects repository.ProjectRepository, amenities repository.AmenityRepository) *ProjectService {
	return &ProjectService{projects: projects, amenities: amenities}
}

// ProjectCreateInput describes project creation payload.
type ProjectCreateInput struct {
	Slug        string
	Title       string
	Description string
	Location    string
	Type        domain.ProjectType
	Status      domain.ProjectStatus
	PriceMin    *float64
	PriceMax    *float64
	AmenityIDs  []string
	Featured    bool
}

// ProjectUpdateInput carries only the fields present in the request.
type ProjectUpdateInput struct {
	Slug        *string
	Title       *string
	Description *string
	Location    *string
	Type        *domain.ProjectType
	Status      *domain.ProjectStatus
	PriceMin    *float64
	PriceMax    *float64
	AmenityIDs  []string
	Featured    *bool
}

// Create stores a new project. Slugs default to a slugified title and must
// be unique.
func (s *ProjectService) Create(ctx context.Context, creatorID string, input ProjectCreateInput) (*domain.Project, error) {
	slug := input.Slug
	if slug == "" {
		slug = util.Slugify(input.Title)
	}
	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}
	if input.PriceMin != nil && input.PriceMax != nil && *input.PriceMin > *input.PriceMax {
		return nil, util.NewValidationError("price_min must not exceed price_max")
	}
	if err := s.ensureAmenitiesExist(ctx, input.AmenityIDs); err != nil {
		return nil, err
	}

	project := &domain.Project{
		Slug:        slug,
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Type:        input.Type,
		Status:      input.Status,
		PriceMin:    input.PriceMin,
		PriceMax:    input.PriceMax,
		AmenityIDs:  input.AmenityIDs,
		Featured:    input.Featured,
		CreatedBy:   creatorID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update applies the present fields to an existing project.
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectUpdateInput) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("project")
		}
		return nil, err
	}

	if input.Slug != nil && *input.Slug != project.Slug {
		if err := s.ensureSlugFree(ctx, *input.Slug, project.ID); err != nil {
			return nil, err
		}
		project.Slug = *input.Slug
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Location != nil {
		project.Location = *input.Location
	}
	if input.Type != nil {
		project.Type = *input.Type
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.PriceMin != nil {
		project.PriceMin = input.PriceMin
	}
	if input.PriceMax != nil {
		project.PriceMax = input.PriceMax
	}
	if project.PriceMin != nil && project.PriceMax != nil && *project.PriceMin > *project.PriceMax {
		return nil, util.NewValidationError("price_min must not exceed price_max")
	}
	if input.AmenityIDs != nil {
		if err := s.ensureAmenitiesExist(ctx, input.AmenityIDs); err != nil {
			return nil, err
		}
		project.AmenityIDs = input.AmenityIDs
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return util.NewNotFound("project")
		}
		return err
	}
	return nil
}

// GetBySlug resolves a project for public detail pages.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := s.projects.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("project")
		}
		return nil, err
	}
	return project, nil
}

// Get resolves a project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("project")
		}
		return nil, err
	}
	return project, nil
}

// List returns projects matching the filter plus the total count.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter) ([]domain.Project, int, error) {
	return s.projects.List(ctx, filter)
}

func (s *ProjectService) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	existing, err := s.projects.GetBySlug(ctx, slug)
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

func (s *ProjectService) ensureAmenitiesExist(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := s.amenities.GetByID(ctx, id); err != nil {
			if err == pgx.ErrNoRows {
				return util.NewValidationError("amenity_ids references an unknown amenity")
			}
			return err
		}
	}
	return nil
}
