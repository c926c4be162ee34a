package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	"github.com/spec-kit/estate-cms/pkg/util"
)

// AmenityService manages the shared amenity catalog.
type AmenityService struct {
	amenities repository.AmenityRepository
}

// NewAmenityService constructs the service.
func NewAmenityService(amenities repository.AmenityRepository) *AmenityService {
	return &AmenityService{amenities: amenities}
}

// AmenityInput describes create/update payloads.
type AmenityInput struct {
	Name     string
	Icon     string
	Category string
}

// Create adds an amenity. Names are unique across the catalog.
func (s *AmenityService) Create(ctx context.Context, input AmenityInput) (*domain.Amenity, error) {
	if _, err := s.amenities.GetByName(ctx, input.Name); err == nil {
		return nil, util.NewConflict("amenity name already exists")
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	amenity := &domain.Amenity{
		Name:     input.Name,
		Icon:     input.Icon,
		Category: input.Category,
	}
	if err := s.amenities.Create(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// Update modifies an amenity, keeping names unique.
func (s *AmenityService) Update(ctx context.Context, id string, input AmenityInput) (*domain.Amenity, error) {
	amenity, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, util.NewNotFound("amenity")
		}
		return nil, err
	}

	if input.Name != "" && input.Name != amenity.Name {
		if existing, err := s.amenities.GetByName(ctx, input.Name); err == nil && existing.ID != amenity.ID {
			return nil, util.NewConflict("amenity name already exists")
		} else if err != nil && err != pgx.ErrNoRows {
			return nil, err
		}
		amenity.Name = input.Name
	}
	if input.Icon != "" {
		amenity.Icon = input.Icon
	}
	if input.Category != "" {
		amenity.Category = input.Category
	}

	if err := s.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}

// Delete removes an amenity.
func (s *AmenityService) Delete(ctx context.Context, id string) error {
	if err := s.amenities.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return util.NewNotFound("amenity")
		}
		return err
	}
	return nil
}

// List returns the full catalog.
func (s *AmenityService) List(ctx context.Context) ([]domain.Amenity, error) {
	return s.amenities.List(ctx)
}
