package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

func floatPtr(n float64) *float64 { return &n }

type fakeProjectRepo struct {
	items map[string]*domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: map[string]*domain.Project{}}
}

func (r *fakeProjectRepo) Create(_ context.Context, p *domain.Project) error {
	p.ID = uuid.NewString()
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.items[p.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *p
	r.items[p.ID] = &clone
	return nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProjectRepo) GetBySlug(_ context.Context, slug string) (*domain.Project, error) {
	for _, p := range r.items {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeProjectRepo) List(_ context.Context, _ repository.ProjectFilter) ([]domain.Project, int, error) {
	out := []domain.Project{}
	for _, p := range r.items {
		out = append(out, *p)
	}
	return out, len(out), nil
}

type fakeAmenityRepo struct {
	items map[string]*domain.Amenity
}

func newFakeAmenityRepo() *fakeAmenityRepo {
	return &fakeAmenityRepo{items: map[string]*domain.Amenity{}}
}

func (r *fakeAmenityRepo) Create(_ context.Context, a *domain.Amenity) error {
	a.ID = uuid.NewString()
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *fakeAmenityRepo) Update(_ context.Context, a *domain.Amenity) error {
	if _, ok := r.items[a.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *a
	r.items[a.ID] = &clone
	return nil
}

func (r *fakeAmenityRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *fakeAmenityRepo) GetByID(_ context.Context, id string) (*domain.Amenity, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAmenityRepo) GetByName(_ context.Context, name string) (*domain.Amenity, error) {
	for _, a := range r.items {
		if a.Name == name {
			clone := *a
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeAmenityRepo) List(_ context.Context) ([]domain.Amenity, error) {
	out := []domain.Amenity{}
	for _, a := range r.items {
		out = append(out, *a)
	}
	return out, nil
}

func TestProjectCreateDefaultsSlugFromTitle(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), newFakeAmenityRepo())

	project, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title:  "Marina Heights Phase 2",
		Type:   domain.ProjectTypeResidential,
		Status: domain.ProjectStatusUpcoming,
	})
	require.NoError(t, err)
	assert.Equal(t, "marina-heights-phase-2", project.Slug)
	assert.Equal(t, "user-1", project.CreatedBy)
}

func TestProjectCreateRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, newFakeAmenityRepo())

	_, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title: "Marina Heights", Type: domain.ProjectTypeResidential, Status: domain.ProjectStatusUpcoming,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title: "Marina Heights", Type: domain.ProjectTypeResidential, Status: domain.ProjectStatusUpcoming,
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestProjectCreateValidatesPriceRange(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), newFakeAmenityRepo())

	_, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title:    "Palm Grove",
		Type:     domain.ProjectTypeResidential,
		Status:   domain.ProjectStatusUpcoming,
		PriceMin: floatPtr(900000),
		PriceMax: floatPtr(500000),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "price_min must not exceed price_max")
}

func TestProjectCreateValidatesAmenityReferences(t *testing.T) {
	amenities := newFakeAmenityRepo()
	svc := NewProjectService(newFakeProjectRepo(), amenities)

	_, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title:      "Palm Grove",
		Type:       domain.ProjectTypeResidential,
		Status:     domain.ProjectStatusUpcoming,
		AmenityIDs: []string{uuid.NewString()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown amenity")

	pool := &domain.Amenity{Name: "Swimming Pool"}
	require.NoError(t, amenities.Create(context.Background(), pool))

	project, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title:      "Palm Grove",
		Type:       domain.ProjectTypeResidential,
		Status:     domain.ProjectStatusUpcoming,
		AmenityIDs: []string{pool.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{pool.ID}, project.AmenityIDs)
}

func TestProjectUpdatePatchesOnlyPresentFields(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo, newFakeAmenityRepo())

	created, err := svc.Create(context.Background(), "user-1", ProjectCreateInput{
		Title:    "Palm Grove",
		Location: "North Shore",
		Type:     domain.ProjectTypeResidential,
		Status:   domain.ProjectStatusUpcoming,
	})
	require.NoError(t, err)

	status := domain.ProjectStatusOngoing
	updated, err := svc.Update(context.Background(), created.ID, ProjectUpdateInput{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusOngoing, updated.Status)
	assert.Equal(t, "Palm Grove", updated.Title)
	assert.Equal(t, "North Shore", updated.Location)
}

func TestProjectUpdateUnknownID(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo(), newFakeAmenityRepo())

	title := "Renamed"
	_, err := svc.Update(context.Background(), uuid.NewString(), ProjectUpdateInput{Title: &title})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
