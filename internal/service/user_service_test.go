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

type fakeUserRepo struct {
	items map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]*domain.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	u.ID = uuid.NewString()
	clone := *u
	r.items[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := r.items[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	clone := *u
	r.items[u.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) List(_ context.Context, _ repository.UserFilter) ([]domain.User, int, error) {
	out := []domain.User{}
	for _, u := range r.items {
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (r *fakeUserRepo) seed(role domain.Role) *domain.User {
	u := &domain.User{
		ID:     uuid.NewString(),
		Name:   "Seeded",
		Email:  uuid.NewString() + "@example.com",
		Role:   role,
		Active: true,
	}
	r.items[u.ID] = u
	return u
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "FORBIDDEN", domainErr.Code)
}

func TestUserCreateRejectsEqualOrHigherRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, 4)

	_, err := svc.Create(context.Background(), domain.RoleAdmin, UserCreateInput{
		Name: "New Admin", Email: "new@example.com", Password: "password123",
		Role: domain.RoleSuperAdmin,
	})
	assertForbidden(t, err)

	_, err = svc.Create(context.Background(), domain.RoleAdmin, UserCreateInput{
		Name: "Peer Admin", Email: "peer@example.com", Password: "password123",
		Role: domain.RoleAdmin,
	})
	assertForbidden(t, err)

	created, err := svc.Create(context.Background(), domain.RoleAdmin, UserCreateInput{
		Name: "New Editor", Email: "editor@example.com", Password: "password123",
		Role: domain.RoleEditor,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, created.Role)
	assert.True(t, created.Active)
	assert.NotEqual(t, "password123", created.PasswordHash)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	existing := repo.seed(domain.RoleUser)
	svc := NewUserService(repo, 4)

	_, err := svc.Create(context.Background(), domain.RoleSuperAdmin, UserCreateInput{
		Name: "Dup", Email: existing.Email, Password: "password123",
		Role: domain.RoleUser,
	})
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestUpdateRoleEnforcesLadderBothWays(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, 4)

	// An admin cannot hand out super_admin, whatever the payload says.
	target := repo.seed(domain.RoleUser)
	_, err := svc.UpdateRole(context.Background(), domain.RoleAdmin, target.ID, domain.RoleSuperAdmin)
	assertForbidden(t, err)

	// Nor touch an account already above them.
	super := repo.seed(domain.RoleSuperAdmin)
	_, err = svc.UpdateRole(context.Background(), domain.RoleAdmin, super.ID, domain.RoleUser)
	assertForbidden(t, err)

	updated, err := svc.UpdateRole(context.Background(), domain.RoleAdmin, target.ID, domain.RoleEditor)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleEditor, updated.Role)
}

func TestUpdateRoleUnknownTarget(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), 4)

	_, err := svc.UpdateRole(context.Background(), domain.RoleSuperAdmin, uuid.NewString(), domain.RoleEditor)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestSetActiveRespectsLadder(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, 4)

	editor := repo.seed(domain.RoleEditor)
	updated, err := svc.SetActive(context.Background(), domain.RoleAdmin, editor.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Active)

	peer := repo.seed(domain.RoleAdmin)
	_, err = svc.SetActive(context.Background(), domain.RoleAdmin, peer.ID, false)
	assertForbidden(t, err)
}
