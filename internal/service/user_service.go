package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/estate-cms/internal/auth"
	"github.com/spec-kit/estate-cms/internal/domain"
	"github.com/spec-kit/estate-cms/internal/repository"
	apperrors "github.com/spec-kit/estate-cms/pkg/util"
)

// UserService manages admin-area accounts. Role assignment follows a fixed
// ladder: a caller may only create or modify accounts holding a strictly
// lower role than their own.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

// UserCreateInput describes an account created by an admin.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// Create adds an account with an explicit role, subject to the ladder.
func (s *UserService) Create(ctx context.Context, actorRole domain.Role, input UserCreateInput) (*domain.User, error) {
	if !input.Role.Valid() {
		return nil, apperrors.NewValidationError("role must be one of: user, editor, admin, super_admin")
	}
	if !actorRole.CanAssign(input.Role) {
		return nil, apperrors.NewForbidden("cannot create an account with an equal or higher role")
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered")
	} else if err != pgx.ErrNoRows {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole changes the target account's role. Both the target's current
// role and the requested role must sit strictly below the caller's.
func (s *UserService) UpdateRole(ctx context.Context, actorRole domain.Role, targetID string, newRole domain.Role) (*domain.User, error) {
	if !newRole.Valid() {
		return nil, apperrors.NewValidationError("role must be one of: user, editor, admin, super_admin")
	}
	if !actorRole.CanAssign(newRole) {
		return nil, apperrors.NewForbidden("cannot assign an equal or higher role")
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	if !actorRole.CanAssign(user.Role) {
		return nil, apperrors.NewForbidden("cannot modify an account with an equal or higher role")
	}

	user.Role = newRole
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive enables or disables an account, subject to the ladder.
func (s *UserService) SetActive(ctx context.Context, actorRole domain.Role, targetID string, active bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	if !actorRole.CanAssign(user.Role) {
		return nil, apperrors.NewForbidden("cannot modify an account with an equal or higher role")
	}

	user.Active = active
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns accounts matching the filter.
func (s *UserService) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, int, error) {
	return s.users.List(ctx, filter)
}

// Get returns one account.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user")
		}
		return nil, err
	}
	return user, nil
}
