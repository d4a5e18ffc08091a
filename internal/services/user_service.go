package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// UserService is the admin-only account management surface.
type UserService interface {
	ListUsers(ctx context.Context, actor authz.Actor, page models.Page) (models.PageResult[models.User], error)
	GetUser(ctx context.Context, actor authz.Actor, id string) (*models.User, error)
	UpdateUserRole(ctx context.Context, actor authz.Actor, id, role string) (*models.User, error)
	SetUserActive(ctx context.Context, actor authz.Actor, id string, active bool) (*models.User, error)
	DeleteUser(ctx context.Context, actor authz.Actor, id string) error
}

type userService struct {
	repo repositories.UserRepository
}

func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context, actor authz.Actor, page models.Page) (models.PageResult[models.User], error) {
	if err := authz.CanUser(actor, authz.UserList, ""); err != nil {
		return models.PageResult[models.User]{}, err
	}
	page = page.Normalize()
	users, total, err := s.repo.List(ctx, page)
	if err != nil {
		return models.PageResult[models.User]{}, err
	}
	return models.NewPageResult(users, total, page), nil
}

func (s *userService) GetUser(ctx context.Context, actor authz.Actor, id string) (*models.User, error) {
	if err := authz.CanUser(actor, authz.UserRead, id); err != nil {
		return nil, err
	}
	if err := checkUserID(id); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateUserRole(ctx context.Context, actor authz.Actor, id, role string) (*models.User, error) {
	if err := authz.CanUser(actor, authz.UserUpdateRole, id); err != nil {
		return nil, err
	}
	newRole := models.Role(strings.TrimSpace(role))
	if !newRole.Valid() {
		return nil, apperrors.Validation("Invalid role", apperrors.FieldError{Field: "role", Message: "Role must be member or admin"})
	}
	if err := checkUserID(id); err != nil {
		return nil, err
	}
	return s.repo.UpdateRole(ctx, id, newRole)
}

func (s *userService) SetUserActive(ctx context.Context, actor authz.Actor, id string, active bool) (*models.User, error) {
	op := authz.UserDeactivate
	if active {
		op = authz.UserActivate
	}
	if err := authz.CanUser(actor, op, id); err != nil {
		return nil, err
	}
	if err := checkUserID(id); err != nil {
		return nil, err
	}
	return s.repo.SetActive(ctx, id, active)
}

func (s *userService) DeleteUser(ctx context.Context, actor authz.Actor, id string) error {
	if err := authz.CanUser(actor, authz.UserDelete, id); err != nil {
		return err
	}
	if err := checkUserID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func checkUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NotFound("User not found")
	}
	return nil
}
