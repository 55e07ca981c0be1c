package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "usermgmt/internal/errors"
	"usermgmt/internal/model"
	"usermgmt/internal/repository"
)

// RoleService handles role lookups.
type RoleService interface {
	GetRoleByID(ctx context.Context, id int) (*model.Role, error)
}

type roleService struct {
	repo repository.RoleRepository
}

// NewRoleService creates a new role service.
func NewRoleService(repo repository.RoleRepository) RoleService {
	return &roleService{repo: repo}
}

// GetRoleByID returns the role or apperrors.ErrRoleNotFound when no row matches.
func (s *roleService) GetRoleByID(ctx context.Context, id int) (*model.Role, error) {
	role, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("find role %d: %w", id, err)
	}
	return role, nil
}
