// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"usermgmt/internal/model"
	"usermgmt/internal/repository"
)

var (
	_ repository.RoleRepository  = (*RoleRepository)(nil)
	_ repository.UserRepository  = (*UserRepository)(nil)
	_ repository.ClaimRepository = (*ClaimRepository)(nil)
)

// RoleRepository is a mock implementation of repository.RoleRepository.
type RoleRepository struct {
	mock.Mock
}

func (m *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	args := m.Called(ctx, role)
	return args.Error(0)
}

func (m *RoleRepository) FindByID(ctx context.Context, id int) (*model.Role, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) ListWithRoleAndClaims(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) AssignClaims(ctx context.Context, user *model.User, claims []model.Claim) error {
	args := m.Called(ctx, user, claims)
	return args.Error(0)
}

// ClaimRepository is a mock implementation of repository.ClaimRepository.
type ClaimRepository struct {
	mock.Mock
}

func (m *ClaimRepository) Create(ctx context.Context, claim *model.Claim) error {
	args := m.Called(ctx, claim)
	return args.Error(0)
}

func (m *ClaimRepository) ListAll(ctx context.Context) ([]model.Claim, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Claim), args.Error(1)
}
