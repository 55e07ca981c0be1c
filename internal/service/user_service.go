package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "usermgmt/internal/errors"
	"usermgmt/internal/model"
	"usermgmt/internal/repository"
)

// CreateUserInput carries the fields of a user creation request.
// A nil Password asks the service to generate one.
type CreateUserInput struct {
	Name     string
	Email    string
	Password *string
	RoleID   int
}

// UserService exposes domain operations.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	roles RoleService
	now   func() time.Time
}

// NewUserService builds a UserService on top of the user repository and role lookup.
func NewUserService(repo repository.UserRepository, roles RoleService) UserService {
	return &userService{repo: repo, roles: roles, now: time.Now}
}

// CreateUser validates the role, derives the stored password and inserts the user.
//
// A supplied password is stored as a bcrypt hash. When none is supplied a
// random DefaultPasswordLength password is generated and stored as is.
func (s *userService) CreateUser(ctx context.Context, in CreateUserInput) (*model.User, error) {
	if _, err := s.roles.GetRoleByID(ctx, in.RoleID); err != nil {
		return nil, err
	}

	var password string
	if in.Password != nil && *in.Password != "" {
		hashed, err := HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		password = hashed
	} else {
		// TODO: generated passwords are persisted unhashed while supplied ones
		// are hashed; decide with product whether to hash these too.
		password = GenerateRandomPassword(DefaultPasswordLength)
	}

	user := &model.User{
		Name:      in.Name,
		Email:     in.Email,
		Password:  password,
		RoleID:    uint(in.RoleID),
		CreatedAt: today(s.now()),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrEmailAlreadyRegistered
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns nil, nil when no user has the email.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
