package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"usermgmt/internal/model"
)

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListWithRoleAndClaims(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	AssignClaims(ctx context.Context, user *model.User, claims []model.Claim) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("Role", "Claims").Create(user).Error
}

// FindByEmail returns nil without an error when no user has the email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListWithRoleAndClaims loads every user together with its role and claims.
func (r *userRepository) ListWithRoleAndClaims(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Claims").
		Order("id").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// AssignClaims links the given claims to the user through user_claims.
func (r *userRepository) AssignClaims(ctx context.Context, user *model.User, claims []model.Claim) error {
	if len(claims) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(user).Association("Claims").Append(claims)
}
