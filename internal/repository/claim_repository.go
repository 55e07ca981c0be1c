package repository

import (
	"context"

	"gorm.io/gorm"

	"usermgmt/internal/model"
)

// ClaimRepository defines claim persistence operations.
type ClaimRepository interface {
	Create(ctx context.Context, claim *model.Claim) error
	ListAll(ctx context.Context) ([]model.Claim, error)
}

type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository.
func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

func (r *claimRepository) Create(ctx context.Context, claim *model.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

func (r *claimRepository) ListAll(ctx context.Context) ([]model.Claim, error) {
	var claims []model.Claim
	if err := r.db.WithContext(ctx).Order("id").Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
