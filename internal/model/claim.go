package model

// Claim is a permission-like tag that can be attached to many users.
type Claim struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"size:255;not null;index"`
	Active      bool   `json:"active" gorm:"not null;default:true"`

	Users []User `json:"users,omitempty" gorm:"many2many:user_claims"`
}

// UserClaim is the join row between users and claims.
type UserClaim struct {
	UserID  uint `gorm:"primaryKey"`
	ClaimID uint `gorm:"primaryKey"`
}
