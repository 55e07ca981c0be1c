package model

import "time"

// User is a person registered in the system. Every user references exactly one Role.
type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:100;not null;index"`
	Email     string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password  string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	RoleID    uint       `json:"role_id" gorm:"not null"`
	CreatedAt time.Time  `json:"created_at" gorm:"type:date;not null;autoCreateTime:false"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"type:date;autoUpdateTime:false"`

	// Relations
	Role   *Role   `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Claims []Claim `json:"claims,omitempty" gorm:"many2many:user_claims"`
}
