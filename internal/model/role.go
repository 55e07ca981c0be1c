package model

// Role is a named category assigned to users.
type Role struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Description string `json:"description" gorm:"size:255;not null;index"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID"`
}
