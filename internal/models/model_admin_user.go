package models

import (
	"time"

	"github.com/restobill/restobill/pkg/types"
)

// AdminUser is a backoffice account. Super admins manage every tenant; plain
// admins are bound to one restaurant.
type AdminUser struct {
	ID           string         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Email        string         `gorm:"column:email;type:varchar(128);not null;uniqueIndex" json:"email"`
	PasswordHash string         `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	Role         types.UserRole `gorm:"column:role;type:varchar(32);not null" json:"role"`
	// RestaurantID is empty for super admins.
	RestaurantID string    `gorm:"column:restaurant_id;type:uuid;index" json:"restaurant_id"`
	IsActive     bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
