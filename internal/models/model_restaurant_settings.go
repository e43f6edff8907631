package models

import "time"

// RestaurantSettings holds per-tenant configuration, one row per restaurant.
type RestaurantSettings struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RestaurantID string `gorm:"column:restaurant_id;type:uuid;not null;uniqueIndex" json:"restaurant_id"`
	// MaxOutlets caps active outlets; enforced by the outlet surface at
	// creation time.
	MaxOutlets int       `gorm:"column:max_outlets;not null;default:1" json:"max_outlets"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}
