package models

import "time"

// RestaurantModulePermission is a per-tenant override of a module's
// enablement. When a row exists its value wins over the plan default in both
// directions; a missing row defers to the plan.
type RestaurantModulePermission struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RestaurantID string    `gorm:"column:restaurant_id;type:uuid;not null;uniqueIndex:idx_restaurant_module,priority:1" json:"restaurant_id"`
	ModuleID     string    `gorm:"column:module_id;type:uuid;not null;uniqueIndex:idx_restaurant_module,priority:2" json:"module_id"`
	IsEnabled    bool      `gorm:"column:is_enabled;not null" json:"is_enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (RestaurantModulePermission) TableName() string {
	return "restaurant_module_permissions"
}
