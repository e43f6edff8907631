package models

import (
	"time"

	"github.com/restobill/restobill/pkg/types"
)

// Module is a feature catalog entry. Name is constrained to the closed set in
// pkg/types; rows only carry display metadata.
type Module struct {
	ID          string           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        types.ModuleName `gorm:"column:name;type:varchar(64);not null;uniqueIndex" json:"name"`
	DisplayName string           `gorm:"column:display_name;type:varchar(128);not null" json:"display_name"`
	Description string           `gorm:"column:description;type:text" json:"description"`
	Category    string           `gorm:"column:category;type:varchar(64)" json:"category"`
	IsActive    bool             `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func (Module) TableName() string {
	return "modules"
}
