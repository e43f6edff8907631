package models

import (
	"time"

	"github.com/restobill/restobill/pkg/types"
)

// PlanModule is one cell of the default entitlement matrix. A missing row for
// a (plan, module) pair means the module is disabled for that plan.
type PlanModule struct {
	ID         string           `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PlanID     string           `gorm:"column:plan_id;type:uuid;not null;uniqueIndex:idx_plan_module,priority:1" json:"plan_id"`
	ModuleName types.ModuleName `gorm:"column:module_name;type:varchar(64);not null;uniqueIndex:idx_plan_module,priority:2" json:"module_name"`
	IsEnabled  bool             `gorm:"column:is_enabled;not null" json:"is_enabled"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (PlanModule) TableName() string {
	return "plan_modules"
}
