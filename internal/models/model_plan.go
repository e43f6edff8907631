package models

import "time"

// Plan is a purchasable subscription tier. Prices are integer amounts in the
// tenant's base currency unit.
type Plan struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	MonthlyPrice int64  `gorm:"column:monthly_price;type:bigint;not null" json:"monthly_price"`
	YearlyPrice  int64  `gorm:"column:yearly_price;type:bigint;not null" json:"yearly_price"`
	Description  string `gorm:"column:description;type:text" json:"description"`
	// An inactive plan is not selectable for new subscriptions; existing
	// subscriptions referencing it stay valid.
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Plan) TableName() string {
	return "plans"
}
