package models

import "time"

// Restaurant is a tenant account. Profile fields beyond what onboarding needs
// live with the restaurant CRUD surface, not the entitlement core.
type Restaurant struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(128);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(128);uniqueIndex" json:"email"`
	Phone     string    `gorm:"column:phone;type:varchar(32)" json:"phone"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}
