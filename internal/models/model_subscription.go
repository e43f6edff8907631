package models

import (
	"time"

	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"

	"gorm.io/datatypes"
)

// Subscription is a restaurant's current commercial relationship with a plan.
// Exactly one row per restaurant; plan changes overwrite it in place.
// Use CurrentlyActive to evaluate temporal validity.
type Subscription struct {
	ID           string `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	RestaurantID string `gorm:"column:restaurant_id;type:uuid;not null;uniqueIndex" json:"restaurant_id"`
	PlanID       string `gorm:"column:plan_id;type:uuid;not null;index" json:"plan_id"`
	// StartDate and EndDate are calendar dates; time of day is ignored.
	StartDate time.Time `gorm:"column:start_date;type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null" json:"end_date"`
	// GracePeriodDays is informational for renewal UI. It never extends
	// module access: access gates strictly on EndDate.
	GracePeriodDays int `gorm:"column:grace_period_days;not null;default:7" json:"grace_period_days"`
	// IsActive caches end_date >= today AND status == active. Every write
	// touching EndDate or Status recomputes it in the same transaction.
	IsActive         bool                     `gorm:"column:is_active;not null" json:"is_active"`
	Status           types.SubscriptionStatus `gorm:"column:status;type:varchar(32);not null" json:"status"`
	PaymentStatus    string                   `gorm:"column:payment_status;type:varchar(64)" json:"payment_status"`
	PaymentReference string                   `gorm:"column:payment_reference;type:varchar(128)" json:"payment_reference"`
	// Extra stores additional JSON data (for example: price snapshot,
	// currency, and promotion details).
	Extra     datatypes.JSON `gorm:"column:extra;type:jsonb;default:'{}'" json:"extra"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// CurrentlyActive reports whether the subscription grants access at the given
// instant. A subscription ending today is still active; one ending yesterday
// is not.
func (s *Subscription) CurrentlyActive(now time.Time) bool {
	return s != nil &&
		s.IsActive &&
		s.Status == types.SubscriptionStatusActive &&
		tool.SameOrAfterDate(s.EndDate, now)
}

// Expired reports whether the subscription's end date has passed.
func (s *Subscription) Expired(now time.Time) bool {
	return s != nil && !tool.SameOrAfterDate(s.EndDate, now)
}
