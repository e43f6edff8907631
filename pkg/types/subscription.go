package types

type SubscriptionStatus string

const (
	SubscriptionStatusPending  SubscriptionStatus = "pending"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// AccessReason explains a denied entitlement check. A denial is a normal
// result, not an error; callers use the reason to pick an upsell prompt.
type AccessReason string

const (
	AccessReasonSubscriptionNotFound AccessReason = "SUBSCRIPTION_NOT_FOUND"
	AccessReasonSubscriptionInactive AccessReason = "SUBSCRIPTION_INACTIVE"
	AccessReasonSubscriptionExpired  AccessReason = "SUBSCRIPTION_EXPIRED"
	AccessReasonModuleNotEntitled    AccessReason = "MODULE_NOT_ENTITLED"
)

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "super_admin"
	UserRoleAdmin      UserRole = "admin"
)
