package entitlement

import (
	"time"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/types"
)

// Decision is the outcome of an entitlement check. A denial is a normal
// result carrying a reason code, never an error.
type Decision struct {
	Allowed bool               `json:"allowed"`
	Reason  types.AccessReason `json:"reason,omitempty"`
}

// snapshot is everything an evaluation needs, loaded at one consistent point:
// the restaurant's current subscription, its plan's default matrix, and the
// restaurant-level overrides keyed by module name.
type snapshot struct {
	Sub          *models.Subscription
	PlanDefaults map[types.ModuleName]bool
	Overrides    map[types.ModuleName]bool
}

// subscriptionGate checks temporal validity alone. Returned reason ordering
// matches the original access paths: missing, then inactive flag, then
// expired end date. Grace period never participates; access gates strictly
// on end_date.
func subscriptionGate(sub *models.Subscription, now time.Time) (ok bool, reason types.AccessReason) {
	switch {
	case sub == nil:
		return false, types.AccessReasonSubscriptionNotFound
	case !sub.IsActive || sub.Status != types.SubscriptionStatusActive:
		return false, types.AccessReasonSubscriptionInactive
	case sub.Expired(now):
		return false, types.AccessReasonSubscriptionExpired
	default:
		return true, ""
	}
}

// resolveModule evaluates one module against a snapshot. Precedence: a
// restaurant override is absolute in both directions; with no override the
// plan default applies; a missing matrix row means disabled (fail-closed).
func resolveModule(snap snapshot, module types.ModuleName, now time.Time) Decision {
	if ok, reason := subscriptionGate(snap.Sub, now); !ok {
		return Decision{Allowed: false, Reason: reason}
	}

	enabled, hasDefault := snap.PlanDefaults[module]
	if override, hasOverride := snap.Overrides[module]; hasOverride {
		enabled = override
	} else if !hasDefault {
		enabled = false
	}

	if !enabled {
		return Decision{Allowed: false, Reason: types.AccessReasonModuleNotEntitled}
	}
	return Decision{Allowed: true}
}

// resolveActiveModules returns every module name granted by the snapshot, in
// catalog order. A single pass over one snapshot keeps the answer internally
// consistent under concurrent writes.
func resolveActiveModules(snap snapshot, now time.Time) []types.ModuleName {
	if ok, _ := subscriptionGate(snap.Sub, now); !ok {
		return nil
	}

	var out []types.ModuleName
	for _, name := range types.KnownModuleNames {
		enabled, hasDefault := snap.PlanDefaults[name]
		if override, hasOverride := snap.Overrides[name]; hasOverride {
			enabled = override
		} else if !hasDefault {
			enabled = false
		}
		if enabled {
			out = append(out, name)
		}
	}
	return out
}
