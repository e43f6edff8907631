package entitlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func activeSub() *models.Subscription {
	return &models.Subscription{
		ID:           "sub-1",
		RestaurantID: "42",
		PlanID:       "starter",
		StartDate:    date(2024, 1, 1),
		EndDate:      date(2024, 12, 31),
		Status:       types.SubscriptionStatusActive,
		IsActive:     true,
	}
}

func TestResolveModule_AllCases(t *testing.T) {
	midTerm := date(2024, 6, 15)

	tests := []struct {
		name        string
		sub         func() *models.Subscription
		defaults    map[types.ModuleName]bool
		overrides   map[types.ModuleName]bool
		module      types.ModuleName
		now         time.Time
		wantAllowed bool
		wantReason  types.AccessReason
	}{
		{
			name:       "no subscription",
			sub:        func() *models.Subscription { return nil },
			module:     types.ModuleBilling,
			now:        midTerm,
			wantReason: types.AccessReasonSubscriptionNotFound,
		},
		{
			name: "canceled subscription",
			sub: func() *models.Subscription {
				s := activeSub()
				s.Status = types.SubscriptionStatusCanceled
				s.IsActive = false
				return s
			},
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			module:     types.ModuleBilling,
			now:        midTerm,
			wantReason: types.AccessReasonSubscriptionInactive,
		},
		{
			name: "expired by date with stale cache",
			sub: func() *models.Subscription {
				s := activeSub()
				s.EndDate = date(2024, 5, 1)
				return s
			},
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			module:     types.ModuleBilling,
			now:        midTerm,
			wantReason: types.AccessReasonSubscriptionExpired,
		},
		{
			name:        "plan default enabled",
			sub:         activeSub,
			defaults:    map[types.ModuleName]bool{types.ModuleBilling: true},
			module:      types.ModuleBilling,
			now:         midTerm,
			wantAllowed: true,
		},
		{
			name:       "plan default disabled",
			sub:        activeSub,
			defaults:   map[types.ModuleName]bool{types.ModuleInventory: false},
			module:     types.ModuleInventory,
			now:        midTerm,
			wantReason: types.AccessReasonModuleNotEntitled,
		},
		{
			name:       "no matrix row fails closed",
			sub:        activeSub,
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			module:     types.ModuleReports,
			now:        midTerm,
			wantReason: types.AccessReasonModuleNotEntitled,
		},
		{
			name:        "override grants what plan denies",
			sub:         activeSub,
			defaults:    map[types.ModuleName]bool{types.ModuleInventory: false},
			overrides:   map[types.ModuleName]bool{types.ModuleInventory: true},
			module:      types.ModuleInventory,
			now:         midTerm,
			wantAllowed: true,
		},
		{
			name:       "override revokes what plan grants",
			sub:        activeSub,
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			overrides:  map[types.ModuleName]bool{types.ModuleBilling: false},
			module:     types.ModuleBilling,
			now:        midTerm,
			wantReason: types.AccessReasonModuleNotEntitled,
		},
		{
			name:        "override without any matrix row",
			sub:         activeSub,
			overrides:   map[types.ModuleName]bool{types.ModuleReports: true},
			module:      types.ModuleReports,
			now:         midTerm,
			wantAllowed: true,
		},
		{
			name:        "end date today still grants",
			sub:         activeSub,
			defaults:    map[types.ModuleName]bool{types.ModuleBilling: true},
			module:      types.ModuleBilling,
			now:         date(2024, 12, 31),
			wantAllowed: true,
		},
		{
			name:       "end date yesterday denies expired",
			sub:        activeSub,
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			module:     types.ModuleBilling,
			now:        date(2025, 1, 1),
			wantReason: types.AccessReasonSubscriptionExpired,
		},
		{
			name: "grace period does not extend access",
			sub: func() *models.Subscription {
				s := activeSub()
				s.GracePeriodDays = 30
				return s
			},
			defaults:   map[types.ModuleName]bool{types.ModuleBilling: true},
			module:     types.ModuleBilling,
			now:        date(2025, 1, 2),
			wantReason: types.AccessReasonSubscriptionExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := snapshot{Sub: tt.sub(), PlanDefaults: tt.defaults, Overrides: tt.overrides}
			if snap.PlanDefaults == nil {
				snap.PlanDefaults = map[types.ModuleName]bool{}
			}
			if snap.Overrides == nil {
				snap.Overrides = map[types.ModuleName]bool{}
			}

			d := resolveModule(snap, tt.module, tt.now)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantReason, d.Reason)
		})
	}
}

func TestResolveActiveModules(t *testing.T) {
	midTerm := date(2024, 6, 15)

	t.Run("combines defaults and overrides in one pass", func(t *testing.T) {
		snap := snapshot{
			Sub: activeSub(),
			PlanDefaults: map[types.ModuleName]bool{
				types.ModuleBilling:   true,
				types.ModuleInventory: false,
				types.ModuleReports:   true,
			},
			Overrides: map[types.ModuleName]bool{
				types.ModuleInventory: true,  // granted by override
				types.ModuleReports:   false, // revoked by override
			},
		}

		got := resolveActiveModules(snap, midTerm)
		assert.Equal(t, []types.ModuleName{types.ModuleBilling, types.ModuleInventory}, got)
	})

	t.Run("empty without subscription", func(t *testing.T) {
		snap := snapshot{PlanDefaults: map[types.ModuleName]bool{types.ModuleBilling: true}}
		assert.Empty(t, resolveActiveModules(snap, midTerm))
	})

	t.Run("empty after expiry", func(t *testing.T) {
		snap := snapshot{
			Sub:          activeSub(),
			PlanDefaults: map[types.ModuleName]bool{types.ModuleBilling: true},
		}
		assert.Empty(t, resolveActiveModules(snap, date(2025, 1, 1)))
	})

	t.Run("matches per-module resolution", func(t *testing.T) {
		snap := snapshot{
			Sub: activeSub(),
			PlanDefaults: map[types.ModuleName]bool{
				types.ModuleBilling:        true,
				types.ModuleKotPrinting:    true,
				types.ModuleMenuManagement: false,
			},
			Overrides: map[types.ModuleName]bool{
				types.ModuleKotPrinting: false,
			},
		}

		listed := map[types.ModuleName]bool{}
		for _, name := range resolveActiveModules(snap, midTerm) {
			listed[name] = true
		}
		for _, name := range types.KnownModuleNames {
			d := resolveModule(snap, name, midTerm)
			assert.Equal(t, d.Allowed, listed[name], "module %s", name)
		}
	})
}

func TestHasModuleAccessRejectsUnknownModule(t *testing.T) {
	svc := &Service{}

	_, err := svc.HasModuleAccess(context.Background(), "42", "time_travel")
	assert.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestOnboardingScenario(t *testing.T) {
	// plan Starter: billing on, inventory off; subscription for all of 2024
	snap := snapshot{
		Sub: activeSub(),
		PlanDefaults: map[types.ModuleName]bool{
			types.ModuleBilling:   true,
			types.ModuleInventory: false,
		},
		Overrides: map[types.ModuleName]bool{},
	}

	during := date(2024, 3, 1)
	assert.True(t, resolveModule(snap, types.ModuleBilling, during).Allowed)
	assert.False(t, resolveModule(snap, types.ModuleInventory, during).Allowed)

	// restaurant override flips inventory on
	snap.Overrides[types.ModuleInventory] = true
	assert.True(t, resolveModule(snap, types.ModuleInventory, during).Allowed)

	// advance past end date
	after := date(2025, 1, 1)
	d := resolveModule(snap, types.ModuleBilling, after)
	assert.False(t, d.Allowed)
	assert.Equal(t, types.AccessReasonSubscriptionExpired, d.Reason)
}
