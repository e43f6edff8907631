package subscription

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	start := date(2024, 1, 1)
	end := date(2024, 12, 31)

	tests := []struct {
		name  string
		today time.Time
		want  types.SubscriptionStatus
	}{
		{name: "before start", today: date(2023, 12, 31), want: types.SubscriptionStatusPending},
		{name: "on start", today: date(2024, 1, 1), want: types.SubscriptionStatusActive},
		{name: "mid term", today: date(2024, 6, 15), want: types.SubscriptionStatusActive},
		{name: "on end date still active", today: date(2024, 12, 31), want: types.SubscriptionStatusActive},
		{name: "day after end", today: date(2025, 1, 1), want: types.SubscriptionStatusExpired},
		{name: "end of end date with time of day", today: time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC), want: types.SubscriptionStatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveStatus(start, end, tt.today))
		})
	}
}

func TestComputeIsActive(t *testing.T) {
	end := date(2024, 12, 31)

	assert.True(t, computeIsActive(end, date(2024, 12, 31), types.SubscriptionStatusActive))
	assert.False(t, computeIsActive(end, date(2025, 1, 1), types.SubscriptionStatusActive))
	assert.False(t, computeIsActive(end, date(2024, 6, 1), types.SubscriptionStatusCanceled))
	assert.False(t, computeIsActive(end, date(2024, 6, 1), types.SubscriptionStatusPending))
}

func TestCancelState(t *testing.T) {
	tests := []struct {
		name        string
		status      types.SubscriptionStatus
		isActive    bool
		wantStatus  types.SubscriptionStatus
		wantActive  bool
		wantChanged bool
	}{
		{name: "cancel active", status: types.SubscriptionStatusActive, isActive: true, wantStatus: types.SubscriptionStatusCanceled, wantChanged: true},
		{name: "cancel pending", status: types.SubscriptionStatusPending, wantStatus: types.SubscriptionStatusCanceled, wantChanged: true},
		{name: "cancel expired", status: types.SubscriptionStatusExpired, wantStatus: types.SubscriptionStatusCanceled, wantChanged: true},
		{name: "canceled with stale active flag", status: types.SubscriptionStatusCanceled, isActive: true, wantStatus: types.SubscriptionStatusCanceled, wantChanged: true},
		{name: "second cancel is a no-op", status: types.SubscriptionStatusCanceled, wantStatus: types.SubscriptionStatusCanceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, active, changed := cancelState(tt.status, tt.isActive)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantActive, active)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}

	t.Run("cancel twice converges", func(t *testing.T) {
		status, active, _ := cancelState(types.SubscriptionStatusActive, true)
		again, stillInactive, changed := cancelState(status, active)
		assert.Equal(t, status, again)
		assert.Equal(t, active, stillInactive)
		assert.False(t, changed)
	})
}

func TestIsCurrentlyActive(t *testing.T) {
	svc := &Service{now: func() time.Time { return date(2024, 6, 15) }}

	base := models.Subscription{
		RestaurantID: "42",
		StartDate:    date(2024, 1, 1),
		EndDate:      date(2024, 12, 31),
		Status:       types.SubscriptionStatusActive,
		IsActive:     true,
	}

	t.Run("active mid term", func(t *testing.T) {
		sub := base
		assert.True(t, svc.IsCurrentlyActive(&sub))
	})

	t.Run("ends today", func(t *testing.T) {
		sub := base
		sub.EndDate = date(2024, 6, 15)
		assert.True(t, svc.IsCurrentlyActive(&sub))
	})

	t.Run("ended yesterday", func(t *testing.T) {
		sub := base
		sub.EndDate = date(2024, 6, 14)
		assert.False(t, svc.IsCurrentlyActive(&sub))
	})

	t.Run("canceled", func(t *testing.T) {
		sub := base
		sub.Status = types.SubscriptionStatusCanceled
		sub.IsActive = false
		assert.False(t, svc.IsCurrentlyActive(&sub))
	})

	t.Run("stale is_active cache with passed end date", func(t *testing.T) {
		sub := base
		sub.EndDate = date(2024, 5, 1)
		// cache not yet recomputed; temporal check still denies
		sub.IsActive = true
		assert.False(t, svc.IsCurrentlyActive(&sub))
	})
}
