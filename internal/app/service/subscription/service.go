package subscription

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

const defaultGracePeriodDays = 7

// RestaurantDirectory is the tenant existence check consumed before creating
// a subscription.
type RestaurantDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// PlanCatalog resolves the plan a subscription points at.
type PlanCatalog interface {
	GetPlan(ctx context.Context, id string) (*models.Plan, error)
}

// Service tracks the single current subscription per restaurant. Expiry is
// evaluated lazily at read time; no background sweep exists.
type Service struct {
	db          *gorm.DB
	log         *zap.SugaredLogger
	restaurants RestaurantDirectory
	plans       PlanCatalog

	// now is injectable for date-boundary tests.
	now func() time.Time
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, restaurants RestaurantDirectory, plans PlanCatalog) *Service {
	return &Service{db: db, log: log, restaurants: restaurants, plans: plans, now: time.Now}
}

type CreateSubscriptionInput struct {
	RestaurantID     string    `json:"restaurant_id"`
	PlanID           string    `json:"plan_id"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	GracePeriodDays  *int      `json:"grace_period_days"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentReference string    `json:"payment_reference"`
}

type UpdateSubscriptionInput struct {
	PlanID           *string    `json:"plan_id"`
	EndDate          *time.Time `json:"end_date"`
	GracePeriodDays  *int       `json:"grace_period_days"`
	PaymentStatus    *string    `json:"payment_status"`
	PaymentReference *string    `json:"payment_reference"`
}

// deriveStatus computes the temporal state for a non-canceled subscription.
// Dates are compared calendar-day only.
func deriveStatus(start, end, today time.Time) types.SubscriptionStatus {
	switch {
	case tool.DateOnly(start).After(tool.DateOnly(today)):
		return types.SubscriptionStatusPending
	case !tool.SameOrAfterDate(end, today):
		return types.SubscriptionStatusExpired
	default:
		return types.SubscriptionStatusActive
	}
}

// computeIsActive keeps the cached flag equal to
// end_date >= today AND status == active.
func computeIsActive(end, today time.Time, status types.SubscriptionStatus) bool {
	return status == types.SubscriptionStatusActive && tool.SameOrAfterDate(end, today)
}

// cancelState returns the terminal status and flag for a cancel request, plus
// whether the row needs writing. Cancel is idempotent: an already-canceled
// subscription is left untouched.
func cancelState(status types.SubscriptionStatus, isActive bool) (types.SubscriptionStatus, bool, bool) {
	if status == types.SubscriptionStatusCanceled && !isActive {
		return status, isActive, false
	}
	return types.SubscriptionStatusCanceled, false, true
}

func (s *Service) validateCreate(ctx context.Context, in *CreateSubscriptionInput) (*models.Plan, error) {
	if in.RestaurantID == "" {
		return nil, apperr.Validationf("restaurant_id is required")
	}
	if in.PlanID == "" {
		return nil, apperr.Validationf("plan_id is required")
	}
	if !tool.DateOnly(in.EndDate).After(tool.DateOnly(in.StartDate)) {
		return nil, apperr.Validationf("end_date must be after start_date")
	}
	if in.GracePeriodDays != nil && *in.GracePeriodDays < 0 {
		return nil, apperr.Validationf("grace_period_days must be non-negative")
	}

	ok, err := s.restaurants.Exists(ctx, in.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("restaurant not found: %s", in.RestaurantID)
	}

	plan, err := s.plans.GetPlan(ctx, in.PlanID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, apperr.Validationf("plan %s is not selectable: inactive", plan.Name)
	}
	return plan, nil
}

// CreateOrReplaceSubscription upserts the restaurant's single subscription
// record: a plan change or renewal overwrites it in place, keyed on the
// unique restaurant_id. Concurrent renewals serialize on a row lock so the
// unique index is never raced.
func (s *Service) CreateOrReplaceSubscription(ctx context.Context, in *CreateSubscriptionInput) (*models.Subscription, error) {
	if _, err := s.validateCreate(ctx, in); err != nil {
		return nil, err
	}

	today := s.now()
	status := deriveStatus(in.StartDate, in.EndDate, today)

	m := &models.Subscription{
		RestaurantID:     in.RestaurantID,
		PlanID:           in.PlanID,
		StartDate:        tool.DateOnly(in.StartDate),
		EndDate:          tool.DateOnly(in.EndDate),
		GracePeriodDays:  defaultGracePeriodDays,
		Status:           status,
		IsActive:         computeIsActive(in.EndDate, today, status),
		PaymentStatus:    in.PaymentStatus,
		PaymentReference: in.PaymentReference,
	}
	if in.GracePeriodDays != nil {
		m.GracePeriodDays = *in.GracePeriodDays
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var original models.Subscription
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("restaurant_id = ?", in.RestaurantID).
			First(&original).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internalf("failed to load subscription: %w", err)
		}

		if original.ID != "" {
			m.ID = original.ID
			m.CreatedAt = original.CreatedAt
			m.Extra = original.Extra
		} else {
			m.ID = tool.GenerateUUIDV7()
		}

		if err := tx.Save(m).Error; err != nil {
			return apperr.Internalf("failed to upsert subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("subscription upserted",
		"subscription_id", m.ID, "restaurant_id", m.RestaurantID, "plan_id", m.PlanID, "status", m.Status)
	return m, nil
}

// CancelSubscription deactivates without deleting; dates are untouched so
// history stays readable. Canceling an already-canceled subscription is a
// no-op success.
func (s *Service) CancelSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	var m models.Subscription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("subscription not found: %s", id)
			}
			return apperr.Internalf("failed to load subscription: %w", err)
		}
		status, active, changed := cancelState(m.Status, m.IsActive)
		if !changed {
			return nil
		}
		m.Status = status
		m.IsActive = active
		if err := tx.Save(&m).Error; err != nil {
			return apperr.Internalf("failed to cancel subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("subscription canceled", "subscription_id", m.ID, "restaurant_id", m.RestaurantID)
	return &m, nil
}

// UpdateSubscription patches plan, end date, grace period or payment fields.
// Any write touching end_date recomputes status and is_active in the same
// transaction; a canceled subscription stays canceled.
func (s *Service) UpdateSubscription(ctx context.Context, id string, in *UpdateSubscriptionInput) (*models.Subscription, error) {
	if in.GracePeriodDays != nil && *in.GracePeriodDays < 0 {
		return nil, apperr.Validationf("grace_period_days must be non-negative")
	}

	if in.PlanID != nil {
		plan, err := s.plans.GetPlan(ctx, *in.PlanID)
		if err != nil {
			return nil, err
		}
		if !plan.IsActive {
			return nil, apperr.Validationf("plan %s is not selectable: inactive", plan.Name)
		}
	}

	var m models.Subscription
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("subscription not found: %s", id)
			}
			return apperr.Internalf("failed to load subscription: %w", err)
		}

		if in.PlanID != nil {
			m.PlanID = *in.PlanID
		}
		if in.EndDate != nil {
			if !tool.DateOnly(*in.EndDate).After(tool.DateOnly(m.StartDate)) {
				return apperr.Validationf("end_date must be after start_date")
			}
			m.EndDate = tool.DateOnly(*in.EndDate)
		}
		if in.GracePeriodDays != nil {
			m.GracePeriodDays = *in.GracePeriodDays
		}
		if in.PaymentStatus != nil {
			m.PaymentStatus = *in.PaymentStatus
		}
		if in.PaymentReference != nil {
			m.PaymentReference = *in.PaymentReference
		}

		today := s.now()
		if m.Status != types.SubscriptionStatusCanceled {
			m.Status = deriveStatus(m.StartDate, m.EndDate, today)
		}
		m.IsActive = computeIsActive(m.EndDate, today, m.Status)

		if err := tx.Save(&m).Error; err != nil {
			return apperr.Internalf("failed to update subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetSubscription returns the restaurant's current subscription, or nil when
// none exists.
func (s *Service) GetSubscription(ctx context.Context, restaurantID string) (*models.Subscription, error) {
	var m models.Subscription
	if err := s.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Internalf("failed to load subscription: %w", err)
	}
	return &m, nil
}

// IsCurrentlyActive evaluates temporal validity against the service clock.
func (s *Service) IsCurrentlyActive(sub *models.Subscription) bool {
	return sub.CurrentlyActive(s.now())
}
