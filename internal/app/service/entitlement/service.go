package entitlement

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/types"
)

// RestaurantDirectory is the tenant existence check consumed before writing
// settings.
type RestaurantDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// Service answers "can restaurant R use module M now" by combining the
// current subscription, the plan's default matrix and restaurant overrides.
// It also owns the per-restaurant settings and override store.
type Service struct {
	db          *gorm.DB
	log         *zap.SugaredLogger
	restaurants RestaurantDirectory

	// now is injectable for date-boundary tests.
	now func() time.Time
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, restaurants RestaurantDirectory) *Service {
	return &Service{db: db, log: log, restaurants: restaurants, now: time.Now}
}

// loadSnapshot reads subscription, plan defaults and overrides inside tx so
// every evaluation sees one consistent view.
func (s *Service) loadSnapshot(ctx context.Context, tx *gorm.DB, restaurantID string) (snapshot, error) {
	snap := snapshot{
		PlanDefaults: map[types.ModuleName]bool{},
		Overrides:    map[types.ModuleName]bool{},
	}

	var sub models.Subscription
	err := tx.WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no subscription: gate fails closed, no further loading needed
			return snap, nil
		}
		return snap, apperr.Internalf("failed to load subscription: %w", err)
	}
	snap.Sub = &sub

	var defaults []*models.PlanModule
	if err := tx.WithContext(ctx).Where("plan_id = ?", sub.PlanID).Find(&defaults).Error; err != nil {
		return snap, apperr.Internalf("failed to load plan modules: %w", err)
	}
	for _, d := range defaults {
		snap.PlanDefaults[d.ModuleName] = d.IsEnabled
	}

	// overrides are stored by module id; join the catalog to key them by name
	type overrideRow struct {
		Name      types.ModuleName
		IsEnabled bool
	}
	var overrides []overrideRow
	if err := tx.WithContext(ctx).
		Model(&models.RestaurantModulePermission{}).
		Select("modules.name AS name, restaurant_module_permissions.is_enabled AS is_enabled").
		Joins("JOIN modules ON modules.id = restaurant_module_permissions.module_id").
		Where("restaurant_module_permissions.restaurant_id = ?", restaurantID).
		Scan(&overrides).Error; err != nil {
		return snap, apperr.Internalf("failed to load module overrides: %w", err)
	}
	for _, o := range overrides {
		snap.Overrides[o.Name] = o.IsEnabled
	}

	return snap, nil
}

// HasModuleAccess resolves a single module for a restaurant. Unknown module
// names are rejected at the boundary, never treated as a denial.
func (s *Service) HasModuleAccess(ctx context.Context, restaurantID string, moduleName types.ModuleName) (Decision, error) {
	if !types.IsKnownModule(moduleName) {
		return Decision{}, apperr.Validationf("unknown module name: %s", moduleName)
	}

	var d Decision
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := s.loadSnapshot(ctx, tx, restaurantID)
		if err != nil {
			return err
		}
		d = resolveModule(snap, moduleName, s.now())
		return nil
	})
	if err != nil {
		return Decision{}, err
	}
	return d, nil
}

// ListActiveModules returns every module the restaurant can use right now.
// One snapshot, one evaluation pass; never N single-module checks.
func (s *Service) ListActiveModules(ctx context.Context, restaurantID string) ([]types.ModuleName, error) {
	var names []types.ModuleName
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := s.loadSnapshot(ctx, tx, restaurantID)
		if err != nil {
			return err
		}
		names = resolveActiveModules(snap, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
