package entitlement

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

// ModulePermissionInput is one override entry in a settings save.
type ModulePermissionInput struct {
	ModuleName types.ModuleName `json:"module_name"`
	IsEnabled  bool             `json:"is_enabled"`
}

// RestaurantSettingsView bundles settings with the override rows keyed by
// module name, the shape the admin UI edits.
type RestaurantSettingsView struct {
	Settings    *models.RestaurantSettings `json:"settings"`
	Permissions []*ModulePermissionInput   `json:"module_permissions"`
}

func (s *Service) GetRestaurantSettings(ctx context.Context, restaurantID string) (*RestaurantSettingsView, error) {
	view := &RestaurantSettingsView{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings models.RestaurantSettings
		if err := tx.Where("restaurant_id = ?", restaurantID).First(&settings).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("restaurant settings not found: %s", restaurantID)
			}
			return apperr.Internalf("failed to load restaurant settings: %w", err)
		}
		view.Settings = &settings

		type overrideRow struct {
			Name      types.ModuleName
			IsEnabled bool
		}
		var overrides []overrideRow
		if err := tx.Model(&models.RestaurantModulePermission{}).
			Select("modules.name AS name, restaurant_module_permissions.is_enabled AS is_enabled").
			Joins("JOIN modules ON modules.id = restaurant_module_permissions.module_id").
			Where("restaurant_module_permissions.restaurant_id = ?", restaurantID).
			Order("modules.name asc").
			Scan(&overrides).Error; err != nil {
			return apperr.Internalf("failed to load module overrides: %w", err)
		}
		for _, o := range overrides {
			view.Permissions = append(view.Permissions, &ModulePermissionInput{ModuleName: o.Name, IsEnabled: o.IsEnabled})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UpdateRestaurantSettings upserts the settings row and bulk-replaces the
// override set in one transaction. Any unknown module name rejects the whole
// batch.
func (s *Service) UpdateRestaurantSettings(ctx context.Context, restaurantID string, maxOutlets int, permissions []*ModulePermissionInput) (*RestaurantSettingsView, error) {
	if maxOutlets <= 0 {
		return nil, apperr.Validationf("max_outlets must be positive")
	}

	var bad []string
	for _, p := range permissions {
		if !types.IsKnownModule(p.ModuleName) {
			bad = append(bad, string(p.ModuleName))
		}
	}
	if len(bad) > 0 {
		return nil, apperr.Validationf("unknown module name(s): %s", strings.Join(bad, ", "))
	}

	ok, err := s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFoundf("restaurant not found: %s", restaurantID)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var settings models.RestaurantSettings
		err := tx.Where("restaurant_id = ?", restaurantID).First(&settings).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internalf("failed to load restaurant settings: %w", err)
		}
		if settings.ID == "" {
			settings = models.RestaurantSettings{
				ID:           tool.GenerateUUIDV7(),
				RestaurantID: restaurantID,
				IsActive:     true,
			}
		}
		settings.MaxOutlets = maxOutlets
		if err := tx.Save(&settings).Error; err != nil {
			return apperr.Internalf("failed to upsert restaurant settings: %w", err)
		}

		// bulk replace: delete-all-then-insert keeps the override set atomic
		if err := tx.Where("restaurant_id = ?", restaurantID).Delete(&models.RestaurantModulePermission{}).Error; err != nil {
			return apperr.Internalf("failed to delete module overrides: %w", err)
		}

		if len(permissions) == 0 {
			return nil
		}

		var mods []*models.Module
		if err := tx.Find(&mods).Error; err != nil {
			return apperr.Internalf("failed to load module catalog: %w", err)
		}
		idByName := make(map[types.ModuleName]string, len(mods))
		for _, m := range mods {
			idByName[m.Name] = m.ID
		}

		rows := make([]*models.RestaurantModulePermission, 0, len(permissions))
		seen := map[types.ModuleName]bool{}
		for _, p := range permissions {
			moduleID, ok := idByName[p.ModuleName]
			if !ok {
				return apperr.NotFoundf("module not in catalog: %s", p.ModuleName)
			}
			if seen[p.ModuleName] {
				for _, r := range rows {
					if r.ModuleID == moduleID {
						r.IsEnabled = p.IsEnabled
					}
				}
				continue
			}
			seen[p.ModuleName] = true
			rows = append(rows, &models.RestaurantModulePermission{
				ID:           tool.GenerateUUIDV7(),
				RestaurantID: restaurantID,
				ModuleID:     moduleID,
				IsEnabled:    p.IsEnabled,
			})
		}
		if err := tx.Create(rows).Error; err != nil {
			return apperr.Internalf("failed to insert module overrides: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("restaurant settings updated",
		"restaurant_id", restaurantID, "max_outlets", maxOutlets, "override_count", len(permissions))
	return s.GetRestaurantSettings(ctx, restaurantID)
}
