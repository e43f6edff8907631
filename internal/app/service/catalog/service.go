package catalog

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

// Service owns the plan catalog and the per-plan default entitlement matrix.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreatePlanInput struct {
	Name         string `json:"name"`
	MonthlyPrice int64  `json:"monthly_price"`
	YearlyPrice  int64  `json:"yearly_price"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"`
}

type UpdatePlanInput struct {
	Name         *string `json:"name"`
	MonthlyPrice *int64  `json:"monthly_price"`
	YearlyPrice  *int64  `json:"yearly_price"`
	Description  *string `json:"description"`
	IsActive     *bool   `json:"is_active"`
}

// ModuleToggle is one entry of a plan's module set.
type ModuleToggle struct {
	ModuleName types.ModuleName `json:"module_name"`
	IsEnabled  bool             `json:"is_enabled"`
}

func validatePlanInput(in *CreatePlanInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.Validationf("plan name is required")
	}
	if in.MonthlyPrice < 0 || in.YearlyPrice < 0 {
		return apperr.Validationf("plan prices must be non-negative")
	}
	return nil
}

// renameTarget returns the trimmed new name when in changes the plan's name,
// or "" when the update keeps the current one.
func renameTarget(current string, in *UpdatePlanInput) string {
	if in.Name == nil {
		return ""
	}
	next := strings.TrimSpace(*in.Name)
	if next == current {
		return ""
	}
	return next
}

// invalidModuleNames returns the unknown names in a module set, in input
// order without duplicates.
func invalidModuleNames(modules []*ModuleToggle) []string {
	var bad []string
	seen := map[types.ModuleName]bool{}
	for _, m := range modules {
		if types.IsKnownModule(m.ModuleName) || seen[m.ModuleName] {
			continue
		}
		seen[m.ModuleName] = true
		bad = append(bad, string(m.ModuleName))
	}
	return bad
}

func (s *Service) CreatePlan(ctx context.Context, in *CreatePlanInput) (*models.Plan, error) {
	if err := validatePlanInput(in); err != nil {
		return nil, err
	}

	p := &models.Plan{
		ID:           tool.GenerateUUIDV7(),
		Name:         strings.TrimSpace(in.Name),
		MonthlyPrice: in.MonthlyPrice,
		YearlyPrice:  in.YearlyPrice,
		Description:  in.Description,
		IsActive:     true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Plan{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			return apperr.Internalf("failed to check plan name: %w", err)
		}
		if count > 0 {
			return apperr.Conflictf("plan %s already exists", p.Name)
		}
		if err := tx.Create(p).Error; err != nil {
			return apperr.Internalf("failed to create plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("plan created", "plan_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) UpdatePlan(ctx context.Context, id string, in *UpdatePlanInput) (*models.Plan, error) {
	if in.MonthlyPrice != nil && *in.MonthlyPrice < 0 {
		return nil, apperr.Validationf("plan prices must be non-negative")
	}
	if in.YearlyPrice != nil && *in.YearlyPrice < 0 {
		return nil, apperr.Validationf("plan prices must be non-negative")
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, apperr.Validationf("plan name is required")
	}

	var p models.Plan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("plan not found: %s", id)
			}
			return apperr.Internalf("failed to load plan: %w", err)
		}
		if next := renameTarget(p.Name, in); next != "" {
			var count int64
			if err := tx.Model(&models.Plan{}).Where("name = ? AND id <> ?", next, id).Count(&count).Error; err != nil {
				return apperr.Internalf("failed to check plan name: %w", err)
			}
			if count > 0 {
				return apperr.Conflictf("plan %s already exists", next)
			}
			p.Name = next
		}
		if in.MonthlyPrice != nil {
			p.MonthlyPrice = *in.MonthlyPrice
		}
		if in.YearlyPrice != nil {
			p.YearlyPrice = *in.YearlyPrice
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.IsActive != nil {
			p.IsActive = *in.IsActive
		}
		if err := tx.Save(&p).Error; err != nil {
			return apperr.Internalf("failed to update plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePlan removes a plan and its module matrix. It is rejected while any
// active subscription still references the plan, so tenants are never
// orphaned.
func (s *Service) DeletePlan(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Plan
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("plan not found: %s", id)
			}
			return apperr.Internalf("failed to load plan: %w", err)
		}

		var activeRefs int64
		if err := tx.Model(&models.Subscription{}).
			Where("plan_id = ? AND is_active = ?", id, true).
			Count(&activeRefs).Error; err != nil {
			return apperr.Internalf("failed to count active subscriptions: %w", err)
		}
		if activeRefs > 0 {
			return apperr.Conflictf("plan %s has %d active subscription(s)", p.Name, activeRefs)
		}

		if err := tx.Where("plan_id = ?", id).Delete(&models.PlanModule{}).Error; err != nil {
			return apperr.Internalf("failed to delete plan modules: %w", err)
		}
		if err := tx.Delete(&p).Error; err != nil {
			return apperr.Internalf("failed to delete plan: %w", err)
		}

		logctx.FromCtx(ctx, s.log).Infow("plan deleted", "plan_id", id, "name", p.Name)
		return nil
	})
}

func (s *Service) GetPlan(ctx context.Context, id string) (*models.Plan, error) {
	var p models.Plan
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("plan not found: %s", id)
		}
		return nil, apperr.Internalf("failed to load plan: %w", err)
	}
	return &p, nil
}

// ListPlans returns plans ordered by monthly price ascending, id as a stable
// tie-break.
func (s *Service) ListPlans(ctx context.Context, activeOnly bool) ([]*models.Plan, error) {
	q := s.db.WithContext(ctx).Model(&models.Plan{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []*models.Plan
	if err := q.Order("monthly_price asc, id asc").Find(&out).Error; err != nil {
		return nil, apperr.Internalf("failed to list plans: %w", err)
	}
	return out, nil
}

// ReplacePlanModules swaps a plan's entire module set in one transaction.
// Any unknown module name rejects the whole batch; nothing is written.
func (s *Service) ReplacePlanModules(ctx context.Context, planID string, modules []*ModuleToggle) ([]*models.PlanModule, error) {
	if bad := invalidModuleNames(modules); len(bad) > 0 {
		return nil, apperr.Validationf("unknown module name(s): %s", strings.Join(bad, ", "))
	}

	var rows []*models.PlanModule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Plan{}).Where("id = ?", planID).Count(&count).Error; err != nil {
			return apperr.Internalf("failed to check plan: %w", err)
		}
		if count == 0 {
			return apperr.NotFoundf("plan not found: %s", planID)
		}

		if err := tx.Where("plan_id = ?", planID).Delete(&models.PlanModule{}).Error; err != nil {
			return apperr.Internalf("failed to delete plan modules: %w", err)
		}

		if len(modules) == 0 {
			return nil
		}

		rows = make([]*models.PlanModule, 0, len(modules))
		seen := map[types.ModuleName]bool{}
		for _, m := range modules {
			// last duplicate wins, matching bulk-replace intent
			if seen[m.ModuleName] {
				for _, r := range rows {
					if r.ModuleName == m.ModuleName {
						r.IsEnabled = m.IsEnabled
					}
				}
				continue
			}
			seen[m.ModuleName] = true
			rows = append(rows, &models.PlanModule{
				ID:         tool.GenerateUUIDV7(),
				PlanID:     planID,
				ModuleName: m.ModuleName,
				IsEnabled:  m.IsEnabled,
			})
		}
		if err := tx.Create(rows).Error; err != nil {
			return apperr.Internalf("failed to insert plan modules: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("plan modules replaced", "plan_id", planID, "count", len(rows))
	return rows, nil
}

func (s *Service) ListPlanModules(ctx context.Context, planID string) ([]*models.PlanModule, error) {
	var rows []*models.PlanModule
	if err := s.db.WithContext(ctx).Where("plan_id = ?", planID).Order("module_name asc").Find(&rows).Error; err != nil {
		return nil, apperr.Internalf("failed to list plan modules: %w", err)
	}
	return rows, nil
}
