package registry

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/logctx"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

// Service maintains the feature module catalog. The set of valid machine
// names is closed (pkg/types); rows carry display metadata only.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreateModuleInput struct {
	Name        types.ModuleName `json:"name"`
	DisplayName string           `json:"display_name"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	IsActive    *bool            `json:"is_active"`
}

type UpdateModuleInput struct {
	DisplayName *string `json:"display_name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsActive    *bool   `json:"is_active"`
}

func (s *Service) CreateModule(ctx context.Context, in *CreateModuleInput) (*models.Module, error) {
	if !types.IsKnownModule(in.Name) {
		return nil, apperr.Validationf("unknown module name: %s", in.Name)
	}

	m := &models.Module{
		ID:          tool.GenerateUUIDV7(),
		Name:        in.Name,
		DisplayName: in.DisplayName,
		Description: in.Description,
		Category:    in.Category,
		IsActive:    true,
	}
	if m.DisplayName == "" {
		m.DisplayName = string(in.Name)
	}
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Module{}).Where("name = ?", in.Name).Count(&count).Error; err != nil {
			return apperr.Internalf("failed to check module name: %w", err)
		}
		if count > 0 {
			return apperr.Conflictf("module %s already exists", in.Name)
		}
		if err := tx.Create(m).Error; err != nil {
			return apperr.Internalf("failed to create module: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("module created", "module_id", m.ID, "name", m.Name)
	return m, nil
}

func (s *Service) UpdateModule(ctx context.Context, id string, in *UpdateModuleInput) (*models.Module, error) {
	var m models.Module
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("module not found: %s", id)
			}
			return apperr.Internalf("failed to load module: %w", err)
		}
		if in.DisplayName != nil {
			m.DisplayName = *in.DisplayName
		}
		if in.Description != nil {
			m.Description = *in.Description
		}
		if in.Category != nil {
			m.Category = *in.Category
		}
		if in.IsActive != nil {
			m.IsActive = *in.IsActive
		}
		if err := tx.Save(&m).Error; err != nil {
			return apperr.Internalf("failed to update module: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteModule retires a module. A module still referenced by any plan matrix
// row or restaurant override is soft-retired (is_active=false); an
// unreferenced one is removed outright.
func (s *Service) DeleteModule(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.Module
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFoundf("module not found: %s", id)
			}
			return apperr.Internalf("failed to load module: %w", err)
		}

		var planRefs, permRefs int64
		if err := tx.Model(&models.PlanModule{}).Where("module_name = ?", m.Name).Count(&planRefs).Error; err != nil {
			return apperr.Internalf("failed to count plan references: %w", err)
		}
		if err := tx.Model(&models.RestaurantModulePermission{}).Where("module_id = ?", m.ID).Count(&permRefs).Error; err != nil {
			return apperr.Internalf("failed to count permission references: %w", err)
		}

		if planRefs > 0 || permRefs > 0 {
			m.IsActive = false
			if err := tx.Save(&m).Error; err != nil {
				return apperr.Internalf("failed to retire module: %w", err)
			}
			logctx.FromCtx(ctx, s.log).Infow("module retired", "module_id", m.ID, "name", m.Name)
			return nil
		}

		if err := tx.Delete(&m).Error; err != nil {
			return apperr.Internalf("failed to delete module: %w", err)
		}
		logctx.FromCtx(ctx, s.log).Infow("module deleted", "module_id", m.ID, "name", m.Name)
		return nil
	})
}

func (s *Service) ListModules(ctx context.Context, activeOnly bool) ([]*models.Module, error) {
	q := s.db.WithContext(ctx).Model(&models.Module{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []*models.Module
	if err := q.Order("name asc").Find(&out).Error; err != nil {
		return nil, apperr.Internalf("failed to list modules: %w", err)
	}
	return out, nil
}

func (s *Service) GetModuleByName(ctx context.Context, name types.ModuleName) (*models.Module, error) {
	var m models.Module
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("module not found: %s", name)
		}
		return nil, apperr.Internalf("failed to load module: %w", err)
	}
	return &m, nil
}

// IsKnownModule reports whether name is a registered module key. Other
// services use it to validate input at the boundary.
func (s *Service) IsKnownModule(name types.ModuleName) bool {
	return types.IsKnownModule(name)
}
