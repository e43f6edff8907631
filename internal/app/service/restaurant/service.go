package restaurant

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
)

// Service is the tenant directory. It owns restaurant rows and the default
// settings created at onboarding; subscriptions and entitlements hang off it.
type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func NewService(db *gorm.DB, log *zap.SugaredLogger) *Service {
	return &Service{db: db, log: log}
}

type CreateRestaurantInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Create onboards a tenant: restaurant row plus its default settings row
// (max_outlets=1) in one transaction.
func (s *Service) Create(ctx context.Context, in *CreateRestaurantInput) (*models.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validationf("restaurant name is required")
	}

	r := &models.Restaurant{
		ID:       tool.GenerateUUIDV7(),
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Phone:    in.Phone,
		IsActive: true,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(r).Error; err != nil {
			return apperr.Internalf("failed to create restaurant: %w", err)
		}
		settings := &models.RestaurantSettings{
			ID:           tool.GenerateUUIDV7(),
			RestaurantID: r.ID,
			MaxOutlets:   1,
			IsActive:     true,
		}
		if err := tx.Create(settings).Error; err != nil {
			return apperr.Internalf("failed to create restaurant settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logctx.FromCtx(ctx, s.log).Infow("restaurant created", "restaurant_id", r.ID, "name", r.Name)
	return r, nil
}

func (s *Service) Get(ctx context.Context, id string) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&r).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("restaurant not found: %s", id)
		}
		return nil, apperr.Internalf("failed to load restaurant: %w", err)
	}
	return &r, nil
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]*models.Restaurant, error) {
	q := s.db.WithContext(ctx).Model(&models.Restaurant{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []*models.Restaurant
	if err := q.Order("created_at asc").Find(&out).Error; err != nil {
		return nil, apperr.Internalf("failed to list restaurants: %w", err)
	}
	return out, nil
}

// Exists is the existence check other services run before attaching
// settings or subscriptions to a restaurant id.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Restaurant{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Internalf("failed to check restaurant: %w", err)
	}
	return count > 0, nil
}
