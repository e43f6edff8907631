package subscription

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/app/service/catalog"
	"github.com/restobill/restobill/internal/app/service/restaurant"
)

// Module exposes the subscription lifecycle via Fx.
var Module = fx.Options(
	fx.Provide(func(db *gorm.DB, log *zap.SugaredLogger, r *restaurant.Service, c *catalog.Service) *Service {
		return NewService(db, log, r, c)
	}),
)
