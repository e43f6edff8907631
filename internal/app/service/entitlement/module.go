package entitlement

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/app/service/restaurant"
)

// Module exposes the access resolver and settings store via Fx.
var Module = fx.Options(
	fx.Provide(func(db *gorm.DB, log *zap.SugaredLogger, r *restaurant.Service) *Service {
		return NewService(db, log, r)
	}),
)
