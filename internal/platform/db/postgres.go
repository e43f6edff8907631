package db

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/restobill/restobill/internal/models"
	cfgpkg "github.com/restobill/restobill/pkg/config"
	gormzap "github.com/restobill/restobill/pkg/gormlog"
	"github.com/restobill/restobill/pkg/tool"
	"github.com/restobill/restobill/pkg/types"
)

func NewDB(l *zap.SugaredLogger, cfg *cfgpkg.Config) (*gorm.DB, error) {
	if cfg.Database.DSN == "" {
		l.Error("database DSN is empty")
		return nil, gorm.ErrInvalidDB
	}
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{Logger: gormzap.New(l)})
	if err != nil {
		l.Errorf("failed to connect database: %v", err)
		return nil, err
	}
	l.Infow("connected to postgres via DSN")
	return db, nil
}

var Module = fx.Options(
	fx.Provide(NewDB),
	fx.Invoke(AutoMigrate),
	fx.Invoke(registerDBClose),
)

// AutoMigrate runs GORM migrations on startup and seeds the module catalog
// when empty.
func AutoMigrate(l *zap.SugaredLogger, db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Plan{},
		&models.Module{},
		&models.PlanModule{},
		&models.Restaurant{},
		&models.RestaurantSettings{},
		&models.RestaurantModulePermission{},
		&models.Subscription{},
		&models.AdminUser{},
	); err != nil {
		l.Errorf("automigrate failed: %v", err)
		return err
	}
	if err := seedModules(db); err != nil {
		l.Errorf("module seed failed: %v", err)
		return err
	}
	l.Infow("automigrate completed")
	return nil
}

// seedModules inserts a catalog row for every known module name that has none
// yet, so a fresh database exposes the full set with default metadata.
func seedModules(db *gorm.DB) error {
	var existing []models.Module
	if err := db.Select("name").Find(&existing).Error; err != nil {
		return err
	}
	seen := make(map[types.ModuleName]struct{}, len(existing))
	for _, m := range existing {
		seen[m.Name] = struct{}{}
	}

	var missing []*models.Module
	for _, name := range types.KnownModuleNames {
		if _, ok := seen[name]; ok {
			continue
		}
		missing = append(missing, &models.Module{
			ID:          tool.GenerateUUIDV7(),
			Name:        name,
			DisplayName: string(name),
			IsActive:    true,
		})
	}
	if len(missing) == 0 {
		return nil
	}
	return db.Create(missing).Error
}

// registerDBClose ensures the underlying *sql.DB is closed on shutdown
func registerDBClose(lc fx.Lifecycle, l *zap.SugaredLogger, gdb *gorm.DB) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				l.Warnw("gorm: get sql.DB failed", "err", err)
				return nil
			}
			l.Infow("closing postgres connection pool")
			return sqlDB.Close()
		},
	})
}
