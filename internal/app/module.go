package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/restobill/restobill/internal/app/api/server"
	"github.com/restobill/restobill/internal/app/service/auth"
	"github.com/restobill/restobill/internal/app/service/catalog"
	"github.com/restobill/restobill/internal/app/service/entitlement"
	"github.com/restobill/restobill/internal/app/service/registry"
	"github.com/restobill/restobill/internal/app/service/restaurant"
	"github.com/restobill/restobill/internal/app/service/subscription"
	"github.com/restobill/restobill/internal/platform/db"
	"github.com/restobill/restobill/pkg/config"
	"github.com/restobill/restobill/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	auth.Module,
	registry.Module,
	catalog.Module,
	restaurant.Module,
	subscription.Module,
	entitlement.Module,
)
