package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/restobill/restobill/docs"
	"github.com/restobill/restobill/internal/app/api/handlers"
	mw "github.com/restobill/restobill/internal/app/api/middleware"
	authsvc "github.com/restobill/restobill/internal/app/service/auth"
	"github.com/restobill/restobill/internal/app/service/catalog"
	"github.com/restobill/restobill/internal/app/service/entitlement"
	"github.com/restobill/restobill/internal/app/service/registry"
	"github.com/restobill/restobill/internal/app/service/restaurant"
	subsvc "github.com/restobill/restobill/internal/app/service/subscription"
	cfgpkg "github.com/restobill/restobill/pkg/config"
	metrics "github.com/restobill/restobill/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

func registerRoutes(
	r *gin.Engine,
	log *zap.SugaredLogger,
	cfg *cfgpkg.Config,
	auth *authsvc.Service,
	plans *catalog.Service,
	modules *registry.Service,
	restaurants *restaurant.Service,
	subs *subsvc.Service,
	ent *entitlement.Service,
) {
	// Prometheus metrics
	if cfg != nil && cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: log,
		})
		p.SetListenAddress(cfg.MetricsAddr)
		p.Use(r)

		log.Infow("metrics started", "addr", cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterAuthRoutes(pub.Group("/api/v1"), auth, log)

	// Authenticated tenant-scoped surface
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(log), mw.AccessLogMiddleware(), mw.AuthMiddleware(auth))
	handlers.RegisterEntitlementRoutes(apiV1, ent, subs, log)

	// Admin surface: catalog, registry, directory, lifecycle, settings
	admin := apiV1.Group("/admin")
	admin.Use(mw.RequireSuperAdmin())
	handlers.RegisterPlanRoutes(admin, plans, log)
	handlers.RegisterModuleRoutes(admin, modules, log)
	handlers.RegisterRestaurantAdminRoutes(admin, restaurants, log)
	handlers.RegisterSubscriptionAdminRoutes(admin, subs, log)
	handlers.RegisterUserAdminRoutes(admin, auth, log)
	admin.PUT("/restaurants/:id/settings", handlers.ApiUpdateRestaurantSettings(ent, log))
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
