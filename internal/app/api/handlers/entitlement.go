package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/restobill/restobill/internal/app/api/middleware"
	"github.com/restobill/restobill/internal/app/service/entitlement"
	subsvc "github.com/restobill/restobill/internal/app/service/subscription"
	"github.com/restobill/restobill/pkg/response"
	"github.com/restobill/restobill/pkg/types"
)

type UpdateRestaurantSettingsRequest struct {
	MaxOutlets        int                                  `json:"max_outlets"`
	ModulePermissions []*entitlement.ModulePermissionInput `json:"module_permissions"`
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, "restaurant scope mismatch"))
}

// @Summary      Check Module Access
// @Description  Answers whether the restaurant can use the module right now. A denial is a normal result with a reason code. Privileged callers are always allowed.
// @Tags         Entitlements
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Param        module path string true "Module name"
// @Success      200  {object}  entitlement.Decision
// @Router       /api/v1/restaurants/{id}/modules/{module}/access [get]
func ApiCheckModuleAccess(svc *entitlement.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("id")
		if !middleware.CallerCanAccessRestaurant(c, restaurantID) {
			forbidden(c)
			return
		}

		// the privileged bypass lives here, outside the resolver
		if claims := middleware.ClaimsFrom(c); claims != nil && claims.Privileged() {
			c.JSON(http.StatusOK, response.OKT(entitlement.Decision{Allowed: true}))
			return
		}

		d, err := svc.HasModuleAccess(c.Request.Context(), restaurantID, types.ModuleName(c.Param("module")))
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(d))
	}
}

// @Summary      List Active Modules
// @Description  All modules the restaurant can currently use, resolved in a single pass.
// @Tags         Entitlements
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Success      200  {array}  string
// @Router       /api/v1/restaurants/{id}/modules [get]
func ApiListActiveModules(svc *entitlement.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("id")
		if !middleware.CallerCanAccessRestaurant(c, restaurantID) {
			forbidden(c)
			return
		}
		names, err := svc.ListActiveModules(c.Request.Context(), restaurantID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(names))
	}
}

// @Summary      Get Restaurant Subscription
// @Tags         Entitlements
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Success      200  {object}  models.Subscription
// @Router       /api/v1/restaurants/{id}/subscription [get]
func ApiGetSubscription(svc *subsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("id")
		if !middleware.CallerCanAccessRestaurant(c, restaurantID) {
			forbidden(c)
			return
		}
		sub, err := svc.GetSubscription(c.Request.Context(), restaurantID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Get Restaurant Settings
// @Tags         Entitlements
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Success      200  {object}  entitlement.RestaurantSettingsView
// @Router       /api/v1/restaurants/{id}/settings [get]
func ApiGetRestaurantSettings(svc *entitlement.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("id")
		if !middleware.CallerCanAccessRestaurant(c, restaurantID) {
			forbidden(c)
			return
		}
		view, err := svc.GetRestaurantSettings(c.Request.Context(), restaurantID)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(view))
	}
}

// @Summary      Update Restaurant Settings (Admin)
// @Description  Upserts max_outlets and bulk-replaces the module overrides atomically.
// @Tags         Entitlements
// @Accept       json
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Param        request body UpdateRestaurantSettingsRequest true "Settings"
// @Success      200  {object}  entitlement.RestaurantSettingsView
// @Router       /api/v1/admin/restaurants/{id}/settings [put]
func ApiUpdateRestaurantSettings(svc *entitlement.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRestaurantSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		view, err := svc.UpdateRestaurantSettings(c.Request.Context(), c.Param("id"), req.MaxOutlets, req.ModulePermissions)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(view))
	}
}

// RegisterEntitlementRoutes mounts the tenant-scoped read surface.
func RegisterEntitlementRoutes(r gin.IRouter, ent *entitlement.Service, sub *subsvc.Service, log *zap.SugaredLogger) {
	r.GET("/restaurants/:id/modules/:module/access", ApiCheckModuleAccess(ent, log))
	r.GET("/restaurants/:id/modules", ApiListActiveModules(ent, log))
	r.GET("/restaurants/:id/subscription", ApiGetSubscription(sub, log))
	r.GET("/restaurants/:id/settings", ApiGetRestaurantSettings(ent, log))
}
