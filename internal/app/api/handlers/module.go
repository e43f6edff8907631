package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/restobill/restobill/internal/app/service/registry"
	"github.com/restobill/restobill/pkg/response"
)

// @Summary      Create Module (Admin)
// @Tags         Modules
// @Accept       json
// @Produce      json
// @Param        request body registry.CreateModuleInput true "Module definition"
// @Success      200  {object}  models.Module
// @Router       /api/v1/admin/modules [post]
func ApiCreateModule(svc *registry.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registry.CreateModuleInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		m, err := svc.CreateModule(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Update Module (Admin)
// @Tags         Modules
// @Accept       json
// @Produce      json
// @Param        id path string true "Module ID"
// @Param        request body registry.UpdateModuleInput true "Fields to change"
// @Success      200  {object}  models.Module
// @Router       /api/v1/admin/modules/{id} [patch]
func ApiUpdateModule(svc *registry.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registry.UpdateModuleInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		m, err := svc.UpdateModule(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(m))
	}
}

// @Summary      Delete Module (Admin)
// @Description  Soft-retires a referenced module; hard-deletes an unreferenced one.
// @Tags         Modules
// @Produce      json
// @Param        id path string true "Module ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/admin/modules/{id} [delete]
func ApiDeleteModule(svc *registry.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeleteModule(c.Request.Context(), c.Param("id")); err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"status": "deleted"}))
	}
}

// @Summary      List Modules
// @Tags         Modules
// @Produce      json
// @Param        active_only query bool false "Only active modules"
// @Success      200  {array}  models.Module
// @Router       /api/v1/admin/modules [get]
func ApiListModules(svc *registry.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active_only") == "true"
		mods, err := svc.ListModules(c.Request.Context(), activeOnly)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(mods))
	}
}

func RegisterModuleRoutes(r gin.IRouter, svc *registry.Service, log *zap.SugaredLogger) {
	r.POST("/modules", ApiCreateModule(svc, log))
	r.GET("/modules", ApiListModules(svc, log))
	r.PATCH("/modules/:id", ApiUpdateModule(svc, log))
	r.DELETE("/modules/:id", ApiDeleteModule(svc, log))
}
