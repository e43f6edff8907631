package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/restobill/restobill/internal/app/service/catalog"
	"github.com/restobill/restobill/internal/models"
	"github.com/restobill/restobill/pkg/response"
)

type ReplacePlanModulesRequest struct {
	Modules []*catalog.ModuleToggle `json:"modules"`
}

type PlanModuleItem struct {
	ModuleName string `json:"module_name"`
	IsEnabled  bool   `json:"is_enabled"`
}

func toPlanModuleItem(m *models.PlanModule) *PlanModuleItem {
	return &PlanModuleItem{ModuleName: string(m.ModuleName), IsEnabled: m.IsEnabled}
}

// @Summary      Create Plan (Admin)
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreatePlanInput true "Plan definition"
// @Success      200  {object}  models.Plan
// @Router       /api/v1/admin/plans [post]
func ApiCreatePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.CreatePlanInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		plan, err := svc.CreatePlan(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

// @Summary      Update Plan (Admin)
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id path string true "Plan ID"
// @Param        request body catalog.UpdatePlanInput true "Fields to change"
// @Success      200  {object}  models.Plan
// @Router       /api/v1/admin/plans/{id} [patch]
func ApiUpdatePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req catalog.UpdatePlanInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		plan, err := svc.UpdatePlan(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

// @Summary      Delete Plan (Admin)
// @Description  Rejected with a conflict while any active subscription references the plan.
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/admin/plans/{id} [delete]
func ApiDeletePlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.DeletePlan(c.Request.Context(), c.Param("id")); err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(map[string]string{"status": "deleted"}))
	}
}

// @Summary      List Plans
// @Tags         Plans
// @Produce      json
// @Param        active_only query bool false "Only active plans"
// @Success      200  {array}  models.Plan
// @Router       /api/v1/admin/plans [get]
func ApiListPlans(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active_only") == "true"
		plans, err := svc.ListPlans(c.Request.Context(), activeOnly)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plans))
	}
}

// @Summary      Get Plan
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {object}  models.Plan
// @Router       /api/v1/admin/plans/{id} [get]
func ApiGetPlan(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		plan, err := svc.GetPlan(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(plan))
	}
}

// @Summary      Replace Plan Modules (Admin)
// @Description  Atomically replaces the plan's whole module set. Any unknown module name rejects the batch.
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        id path string true "Plan ID"
// @Param        request body ReplacePlanModulesRequest true "Full module set"
// @Success      200  {array}  PlanModuleItem
// @Router       /api/v1/admin/plans/{id}/modules [put]
func ApiReplacePlanModules(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ReplacePlanModulesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		rows, err := svc.ReplacePlanModules(c.Request.Context(), c.Param("id"), req.Modules)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		items := lo.Map(rows, func(m *models.PlanModule, _ int) *PlanModuleItem { return toPlanModuleItem(m) })
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

// @Summary      List Plan Modules
// @Tags         Plans
// @Produce      json
// @Param        id path string true "Plan ID"
// @Success      200  {array}  PlanModuleItem
// @Router       /api/v1/admin/plans/{id}/modules [get]
func ApiListPlanModules(svc *catalog.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := svc.ListPlanModules(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, log, err)
			return
		}
		items := lo.Map(rows, func(m *models.PlanModule, _ int) *PlanModuleItem { return toPlanModuleItem(m) })
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterPlanRoutes(r gin.IRouter, svc *catalog.Service, log *zap.SugaredLogger) {
	r.POST("/plans", ApiCreatePlan(svc, log))
	r.GET("/plans", ApiListPlans(svc, log))
	r.GET("/plans/:id", ApiGetPlan(svc, log))
	r.PATCH("/plans/:id", ApiUpdatePlan(svc, log))
	r.DELETE("/plans/:id", ApiDeletePlan(svc, log))
	r.PUT("/plans/:id/modules", ApiReplacePlanModules(svc, log))
	r.GET("/plans/:id/modules", ApiListPlanModules(svc, log))
}
