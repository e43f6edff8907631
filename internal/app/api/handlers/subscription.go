package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	subsvc "github.com/restobill/restobill/internal/app/service/subscription"
	"github.com/restobill/restobill/pkg/response"
)

// @Summary      Create or Replace Subscription (Admin)
// @Description  Upserts the restaurant's single subscription record; a plan change overwrites it in place.
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Param        request body subscription.CreateSubscriptionInput true "Subscription"
// @Success      200  {object}  models.Subscription
// @Router       /api/v1/admin/subscriptions [post]
func ApiCreateOrReplaceSubscription(svc *subsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subsvc.CreateSubscriptionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		sub, err := svc.CreateOrReplaceSubscription(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Update Subscription (Admin)
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Param        request body subscription.UpdateSubscriptionInput true "Fields to change"
// @Success      200  {object}  models.Subscription
// @Router       /api/v1/admin/subscriptions/{id} [patch]
func ApiUpdateSubscription(svc *subsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subsvc.UpdateSubscriptionInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		sub, err := svc.UpdateSubscription(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      Cancel Subscription (Admin)
// @Description  Idempotent: canceling an already-canceled subscription succeeds.
// @Tags         Subscriptions
// @Produce      json
// @Param        id path string true "Subscription ID"
// @Success      200  {object}  models.Subscription
// @Router       /api/v1/admin/subscriptions/{id}/cancel [post]
func ApiCancelSubscription(svc *subsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, err := svc.CancelSubscription(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(sub))
	}
}

// @Summary      List Subscriptions (Admin)
// @Description  Paginated and filterable listing of subscription records.
// @Tags         Subscriptions
// @Accept       json
// @Produce      json
// @Param        request body subscription.ScanSubscriptionsRequest true "Filters, pagination, sorting"
// @Success      200  {object}  subscription.ScanSubscriptionsResponse
// @Router       /api/v1/admin/subscriptions/scan [post]
func ApiScanSubscriptions(svc *subsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req subsvc.ScanSubscriptionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		res, err := svc.ScanSubscriptions(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterSubscriptionAdminRoutes(r gin.IRouter, svc *subsvc.Service, log *zap.SugaredLogger) {
	r.POST("/subscriptions", ApiCreateOrReplaceSubscription(svc, log))
	r.PATCH("/subscriptions/:id", ApiUpdateSubscription(svc, log))
	r.POST("/subscriptions/:id/cancel", ApiCancelSubscription(svc, log))
	r.POST("/subscriptions/scan", ApiScanSubscriptions(svc, log))
}
