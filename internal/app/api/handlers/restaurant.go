package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/restobill/restobill/internal/app/service/restaurant"
	"github.com/restobill/restobill/pkg/response"
)

// @Summary      Create Restaurant (Admin)
// @Description  Onboards a tenant with a default settings row.
// @Tags         Restaurants
// @Accept       json
// @Produce      json
// @Param        request body restaurant.CreateRestaurantInput true "Restaurant"
// @Success      200  {object}  models.Restaurant
// @Router       /api/v1/admin/restaurants [post]
func ApiCreateRestaurant(svc *restaurant.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req restaurant.CreateRestaurantInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		r, err := svc.Create(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(r))
	}
}

// @Summary      List Restaurants (Admin)
// @Tags         Restaurants
// @Produce      json
// @Param        active_only query bool false "Only active restaurants"
// @Success      200  {array}  models.Restaurant
// @Router       /api/v1/admin/restaurants [get]
func ApiListRestaurants(svc *restaurant.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		activeOnly := c.Query("active_only") == "true"
		out, err := svc.List(c.Request.Context(), activeOnly)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(out))
	}
}

// @Summary      Get Restaurant (Admin)
// @Tags         Restaurants
// @Produce      json
// @Param        id path string true "Restaurant ID"
// @Success      200  {object}  models.Restaurant
// @Router       /api/v1/admin/restaurants/{id} [get]
func ApiGetRestaurant(svc *restaurant.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(r))
	}
}

func RegisterRestaurantAdminRoutes(r gin.IRouter, svc *restaurant.Service, log *zap.SugaredLogger) {
	r.POST("/restaurants", ApiCreateRestaurant(svc, log))
	r.GET("/restaurants", ApiListRestaurants(svc, log))
	r.GET("/restaurants/:id", ApiGetRestaurant(svc, log))
}
