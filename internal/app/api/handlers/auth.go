package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authsvc "github.com/restobill/restobill/internal/app/service/auth"
	"github.com/restobill/restobill/pkg/response"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary      Login
// @Description  Verifies credentials and returns a session token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  auth.LoginResult
// @Router       /api/v1/auth/login [post]
func ApiLogin(svc *authsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		res, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Create Admin User (Admin)
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body auth.CreateUserInput true "User"
// @Success      200  {object}  models.AdminUser
// @Router       /api/v1/admin/users [post]
func ApiCreateUser(svc *authsvc.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authsvc.CreateUserInput
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		u, err := svc.CreateUser(c.Request.Context(), &req)
		if err != nil {
			respondErr(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(u))
	}
}

func RegisterAuthRoutes(pub gin.IRouter, svc *authsvc.Service, log *zap.SugaredLogger) {
	pub.POST("/auth/login", ApiLogin(svc, log))
}

func RegisterUserAdminRoutes(r gin.IRouter, svc *authsvc.Service, log *zap.SugaredLogger) {
	r.POST("/users", ApiCreateUser(svc, log))
}
