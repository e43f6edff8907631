package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restobill/restobill/internal/app/service/auth"
	"github.com/restobill/restobill/pkg/response"
	"github.com/restobill/restobill/pkg/types"
)

// Context keys set by AuthMiddleware.
const (
	CtxKeyClaims     = "claims"
	CtxKeyPrivileged = "privileged"
)

// AuthMiddleware validates the Bearer token and attaches claims plus a
// privileged flag to the gin context. Role vocabulary stops here: downstream
// code reads the flag, not the role.
func AuthMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "missing bearer token"))
			return
		}

		claims, err := svc.VerifyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorT[any](response.APIResponseCodeUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(CtxKeyClaims, claims)
		c.Set(CtxKeyPrivileged, claims.Privileged())
		c.Next()
	}
}

// RequireSuperAdmin rejects requests whose token is not a super admin's.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || claims.Role != types.UserRoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorT[any](response.APIResponseCodeForbidden, "super admin required"))
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims attached by AuthMiddleware, or nil.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(CtxKeyClaims); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// CallerCanAccessRestaurant reports whether the caller may read data scoped
// to restaurantID: super admins always, admins only their own tenant.
func CallerCanAccessRestaurant(c *gin.Context, restaurantID string) bool {
	claims := ClaimsFrom(c)
	if claims == nil {
		return false
	}
	return claims.Privileged() || claims.RestaurantID == restaurantID
}
