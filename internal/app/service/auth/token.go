package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/types"
)

// Claims is the session token payload. RestaurantID is empty for super
// admins.
type Claims struct {
	jwt.RegisteredClaims
	Role         types.UserRole `json:"role"`
	RestaurantID string         `json:"restaurant_id,omitempty"`
}

// Privileged reports whether the caller bypasses entitlement checks.
func (c *Claims) Privileged() bool {
	return c.Role == types.UserRoleSuperAdmin
}

func issueToken(secret string, ttl time.Duration, userID string, role types.UserRole, restaurantID string, now time.Time) (string, error) {
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role:         role,
		RestaurantID: restaurantID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperr.Internalf("failed to sign token: %w", err)
	}
	return signed, nil
}

func parseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperr.Validationf("invalid token: %v", err)
	}
	return claims, nil
}
