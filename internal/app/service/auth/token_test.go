package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restobill/restobill/pkg/apperr"
	"github.com/restobill/restobill/pkg/types"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()

	signed, err := issueToken(testSecret, time.Hour, "user-1", types.UserRoleAdmin, "rest-42", now)
	require.NoError(t, err)

	claims, err := parseToken(testSecret, signed)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, types.UserRoleAdmin, claims.Role)
	assert.Equal(t, "rest-42", claims.RestaurantID)
	assert.False(t, claims.Privileged())
}

func TestSuperAdminIsPrivileged(t *testing.T) {
	signed, err := issueToken(testSecret, time.Hour, "user-2", types.UserRoleSuperAdmin, "", time.Now())
	require.NoError(t, err)

	claims, err := parseToken(testSecret, signed)
	require.NoError(t, err)

	assert.True(t, claims.Privileged())
	assert.Empty(t, claims.RestaurantID)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuedAt := time.Now().Add(-2 * time.Hour)
	signed, err := issueToken(testSecret, time.Hour, "user-3", types.UserRoleAdmin, "rest-42", issuedAt)
	require.NoError(t, err)

	_, err = parseToken(testSecret, signed)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestWrongSecretRejected(t *testing.T) {
	signed, err := issueToken(testSecret, time.Hour, "user-4", types.UserRoleAdmin, "rest-42", time.Now())
	require.NoError(t, err)

	_, err = parseToken("other-secret", signed)
	require.Error(t, err)
}
