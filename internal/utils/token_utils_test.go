package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nepalicrafts/storefront_api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateAdminToken("admin-1", utils.AdminRole, "secret", time.Hour, "storefront")
	require.NoError(t, err)

	claims, err := utils.ParseAdminToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.Subject)
	assert.Equal(t, utils.AdminRole, claims.Role)
	assert.Equal(t, "storefront", claims.Issuer)
}

func TestParseAdminToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateAdminToken("admin-1", utils.AdminRole, "secret", time.Hour, "storefront")
	require.NoError(t, err)

	_, err = utils.ParseAdminToken(token, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAdminToken_Expired(t *testing.T) {
	token, err := utils.GenerateAdminToken("admin-1", utils.AdminRole, "secret", -time.Minute, "storefront")
	require.NoError(t, err)

	_, err = utils.ParseAdminToken(token, "secret")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
