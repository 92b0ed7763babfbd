package managers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larp-manager-server/internal/config"
	"larp-manager-server/internal/schemas"
	"larp-manager-server/internal/utils"
)

const (
	testUserId   = "0bb07764-3b86-441e-a05c-0f7a24fa1f07"
	testUsername = "gamemaster"
)

func securitySettings(algorithm string) *config.Settings {
	return &config.Settings{
		Environment: "testing",
		Security: config.SecuritySettings{
			SecretKey:                "unit-test-secret",
			Algorithm:                algorithm,
			AccessTokenExpireMinutes: 30,
			RefreshTokenExpireDays:   30,
		},
	}
}

func newTestJWTManager(t *testing.T) JWTMgr {
	t.Helper()

	manager, err := NewJWTManager(securitySettings("HS256"))
	require.NoError(t, err)

	return manager
}

func TestNewJWTManager(t *testing.T) {
	testCases := []struct {
		name      string
		algorithm string
		wantErr   bool
	}{
		{"HS256 is supported", "HS256", false},
		{"HS384 is supported", "HS384", false},
		{"HS512 is supported", "HS512", false},
		{"RSA variants are rejected", "RS256", true},
		{"Unknown algorithms are rejected", "NONSENSE", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			manager, err := NewJWTManager(securitySettings(tc.algorithm))
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, manager)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, manager)
			}
		})
	}
}

func TestGenerateTokenPair(t *testing.T) {
	manager := newTestJWTManager(t)

	pair, err := manager.GenerateTokenPair(testUserId, testUsername)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	accessClaims, err := manager.ValidateJWT(pair.AccessToken)
	require.NoError(t, err)
	accessMap := accessClaims.(jwt.MapClaims)
	assert.Equal(t, utils.ServiceName, accessMap["iss"])
	assert.Equal(t, testUserId, accessMap["sub"])
	assert.Equal(t, testUsername, accessMap["username"])
	assert.Equal(t, false, accessMap["refresh"])

	refreshClaims, err := manager.ValidateJWT(pair.RefreshToken)
	require.NoError(t, err)
	refreshMap := refreshClaims.(jwt.MapClaims)
	assert.Equal(t, true, refreshMap["refresh"])

	// The refresh token must outlive the access token
	accessExp, err := accessMap.GetExpirationTime()
	require.NoError(t, err)
	refreshExp, err := refreshMap.GetExpirationTime()
	require.NoError(t, err)
	assert.True(t, refreshExp.After(accessExp.Time))
}

func TestValidateJWTRejectsForgedToken(t *testing.T) {
	manager := newTestJWTManager(t)

	otherSettings := securitySettings("HS256")
	otherSettings.Security.SecretKey = "a-different-secret"
	otherManager, err := NewJWTManager(otherSettings)
	require.NoError(t, err)

	forged, err := otherManager.GenerateJWT(testUserId, testUsername, false)
	require.NoError(t, err)

	_, err = manager.ValidateJWT(forged)
	assert.Error(t, err)
}

func TestValidateJWTRejectsMalformedToken(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	manager := newTestJWTManager(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":     utils.ServiceName,
		"sub":     testUserId,
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
		"refresh": false,
	})
	signed, err := expired.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = manager.ValidateJWT(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWTRejectsWrongSigningMethod(t *testing.T) {
	manager := newTestJWTManager(t)

	mismatched := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"iss": utils.ServiceName,
		"sub": testUserId,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := mismatched.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = manager.ValidateJWT(signed)
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	manager := newTestJWTManager(t)

	router := gin.New()
	router.GET("/protected", manager.JWTMiddleware(), func(c *gin.Context) {
		claims := c.MustGet(utils.ClaimsKey.String()).(jwt.MapClaims)
		c.JSON(http.StatusOK, gin.H{"username": claims["username"]})
	})

	server := httptest.NewServer(router)
	defer server.Close()

	pair, err := manager.GenerateTokenPair(testUserId, testUsername)
	require.NoError(t, err)

	unauthorizedBody := &schemas.ErrorDTO{Error: *schemas.Unauthorized}

	testCases := []struct {
		name         string
		authHeader   string
		expectedCode int
		responseBody interface{}
	}{
		{
			name:         "Valid access token",
			authHeader:   "Bearer " + pair.AccessToken,
			expectedCode: http.StatusOK,
			responseBody: map[string]interface{}{"username": testUsername},
		},
		{
			name:         "Missing authorization header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
			responseBody: unauthorizedBody,
		},
		{
			name:         "Malformed authorization header",
			authHeader:   "Token " + pair.AccessToken,
			expectedCode: http.StatusUnauthorized,
			responseBody: unauthorizedBody,
		},
		{
			name:         "Refresh token is not accepted",
			authHeader:   "Bearer " + pair.RefreshToken,
			expectedCode: http.StatusUnauthorized,
			responseBody: unauthorizedBody,
		},
		{
			name:         "Garbage token",
			authHeader:   "Bearer junk",
			expectedCode: http.StatusUnauthorized,
			responseBody: unauthorizedBody,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expect := httpexpect.Default(t, server.URL)

			request := expect.GET("/protected")
			if tc.authHeader != "" {
				request = request.WithHeader("Authorization", tc.authHeader)
			}

			response := request.Expect().Status(tc.expectedCode)
			response.JSON().IsEqual(tc.responseBody)
		})
	}
}
