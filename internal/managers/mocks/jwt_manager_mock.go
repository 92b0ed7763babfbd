package mocks

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"larp-manager-server/internal/schemas"
)

// MockJWTManager is a mock of the JWTManager implementing the JWTMgr
// interface for tests.
type MockJWTManager struct {
	mock.Mock
}

// GenerateJWT returns the scripted token and error.
func (m *MockJWTManager) GenerateJWT(userId, username string, refresh bool) (string, error) {
	args := m.Called(userId, username, refresh)
	return args.String(0), args.Error(1)
}

// GenerateTokenPair returns the scripted token pair and error.
func (m *MockJWTManager) GenerateTokenPair(userId, username string) (*schemas.TokenPairDTO, error) {
	args := m.Called(userId, username)
	pair, _ := args.Get(0).(*schemas.TokenPairDTO)
	return pair, args.Error(1)
}

// ValidateJWT returns the scripted claims and error.
func (m *MockJWTManager) ValidateJWT(tokenString string) (jwt.Claims, error) {
	args := m.Called(tokenString)
	claims, _ := args.Get(0).(jwt.Claims)
	return claims, args.Error(1)
}

// JWTMiddleware returns a pass-through middleware so routing tests can reach
// the guarded handlers.
func (m *MockJWTManager) JWTMiddleware() gin.HandlerFunc {
	m.Called()
	return func(c *gin.Context) {
		c.Next()
	}
}
